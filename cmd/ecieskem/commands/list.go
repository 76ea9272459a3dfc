package commands

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"ecieskem/internal/crypto"
	"ecieskem/internal/domain"
)

func listCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored public keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := c.wire.Keys.List()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCURVE\tFINGERPRINT\tCREATED")
			for _, r := range recs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Name, r.Curve, fingerprintOf(r),
					time.Unix(r.CreatedUTC, 0).UTC().Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}
}

func fingerprintOf(r domain.KeyRecord) string {
	pub, err := crypto.ParsePublicKey(r.Curve, domain.Uncompressed, r.Public)
	if err != nil {
		return "invalid"
	}
	return crypto.Fingerprint(pub).String()
}
