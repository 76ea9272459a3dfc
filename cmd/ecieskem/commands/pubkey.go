package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func pubkeyCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubkey <name>",
		Short: "Print a stored public key as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.wire.Config.DerivationDefaults()
			if err != nil {
				return err
			}
			pub, err := c.wire.Keys.Public(args[0])
			if err != nil {
				return err
			}
			enc, err := pub.Encode(p.PointFormat)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(enc))
			return nil
		},
	}
	cmd.Flags().String("format", "", "point format: UNCOMPRESSED, COMPRESSED or LEGACY_UNCOMPRESSED")
	return cmd
}
