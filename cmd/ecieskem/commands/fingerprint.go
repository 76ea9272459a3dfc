package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <name>",
		Short: "Print the fingerprint of a stored public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fp, err := c.wire.Keys.Fingerprint(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", fp)
			return nil
		},
	}
}
