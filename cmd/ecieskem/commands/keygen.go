package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func keygenCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen <name>",
		Short: "Generate a recipient key pair and store it securely",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := c.passphrase()
			if err != nil {
				return err
			}
			curve, err := c.wire.Config.DefaultCurve()
			if err != nil {
				return err
			}
			rec, fp, err := c.wire.Keys.Generate(pass, args[0], curve)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Key %q created.\nCurve: %s\nFingerprint: %s\n", rec.Name, rec.Curve, fp)
			return nil
		},
	}
	cmd.Flags().String("curve", "", "curve: P256, P384, P521 or SECP256K1")
	return cmd
}
