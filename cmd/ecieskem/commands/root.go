package commands

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ecieskem/internal/app"
	"ecieskem/internal/log"
	"ecieskem/internal/store"
)

// flagKeys maps flag names to config keys. Flags are bound only on the
// commands that define them.
var flagKeys = map[string]string{
	"home":       "home",
	"log-level":  "log_level",
	"passphrase": "passphrase",
	"curve":      "curve",
	"hash":       "hash",
	"format":     "point_format",
	"key-size":   "key_size",
}

var errNoPassphrase = errors.New("passphrase required (-p or ECIESKEM_PASSPHRASE)")

// cli holds state shared by the subcommands of one root command.
type cli struct {
	v         *viper.Viper
	wire      *app.Wire
	storeOpts []store.Option
}

func (c *cli) passphrase() (string, error) {
	p := c.v.GetString("passphrase")
	if p == "" {
		return "", errNoPassphrase
	}
	return p, nil
}

// Execute runs the CLI with os.Args. A failed command is logged at error
// level, with the stack of errors that carry one.
func Execute() error {
	return execute(NewRootCommand())
}

func execute(root *cobra.Command) error {
	cmd, err := root.ExecuteC()
	if err != nil {
		name := root.Name()
		if cmd != nil {
			name = cmd.CommandPath()
		}
		log.Error().Err(err).Str("command", name).Msg("command failed")
	}
	return err
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand()
}

func newRootCommand(storeOpts ...store.Option) *cobra.Command {
	c := &cli{v: viper.New(), storeOpts: storeOpts}

	root := &cobra.Command{
		Use:           "ecieskem",
		Short:         "ECIES-HKDF key encapsulation CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			for name, key := range flagKeys {
				if f := cmd.Flags().Lookup(name); f != nil {
					if err := c.v.BindPFlag(key, f); err != nil {
						return err
					}
				}
			}
			cfg, err := app.LoadConfig(c.v)
			if err != nil {
				return err
			}
			w, err := app.NewWire(cfg, c.storeOpts...)
			if err != nil {
				return err
			}
			c.wire = w
			return nil
		},
	}

	root.PersistentFlags().String("home", "", "config dir (default ~/.ecieskem)")
	root.PersistentFlags().StringP("passphrase", "p", "", "passphrase protecting private keys")
	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		keygenCmd(c),
		pubkeyCmd(c),
		fingerprintCmd(c),
		listCmd(c),
		encapCmd(c),
		decapCmd(c),
	)
	return root
}
