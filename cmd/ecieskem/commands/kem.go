package commands

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"ecieskem/internal/crypto"
	"ecieskem/internal/domain"
)

type encapOutput struct {
	EncapsulatedKey string `json:"encapsulated_key"`
	SymmetricKey    string `json:"symmetric_key"`
}

// addKemFlags registers the derivation flags shared by encap and decap.
func addKemFlags(cmd *cobra.Command) {
	cmd.Flags().String("hash", "", "HKDF hash: SHA1, SHA224, SHA256, SHA384 or SHA512")
	cmd.Flags().String("format", "", "point format of the encapsulated key")
	cmd.Flags().Int("key-size", 0, "symmetric key size in bytes")
	cmd.Flags().String("salt", "", "HKDF salt (hex)")
	cmd.Flags().String("info", "", "HKDF info (hex)")
}

func derivationParams(c *cli, cmd *cobra.Command) (domain.DerivationParams, error) {
	p, err := c.wire.Config.DerivationDefaults()
	if err != nil {
		return domain.DerivationParams{}, err
	}
	if p.Salt, err = hexFlag(cmd, "salt"); err != nil {
		return domain.DerivationParams{}, err
	}
	if p.Info, err = hexFlag(cmd, "info"); err != nil {
		return domain.DerivationParams{}, err
	}
	return p, nil
}

func hexFlag(cmd *cobra.Command, name string) ([]byte, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return b, nil
}

func encapCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encap [name]",
		Short: "Encapsulate a fresh symmetric key to a stored or given public key",
		Long: "Encapsulate a fresh symmetric key to the stored key <name>, or to the\n" +
			"public key given with --pubkey on --curve. Prints the encapsulated key\n" +
			"and the symmetric key as JSON.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := derivationParams(c, cmd)
			if err != nil {
				return err
			}

			var kk domain.KemKey
			pubHex, _ := cmd.Flags().GetString("pubkey")
			switch {
			case len(args) == 1 && pubHex != "":
				return fmt.Errorf("give either a key name or --pubkey, not both")
			case len(args) == 1:
				kk, err = c.wire.Keys.EncapsulateTo(args[0], p)
			case pubHex != "":
				var pub *crypto.PublicKey
				if pub, err = parsePubkeyFlag(c, cmd, pubHex); err != nil {
					return err
				}
				kk, err = c.wire.Keys.Encapsulate(pub, p)
			default:
				return fmt.Errorf("a key name or --pubkey is required")
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(encapOutput{
				EncapsulatedKey: hex.EncodeToString(kk.EncapsulatedKey),
				SymmetricKey:    hex.EncodeToString(kk.SymmetricKey),
			})
		},
	}
	addKemFlags(cmd)
	cmd.Flags().String("pubkey", "", "recipient public key (hex)")
	cmd.Flags().String("curve", "", "curve of --pubkey")
	cmd.Flags().String("pubkey-format", "UNCOMPRESSED", "point format of --pubkey")
	return cmd
}

func parsePubkeyFlag(c *cli, cmd *cobra.Command, pubHex string) (*crypto.PublicKey, error) {
	raw, err := hex.DecodeString(pubHex)
	if err != nil {
		return nil, fmt.Errorf("--pubkey: %w", err)
	}
	curve, err := c.wire.Config.DefaultCurve()
	if err != nil {
		return nil, err
	}
	fs, _ := cmd.Flags().GetString("pubkey-format")
	f, err := domain.ParsePointFormat(fs)
	if err != nil {
		return nil, err
	}
	return crypto.ParsePublicKey(curve, f, raw)
}

func decapCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decap <name> <encapsulated-key>",
		Short: "Recover the symmetric key with a stored private key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := c.passphrase()
			if err != nil {
				return err
			}
			p, err := derivationParams(c, cmd)
			if err != nil {
				return err
			}
			kem, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("encapsulated key: %w", err)
			}
			key, err := c.wire.Keys.Decapsulate(pass, args[0], kem, p)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(key))
			return nil
		},
	}
	addKemFlags(cmd)
	return cmd
}
