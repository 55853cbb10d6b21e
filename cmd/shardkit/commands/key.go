package commands

import (
	"github.com/spf13/cobra"

	"shardkit/internal/crypto"
	"shardkit/internal/domain"
	"shardkit/internal/services/key"
)

func keyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Key tools",
	}
	cmd.AddCommand(keyGenerateCmd(), keyPutCmd(), keyGetCmd(), keyInspectCmd())
	return cmd
}

func keyGenerateCmd() *cobra.Command {
	var shardNum, shardCount uint16
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a key pair bound to a shard",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := appCtx.Keys()
			if err != nil {
				return err
			}
			out, err := keys.Generate(shardNum, shardCount)
			if err != nil {
				return err
			}
			return printResult(out)
		},
	}
	cmd.Flags().Uint16VarP(&shardNum, "shard-num", "s", 0, "shard number the key must map to")
	cmd.Flags().Uint16VarP(&shardCount, "shard-count", "c", 0, "total shard count")
	_ = cmd.MarkFlagRequired("shard-num")
	_ = cmd.MarkFlagRequired("shard-count")
	return cmd
}

func keyPutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put",
		Short: "Store a secret key in an encrypted keystore file",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := appCtx.Keys()
			if err != nil {
				return err
			}

			secretHex, err := appCtx.Prompt().PromptHidden("Secret key (hex): ")
			if err != nil {
				return err
			}
			secret, err := domain.ParseHex(secretHex)
			if err != nil {
				return err
			}
			defer crypto.Wipe(secret)

			password, err := appCtx.Prompt().PromptHidden("Password: ")
			if err != nil {
				return err
			}

			if err := keys.Put(secret, password, appCtx.KeystorePath()); err != nil {
				return err
			}
			return printResult("Ok")
		},
	}
}

func keyGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Recover a secret key from a keystore file",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := appCtx.Keys()
			if err != nil {
				return err
			}
			password, err := appCtx.Prompt().PromptHidden("Password: ")
			if err != nil {
				return err
			}
			secret, err := keys.Get(password, appCtx.KeystorePath())
			if err != nil {
				return err
			}
			return printResult(secret)
		},
	}
}

func keyInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Describe key material",
	}
	cmd.AddCommand(
		keyInspectHexCmd("mini", "Describe a mini secret key", func(keys *key.Service, b []byte) (*key.Info, error) {
			return keys.InspectMini(b)
		}),
		keyInspectHexCmd("secret", "Describe a secret key", func(keys *key.Service, b []byte) (*key.Info, error) {
			return keys.InspectSecret(b)
		}),
		keyInspectHexCmd("public", "Describe a public key", func(keys *key.Service, b []byte) (*key.Info, error) {
			return keys.InspectPublic(b)
		}),
		keyInspectAddressCmd(),
	)
	return cmd
}

// keyInspectHexCmd builds an inspect variant taking hex key material as an
// argument or, for the secret-bearing variants, from the hidden prompt.
func keyInspectHexCmd(use, short string, inspect func(*key.Service, []byte) (*key.Info, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [HEX]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := appCtx.Keys()
			if err != nil {
				return err
			}

			var input string
			if len(args) == 1 {
				input = args[0]
			} else {
				input, err = appCtx.Prompt().PromptHidden("Key (hex): ")
				if err != nil {
					return err
				}
			}
			b, err := domain.ParseHex(input)
			if err != nil {
				return err
			}
			defer crypto.Wipe(b)

			out, err := inspect(keys, b)
			if err != nil {
				return err
			}
			return printResult(out)
		},
	}
}

func keyInspectAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address ADDRESS",
		Short: "Describe an account address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := appCtx.Keys()
			if err != nil {
				return err
			}
			out, err := keys.InspectAddress(domain.Address(args[0]))
			if err != nil {
				return err
			}
			return printResult(out)
		},
	}
}
