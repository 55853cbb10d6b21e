package commands

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"shardkit/internal/app"
)

const envPrefix = "SHARDKIT"

var (
	rpcEndpoint  string
	keystorePath string
	chainDriver  string
	verbose      bool

	appCtx *app.App
)

// Execute builds the command tree and runs it.
func Execute() error {
	root := &cobra.Command{
		Use:           "shardkit",
		Short:         "Key custody and transaction tools for a sharded chain",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

			v := viper.New()
			v.SetEnvPrefix(envPrefix)
			v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
			v.AutomaticEnv()
			if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
				return err
			}

			appCtx = app.New(app.Config{
				RPC:          v.GetString("rpc"),
				KeystorePath: v.GetString("keystore-path"),
				ChainDriver:  v.GetString("chain"),
			})
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&rpcEndpoint, "rpc", "r", "http://127.0.0.1:9033", "node JSON-RPC endpoint")
	root.PersistentFlags().StringVarP(&keystorePath, "keystore-path", "k", "keystore.dat", "keystore file path")
	root.PersistentFlags().StringVar(&chainDriver, "chain", "mainnet", "linked chain driver to use")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(keyCmd(), txCmd())

	if err := root.Execute(); err != nil {
		printError(err)
		return err
	}
	return nil
}
