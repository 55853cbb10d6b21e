package commands

import (
	"github.com/spf13/cobra"

	"shardkit/internal/services/compose"
)

func txCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction tools",
	}
	cmd.AddCommand(txComposeCmd())
	return cmd
}

func txComposeCmd() *cobra.Command {
	var (
		nonce    uint64
		period   uint64
		callJSON string
	)
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Compose and sign a transaction against a node",
		RunE: func(cmd *cobra.Command, args []string) error {
			composer, err := appCtx.Composer()
			if err != nil {
				return err
			}

			password, err := appCtx.Prompt().PromptHidden("Password: ")
			if err != nil {
				return err
			}

			req := compose.Request{
				KeystorePath: appCtx.KeystorePath(),
				Password:     password,
				Period:       period,
				Call:         []byte(callJSON),
			}
			if cmd.Flags().Changed("nonce") {
				req.Nonce = &nonce
			}

			out, err := composer.Compose(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printResult(out)
		},
	}
	cmd.Flags().Uint64VarP(&nonce, "nonce", "n", 0, "nonce; fetched from the node by default")
	cmd.Flags().Uint64VarP(&period, "period", "p", compose.DefaultPeriod, "mortality period in blocks")
	cmd.Flags().StringVarP(&callJSON, "call", "c", "", "call as JSON")
	_ = cmd.MarkFlagRequired("call")
	return cmd
}
