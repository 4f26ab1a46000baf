package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ainsleyw/drobe/internal/api"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the closet over a local HTTP API",
		Long: `Expose the closet, outfits, and calendar collections over a local HTTP
API, plus a proxy endpoint for the detection service. Intended for local
tooling only; there is no authentication.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			server := api.NewServer(store, newDetector(), viper.GetString("api.addr"))
			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:7788", "listen address")
	_ = viper.BindPFlag("api.addr", cmd.Flags().Lookup("addr"))

	return cmd
}
