package commands

import (
	"context"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/storefront/internal/adapter/api"
	"github.com/example/storefront/internal/adapter/telemetry"
	"github.com/example/storefront/internal/config"
)

var (
	cfg             config.Storefront
	shop            *api.ShopClient
	shutdownTracing = func(context.Context) error { return nil }

	apiURL  string
	cdnURL  string
	timeout time.Duration
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "storefront",
		Short:        "Terminal storefront for the shop API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load[config.Storefront]()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("api") {
				cfg.APIURL = apiURL
			}
			if cmd.Flags().Changed("cdn") {
				cfg.CDNURL = cdnURL
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = timeout
			}
			shutdownTracing, err = telemetry.Setup(cmd.Context(), "storefront-cli", cfg.Telemetry)
			if err != nil {
				return err
			}
			shop = api.NewShopClient(cfg.CDNURL, cfg.APIURL, &http.Client{Timeout: cfg.Timeout})
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return shutdownTracing(context.Background())
		},
	}

	root.PersistentFlags().StringVar(&apiURL, "api", "", "shop API base URL (default $SHOP_API_URL)")
	root.PersistentFlags().StringVar(&cdnURL, "cdn", "", "image CDN base URL (default $SHOP_CDN_URL)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 0, "HTTP timeout (default $SHOP_API_TIMEOUT)")

	root.AddCommand(shopCmd(), catalogCmd())
	return root
}
