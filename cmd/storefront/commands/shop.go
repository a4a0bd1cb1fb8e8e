package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/storefront/internal/adapter/terminal"
	"github.com/example/storefront/internal/domain"
	"github.com/example/storefront/internal/events"
	"github.com/example/storefront/internal/state"
	"github.com/example/storefront/internal/usecase"
)

func shopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "Open the interactive storefront",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			bus := events.New[domain.Payload]()
			appState := state.New(bus, state.Data{})
			ui := terminal.Mount(cmd.OutOrStdout(), bus, appState)
			loop := events.NewLoop(64)
			sf := &usecase.Storefront{Bus: bus, State: appState, API: shop, Loop: loop}

			loopCtx, stopLoop := context.WithCancel(context.Background())
			defer stopLoop()
			go func() { _ = loop.Run(loopCtx) }()

			if err := loop.Do(ctx, sf.Bind); err != nil {
				return err
			}
			sf.LoadCatalog(ctx)
			sf.Wait()
			if err := loop.Do(ctx, func() { ui.View.Println("help для списка команд") }); err != nil {
				return err
			}

			err := ui.Console.Run(ctx, loop, cmd.InOrStdin())
			// дождаться ответа на уже отправленный заказ
			sf.Wait()
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}
}
