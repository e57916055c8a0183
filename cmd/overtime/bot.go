package main

import (
	"os"
	"os/signal"
	"syscall"

	"overtime-tracker/internal/handler"
	"overtime-tracker/pkg/telegram"

	"github.com/spf13/cobra"
)

func botCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.ValidateBot(); err != nil {
				return err
			}

			a, err := newApp(cfg, log)
			if err != nil {
				return err
			}
			defer a.Close()

			client, err := telegram.NewClient(cfg.TelegramToken, cfg.TelegramDebug)
			if err != nil {
				return err
			}
			log.Infof("Authorized on account %s", client.Bot.Self.UserName)

			botHandler := handler.NewHandler(
				client.Bot,
				a.recordService,
				a.statsService,
				a.nonWorkingDayService,
				a.clock,
				cfg.OwnerChatID,
				log,
			)

			updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

			done := make(chan struct{})
			go func() {
				botHandler.HandleUpdates(updates)
				close(done)
			}()

			log.Info("Bot started. Press Ctrl+C to stop.")
			<-stop

			client.Stop()
			<-done

			log.Info("Bot stopped gracefully")
			return nil
		},
	}
}
