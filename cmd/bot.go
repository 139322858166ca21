package main

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	telegram "sentiment-bot/internal/api"
)

func newBotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			c, err := buildContainer(ctx)
			if err != nil {
				return err
			}
			defer c.Close()

			if c.Config.Telegram.Token == "" {
				return errors.New("TELEGRAM_TOKEN is required")
			}

			bot, err := telegram.NewBot(c.Config.Telegram.Token, c)
			if err != nil {
				return err
			}

			c.Logger.Info("bot is running")
			if err := bot.Run(ctx); err != nil {
				c.Logger.Error("bot stopped", zap.Error(err))
				return err
			}
			c.Logger.Info("bot exited")
			return nil
		},
	}
}
