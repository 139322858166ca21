package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"sentiment-bot/config"
	"sentiment-bot/internal/container"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sentiment-bot",
		Short:         "Sentiment and emotion classification over text and photos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newBotCmd(),
		newServeCmd(),
		newClassifyCmd(),
		newEnginesCmd(),
	)
	return root
}

// buildContainer читает конфигурацию и собирает сервисы
func buildContainer(ctx context.Context) (*container.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	c, err := container.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build services: %w", err)
	}
	return c, nil
}
