package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sentiment-bot/internal/domain/entity"
)

func newClassifyCmd() *cobra.Command {
	var (
		engine    string
		imagePath string
	)

	cmd := &cobra.Command{
		Use:   "classify [text]",
		Short: "Classify text with a text engine or a photo with fer",
		Example: `  sentiment-bot classify --engine vader "What a great movie"
  sentiment-bot classify --image faces.jpg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			if imagePath != "" {
				data, err := os.ReadFile(imagePath)
				if err != nil {
					return fmt.Errorf("read image: %w", err)
				}
				analysis, err := c.Images.Analyze(cmd.Context(), data, filepath.Base(imagePath))
				if err != nil {
					return err
				}
				return enc.Encode(analysis)
			}

			if len(args) == 0 {
				return fmt.Errorf("%w: text argument is required", entity.ErrInvalidInput)
			}

			id, err := entity.ParseEngineID(engine)
			if err != nil {
				return err
			}

			result, err := c.Classifier.ClassifyText(cmd.Context(), id, strings.Join(args, " "))
			if err != nil {
				return err
			}
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVarP(&engine, "engine", "e", entity.DefaultTextEngine.String(), "text engine: vader, textblob, flair, text2emotion")
	cmd.Flags().StringVar(&imagePath, "image", "", "path to a JPEG or PNG photo (uses fer)")
	return cmd
}
