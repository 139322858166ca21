package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEnginesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "engines",
		Short: "Show which engines initialized",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Close()

			out := cmd.OutOrStdout()
			for _, st := range c.Classifier.Status() {
				state := "available"
				if !st.Available {
					state = "unavailable: " + st.Reason
				}
				fmt.Fprintf(out, "%-13s %-6s %s\n", st.Engine, st.Modality, state)
			}
			return nil
		},
	}
}
