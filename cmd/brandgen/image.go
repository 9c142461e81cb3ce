package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImageCmd(a *app) *cobra.Command {
	var promptFile string

	cmd := &cobra.Command{
		Use:   "image",
		Short: "Render images from a previously saved prompt.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.opts.Timeout)
			defer cancel()

			path := promptFile
			if path == "" {
				path = a.opts.PromptFile
			}
			if path == "" {
				return fmt.Errorf("either --client or --prompt-file is required")
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read prompt: %w", err)
			}

			provider, err := a.newProvider(cmd)
			if err != nil {
				return err
			}
			defer provider.Close()

			report, err := a.newPipeline(provider).RunFromPrompt(ctx, string(data), a.job())
			if err != nil {
				return fmt.Errorf("image: %w", err)
			}

			printSaved(cmd, report.Paths)
			return nil
		},
	}

	cmd.Flags().StringVarP(&promptFile, "prompt-file", "p", "", "Prompt text file (default {client}_image_prompt.txt).")
	return cmd
}
