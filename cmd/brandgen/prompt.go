package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newPromptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Build and save the image prompt without rendering.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), a.opts.Timeout)
			defer cancel()

			job := a.job()
			if err := a.loadInputs(&job); err != nil {
				return err
			}

			provider, err := a.newProvider(cmd)
			if err != nil {
				return err
			}
			defer provider.Close()

			prompt, err := a.newPipeline(provider).BuildPrompt(ctx, job)
			if err != nil {
				return fmt.Errorf("prompt: %w", err)
			}

			if job.PromptPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved prompt to %s\n", job.PromptPath)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), prompt)
			return nil
		},
	}
}
