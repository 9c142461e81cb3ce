package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Build a prompt from the brand spec and render images from it.",
		Long: `Reads the brand spec and instructions, asks the prompt model for an image
prompt, saves it, then renders images with the two reference images and
writes them to the output directory as interim and final PNGs.`,
		Args: cobra.NoArgs,
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

			a.logger.Info("starting brand image generation",
				"spec", a.opts.SpecFile,
				"prompt_model", a.opts.PromptModel,
				"image_model", a.opts.ImageModel,
				"output_dir", a.opts.OutputDir,
			)

			report, err := a.newPipeline(provider).Run(ctx, job)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			printSaved(cmd, report.Paths)
			return nil
		},
	}
}
