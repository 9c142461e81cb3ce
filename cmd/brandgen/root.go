package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mhpenta/brandgen"
	"github.com/mhpenta/brandgen/internal/config"
	"github.com/mhpenta/brandgen/provider/gemini"
	"github.com/spf13/cobra"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	cfg    *config.Config
	opts   config.GenerateOptions
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "brandgen",
		Short:        "Generate brand imagery from a JSON brand spec with Gemini.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.preRun(cmd)
		},
	}

	addAppFlags(rootCmd, &a.opts)

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newPromptCmd(a),
		newImageCmd(a),
		newNextNameCmd(a),
	)
	return rootCmd
}

// addAppFlags defines flags shared by every subcommand.
func addAppFlags(rootCmd *cobra.Command, opts *config.GenerateOptions) {
	flags := rootCmd.PersistentFlags()

	// Inputs
	flags.StringVarP(&opts.Client, "client", "c", "", "Client name used to derive the spec and prompt file names.")
	flags.StringVar(&opts.SpecFile, "spec", "", "Brand spec JSON file (default abm-pack-{client}.json).")
	flags.StringVar(&opts.InstructionsFile, "instructions", "", "Prompt-writing instructions file (default "+config.DefaultInstructionsFile+").")
	flags.StringSliceVar(&opts.ReferenceImages, "ref", nil, "Reference image path, pass twice: logo then template.")

	// Outputs
	flags.StringVarP(&opts.OutputDir, "output-dir", "o", "", "Directory for generated images (default "+config.DefaultOutputDir+").")
	flags.StringVar(&opts.BaseName, "base-name", "", "Use this batch name instead of allocating the next free one.")
	flags.StringVar(&opts.BasePrefix, "base-prefix", "", "Prefix for allocated batch names (default "+brandgen.DefaultBasePrefix+").")
	flags.StringVar(&opts.PromptOut, "prompt-out", "", "File receiving the generated prompt (default {client}_image_prompt.txt).")

	// Model behaviour
	flags.StringVar(&opts.PromptModel, "model", "", "Gemini model that writes the prompt.")
	flags.StringVar(&opts.ImageModel, "image-model", "", "Gemini model that renders the image.")
	flags.StringVar(&opts.ImageSize, "size", "", "Output resolution: 1K, 2K or 4K.")
	flags.StringVar(&opts.AspectRatio, "aspect-ratio", "", "Output aspect ratio, e.g. 16:9.")
	flags.StringVar(&opts.ThinkingLevel, "thinking-level", "", "Prompt model thinking level: low or high.")
	flags.BoolVar(&opts.NoSearch, "no-search", false, "Disable Google Search grounding for the prompt model.")

	// Execution control
	flags.DurationVar(&opts.Timeout, "timeout", config.DefaultTimeout, "Overall deadline for the run.")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging.")
}

func (a *app) preRun(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.opts.Verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	a.cfg = config.LoadConfig()
	a.opts.ApplyDefaults(a.cfg)
	return nil
}

// newProvider opens the Gemini client. Only stages that call the API need it.
func (a *app) newProvider(cmd *cobra.Command) (*gemini.Provider, error) {
	apiKey := a.cfg.GeminiAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	return gemini.New(cmd.Context(), &gemini.Config{APIKey: apiKey, Logger: a.logger})
}

func (a *app) newPipeline(provider brandgen.Provider) *brandgen.Pipeline {
	return brandgen.NewPipeline(provider,
		brandgen.WithLogger(a.logger),
		brandgen.WithBasePrefix(a.opts.BasePrefix),
	)
}

// job assembles a pipeline job from the resolved options. Spec and
// instructions are left for the caller to load.
func (a *app) job() brandgen.Job {
	return brandgen.Job{
		ReferencePaths:  a.opts.ReferenceImages,
		OutputDir:       a.opts.OutputDir,
		BaseName:        a.opts.BaseName,
		PromptPath:      a.opts.PromptOut,
		PromptConfig:    a.opts.PromptConfig(),
		SynthesisConfig: a.opts.SynthesisConfig(),
	}
}

// loadInputs reads the spec and the instructions named by the options.
func (a *app) loadInputs(job *brandgen.Job) error {
	if a.opts.SpecFile == "" {
		return fmt.Errorf("either --client or --spec is required")
	}
	spec, err := brandgen.LoadSpec(a.opts.SpecFile)
	if err != nil {
		return err
	}
	instructions, err := brandgen.LoadInstructions(a.opts.InstructionsFile)
	if err != nil {
		return err
	}
	job.Spec = spec
	job.Instructions = instructions
	return nil
}

func printSaved(cmd *cobra.Command, paths []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Saved %d image(s):\n", len(paths))
	for _, p := range paths {
		fmt.Fprintf(out, "  - %s\n", p)
	}
}
