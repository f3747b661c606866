package clicommand

import (
	"context"
	"fmt"
	"os"

	"github.com/adf-tools/adfdoc/cliconfig"
	"github.com/adf-tools/adfdoc/internal/pipeline"
	"github.com/adf-tools/adfdoc/logger"
	"github.com/urfave/cli"
)

const validateHelpDescription = `Usage:

   adfdoc validate <file> [options...]

Description:

   Checks a pipeline definition exported from Azure Data Factory against the
   document schema this tool reads, and reports every violation. Useful for
   finding missing keys in a batch of exports before a documentation run,
   where a single bad file would abort the run partway through.

   Nothing is rendered or written.

Example:

   $ adfdoc validate pipelines/load_sales.json`

type ValidateConfig struct {
	FilePath string `cli:"arg:0" label:"pipeline file" validate:"required,file-exists"`

	// Global flags
	Config   string `cli:"config"`
	Debug    bool   `cli:"debug"`
	LogLevel string `cli:"log-level"`
	NoColor  bool   `cli:"no-color"`
}

var ValidateCommand = cli.Command{
	Name:        "validate",
	Usage:       "Check a pipeline export against the document schema",
	Description: validateHelpDescription,
	Flags:       globalFlags,
	Action: func(c *cli.Context) {
		cfg := ValidateConfig{}

		loader := cliconfig.Loader{
			CLI:                    c,
			Config:                 &cfg,
			DefaultConfigFilePaths: DefaultConfigFilePaths(),
		}
		if err := loader.Load(); err != nil {
			fmt.Printf("%s", err)
			os.Exit(1)
		}

		l := CreateLogger(&cfg)

		if err := validate(context.Background(), cfg, l); err != nil {
			l.Fatal("%s", err)
		}
	},
}

func validate(ctx context.Context, cfg ValidateConfig, l logger.Logger) error {
	input, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		return fmt.Errorf("reading pipeline file: %w", err)
	}

	messages, err := pipeline.ValidateBytes(ctx, input)
	if err != nil {
		return err
	}

	if len(messages) > 0 {
		for _, message := range messages {
			l.Error("%s", message)
		}
		return fmt.Errorf("pipeline file %q has %d schema violations", cfg.FilePath, len(messages))
	}

	l.Notice("Pipeline file %q is valid", cfg.FilePath)
	return nil
}
