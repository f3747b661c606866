package clicommand

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adf-tools/adfdoc/cliconfig"
	"github.com/adf-tools/adfdoc/internal/docgen"
	"github.com/adf-tools/adfdoc/internal/osutil"
	"github.com/adf-tools/adfdoc/internal/pipeline"
	"github.com/adf-tools/adfdoc/logger"
	"github.com/adf-tools/adfdoc/stdin"
	"github.com/gofrs/flock"
	"github.com/urfave/cli"
)

const renderHelpDescription = `Usage:

   adfdoc render <file> [options...]

Description:

   Reads a pipeline definition exported from Azure Data Factory and appends
   a Markdown section describing it to a document: the pipeline's name and
   description, and each of its activities with their type, description,
   query, and dependency links.

   The section is appended, never inserted, so a driver script can call this
   command once per exported pipeline file and collect every section in a
   single document. The output file is locked while appending, so concurrent
   invocations won't interleave their sections (their order is still up to
   the caller).

   The pipeline definition can also be piped in on STDIN.

Example:

   $ adfdoc render pipelines/load_sales.json --output docs/pipelines.md
   $ adfdoc render pipelines/load_sales.json --dry-run
   $ az datafactory pipeline show ... | adfdoc render --output docs/pipelines.md`

type RenderConfig struct {
	FilePath string `cli:"arg:0" label:"pipeline file" validate:"file-exists"`
	Output   string `cli:"output"`
	DryRun   bool   `cli:"dry-run"`

	// Global flags
	Config   string `cli:"config"`
	Debug    bool   `cli:"debug"`
	LogLevel string `cli:"log-level"`
	NoColor  bool   `cli:"no-color"`
}

var RenderCommand = cli.Command{
	Name:        "render",
	Usage:       "Append the Markdown documentation for one pipeline export to a document",
	Description: renderHelpDescription,
	Flags: flatten([]cli.Flag{
		cli.StringFlag{
			Name:   "output",
			Usage:  "The Markdown document to append the rendered section to",
			EnvVar: "ADFDOC_OUTPUT",
		},
		cli.BoolFlag{
			Name:   "dry-run",
			Usage:  "Rather than appending to the output document, print the rendered section to STDOUT",
			EnvVar: "ADFDOC_DRY_RUN",
		},
	}, globalFlags),
	Action: func(c *cli.Context) {
		cfg := RenderConfig{}

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

		if err := render(cfg, l, os.Stdout); err != nil {
			l.Fatal("%s", err)
		}
	},
}

func render(cfg RenderConfig, l logger.Logger, stdout io.Writer) error {
	input, filename, err := readPipelineFile(cfg.FilePath, l)
	if err != nil {
		return err
	}

	doc, err := pipeline.Parser{Filename: filename, Contents: input}.Parse()
	if err != nil {
		return err
	}

	l.Debug("Parsed pipeline %q with %d activities", doc.Name, len(doc.Properties.Activities))

	if cfg.DryRun {
		return docgen.Render(stdout, doc)
	}

	if cfg.Output == "" {
		return errors.New("missing output document path, provide --output or use --dry-run")
	}

	if err := appendSection(cfg.Output, doc); err != nil {
		return err
	}

	l.Info("Appended documentation for pipeline %q to %q", doc.Name, cfg.Output)
	return nil
}

// readPipelineFile reads the pipeline export, either from the provided path
// or from STDIN.
func readPipelineFile(path string, l logger.Logger) (input []byte, filename string, err error) {
	switch {
	case path != "":
		l.Info("Reading pipeline export from \"%s\"", path)

		filename = filepath.Base(path)
		input, err = os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("reading pipeline file: %w", err)
		}

	case stdin.IsReadable():
		l.Info("Reading pipeline export from STDIN")

		input, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("reading from STDIN: %w", err)
		}

	default:
		return nil, "", errors.New("no pipeline file was provided and nothing was piped to STDIN, see `adfdoc render --help`")
	}

	if len(input) == 0 {
		return nil, "", errors.New("pipeline file is empty")
	}

	return input, filename, nil
}

// appendSection renders the pipeline section onto the end of the output
// document, holding an advisory lock for the duration of the append. The
// file handle is released on every path, including render failures.
func appendSection(output string, doc *pipeline.Document) error {
	path, err := osutil.NormalizeFilePath(output)
	if err != nil {
		return fmt.Errorf("resolving output path: %w", err)
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking output document: %w", err)
	}
	defer lock.Unlock() //nolint:errcheck // the lock file is advisory

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening output document: %w", err)
	}
	defer f.Close() //nolint:errcheck // double close on the happy path is harmless

	if err := docgen.Render(f, doc); err != nil {
		return err
	}

	return f.Close()
}
