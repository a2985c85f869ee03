// l5x2txt: Rockwell L5X project export → plain text reports
//
// Reads a Studio 5000 .L5X XML export and writes seven human readable reports
// (controller info, tags, UDTs, AOIs, I/O modules, tasks, programs) into the
// output directory. Existing reports are never overwritten; a timestamped
// name is chosen instead.
//
// Usage:
//
//	l5x2txt <l5x_path> <out_dir> [-v] [--config file]
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/damischa1/l5x-tools/internal/config"
	"github.com/damischa1/l5x-tools/internal/extract"
	"github.com/damischa1/l5x-tools/internal/l5x"
	"github.com/damischa1/l5x-tools/internal/log"
	"github.com/damischa1/l5x-tools/internal/report"
	"github.com/damischa1/l5x-tools/internal/safewrite"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
)

type options struct {
	verbose    bool
	configPath string
}

func main() {
	os.Exit(run(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, fs afero.Fs, stdout, stderr io.Writer) int {
	opts := &options{}
	cmd := newRootCmd(fs, opts, stdout, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	printError(stderr, err, opts.verbose)
	return 1
}

func newRootCmd(fs afero.Fs, opts *options, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "l5x2txt <l5x_path> <out_dir>",
		Short: "Export an L5X project into plain text reports",
		Long: "Reads a Rockwell Studio 5000 .L5X export and writes one text report per category.\n\n" +
			"Files written to <out_dir>:\n" + outputList(),
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return export(fs, stdout, stderr, args[0], args[1], opts)
		},
	}
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging and full error traces")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML file with output settings")
	return cmd
}

func outputList() string {
	cfg := config.Default()
	var b strings.Builder
	for _, c := range report.Catalogue {
		fmt.Fprintf(&b, "  %-36s %s\n", cfg.FileName(c.Key), c.Title)
	}
	return b.String()
}

func export(fs afero.Fs, stdout, stderr io.Writer, l5xPath, outDir string, opts *options) error {
	logger := log.NewCLILogger(stderr, opts.verbose)
	defer func() { _ = logger.Sync() }()

	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(opts.configPath); err != nil {
			return &configError{err: err}
		}
	}

	fmt.Fprintf(stdout, "Processing file: %s\n", l5xPath)
	analyzer, err := extract.Open(fs, l5xPath, extract.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Debug("document loaded", zap.String("path", l5xPath), zap.String("namespace", analyzer.Document().Namespace()))

	writer, err := safewrite.New(fs, safewrite.WithTimestampFormat(cfg.Output.TimestampFormat))
	if err != nil {
		return err
	}

	_, err = report.NewExporter(analyzer, writer, cfg, logger).Export(outDir, func(r report.Result) {
		okColor.Fprintf(stdout, "  > %s exported to %s\n", r.Category.Title, r.Path)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "\nExport completed successfully!")
	return nil
}

// configError marks a rejected --config file.
type configError struct{ err error }

func (e *configError) Error() string { return "config: " + e.err.Error() }
func (e *configError) Unwrap() error { return e.err }

func printError(w io.Writer, err error, verbose bool) {
	var (
		loadErr *l5x.Error
		cfgErr  *configError
	)
	switch {
	case errors.Is(err, l5x.ErrNotFound) && errors.As(err, &loadErr):
		failColor.Fprintf(w, "Error: The file '%s' does not exist.\n", loadErr.Path)
	case errors.Is(err, l5x.ErrParse), errors.Is(err, l5x.ErrInvalidFormat):
		failColor.Fprintf(w, "Error: %v\n", err)
	case errors.As(err, &cfgErr):
		failColor.Fprintf(w, "Error: %v\n", err)
	case isUsageError(err):
		failColor.Fprintf(w, "Error: %v\n", err)
		fmt.Fprintln(w, "Run 'l5x2txt --help' for usage.")
	default:
		failColor.Fprintf(w, "An unexpected error occurred: %v\n", err)
		if verbose {
			fmt.Fprintf(w, "%+v\n", err)
		}
	}
}

// isUsageError reports argument and flag errors raised by cobra before the
// command ran.
func isUsageError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "accepts ") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}
