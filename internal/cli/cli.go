package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vk/ldaggo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const longHelp = `Analyse a leveled expression tree.

The tree is read from TREE_FILE (.hcl, .yaml or .yml). Without a file the
built-in reference tree (A + B * C) / D is used. The report lists node levels,
the node count, QH positions, the distance between two nodes and the in-order
instruction schedule.

Nodes are addressed by path from the root, e.g. root.left.right.left.`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		config    *app.Config
		treePath  string
		export    string
		start     int
		from, to  string
		format    string
		logFormat string
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:           "ldag [flags] [TREE_FILE]",
		Short:         "Analyse a leveled expression tree",
		Long:          longHelp,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			slog.Debug("Arguments parsed successfully.")

			path := treePath
			if path == "" && len(posArgs) > 0 {
				path = posArgs[0]
			}
			slog.Debug("Tree path determined.", "path", path)

			cfg := app.Config{
				TreePath:   path,
				ExportPath: export,
				From:       from,
				To:         to,
				Format:     strings.ToLower(format),
				LogFormat:  strings.ToLower(logFormat),
				LogLevel:   strings.ToLower(logLevel),
			}
			if cmd.Flags().Changed("start") {
				cfg.StartPosition = &start
			}

			validated, err := app.NewConfig(cfg)
			if err != nil {
				return err
			}
			config = validated
			return nil
		},
	}
	// A nil slice would make cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.StringVarP(&treePath, "tree", "t", "", "Path to the tree description file.")
	flags.StringVar(&export, "export", "", "Write the analysed tree as HCL to this path.")
	flags.IntVarP(&start, "start", "s", 0, "Starting QH position (overrides the tree file).")
	flags.StringVar(&from, "from", "", "Path of the first node of the distance query (default "+app.DefaultFrom+").")
	flags.StringVar(&to, "to", "", "Path of the second node of the distance query (default "+app.DefaultTo+").")
	flags.StringVar(&format, "format", "text", "Report format. Options: 'text' or 'json'.")
	flags.StringVar(&logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	// Help was requested: cobra printed it and skipped RunE.
	if config == nil {
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
