package main

import (
	"github.com/spf13/cobra"

	"rename/internal/config"
	"rename/internal/orchestrator"
	"rename/internal/output"
)

// newRootCmd builds the rename command. Individual rename failures are
// reported but do not fail the command; only invalid usage, an unreadable
// root or an unusable log file do.
func newRootCmd() *cobra.Command {
	opts := config.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "rename <directory>",
		Short: "Normalize file and directory names recursively",
		Long: `rename lowercases file and directory names below a directory and replaces
spaces, underscores and other disallowed characters with hyphens.
Only letters, digits, dots and single hyphens survive, so names such as
"a#b" or "a--b" are renamed too ("a-b").

Hidden entries and symbolic links are left alone. Every applied rename is
recorded in a JSON log so the run can be reverted with --undo.

Examples:
  rename ~/Downloads --dry-run
  rename ~/Downloads
  rename ~/Downloads --undo`,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.Undo {
				return cobra.MaximumNArgs(1)(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Directory = args[0]
			}
			cfg := output.DefaultConfig()
			cfg.Writer = cmd.OutOrStdout()
			cfg.ErrWriter = cmd.ErrOrStderr()
			cfg.Verbose = opts.Verbose
			cfg.Color = opts.ColorMode()
			out := output.New(cfg)

			run := orchestrator.Run
			if opts.Undo {
				run = orchestrator.Undo
			}
			summary, err := run(opts, out)
			if err != nil {
				return err
			}

			out.Verbose("%s", out.Accent(summary.PrintSummary()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Show the renames without applying them")
	cmd.Flags().BoolVar(&opts.Undo, "undo", false, "Revert the renames recorded in the log file")
	cmd.Flags().StringVar(&opts.LogFile, "log-file", opts.LogFile, "Path of the rename log")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Print phases, plan statistics and a summary")
	cmd.Flags().StringVar(&opts.Color, "color", opts.Color, "Color output: auto, always or never")
	cmd.Flags().BoolVar(&opts.SkipNormalizedDirs, "skip-normalized-dirs", false, "Do not rename directories whose names are already normalized")

	return cmd
}
