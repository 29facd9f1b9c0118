// Package cli implements the csv2lua command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/csv2lua/internal/convert"
	"github.com/mesh-intelligence/csv2lua/internal/paths"
	"github.com/mesh-intelligence/csv2lua/pkg/csv2lua"
	"github.com/mesh-intelligence/csv2lua/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// ErrArity is returned for a wrong number of positional arguments when
// strict_args is enabled.
var ErrArity = errors.New("expected exactly 3 arguments: <input-path> <output-path> <global-name>")

// rootFlags holds flag values for one command instance.
type rootFlags struct {
	configFile string
	verbose    bool
}

// NewRootCmd creates the csv2lua command.
func NewRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "csv2lua <input-path> <output-path> <global-name>",
		Short: "Convert a CSV file to a Lua table script",
		Long: `csv2lua reads a comma-separated file whose first row names the columns and
writes a Lua script assigning a table of rows to <global-name>, ready to be
loaded with dofile. Cells that parse as integers are written unquoted; all
other cells are written as double-quoted strings.`,
		Example: "  csv2lua bands.csv bands.lua BANDS",
		Version: csv2lua.Version,
		Args:    cobra.ArbitraryArgs,
		// Errors are printed by Execute with an exit code.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &flags, args)
		},
	}
	root.SetVersionTemplate("csv2lua v{{.Version}}\n")

	root.Flags().StringVar(&flags.configFile, "config", "", "config file (default: $XDG_CONFIG_HOME/csv2lua/config.yaml)")
	root.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log each converted row to stderr")

	return root
}

func run(cmd *cobra.Command, flags *rootFlags, args []string) error {
	cfgPath, explicit, err := paths.ResolveConfigFile(flags.configFile)
	if err != nil {
		return fmt.Errorf("resolve config file: %w", err)
	}
	cfg, err := loadConfig(cfgPath, explicit, cmd.Flags())
	if err != nil {
		return err
	}

	if len(args) != 3 {
		fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
		if cfg.GetBool(cfgKeyStrictArgs) {
			return fmt.Errorf("%w, got %d", ErrArity, len(args))
		}
		return nil
	}

	var opts []convert.Option
	if cfg.GetBool(cfgKeyVerbose) {
		opts = append(opts, convert.WithLogger(log.New(cmd.ErrOrStderr(), "csv2lua: ", 0)))
	}

	return convert.Convert(args[0], args[1], args[2], opts...)
}

// Run executes the command with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// Execute runs csv2lua with the process arguments and returns the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// exitCode maps write failures to a system error; everything else is the
// caller's input.
func exitCode(err error) int {
	if errors.Is(err, types.ErrOutput) {
		return exitSysError
	}
	return exitUserError
}
