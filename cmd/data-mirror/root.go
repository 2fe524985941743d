package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fgeck/data-mirror/internal/config"
	"github.com/fgeck/data-mirror/internal/logging"
	"github.com/fgeck/data-mirror/internal/models"
	"github.com/fgeck/data-mirror/internal/services/dispatcher"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

// UsageError reports arguments that could not be parsed into a command.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// usageArgs turns positional argument failures into usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}

// app carries the state shared by one command tree.
type app struct {
	parser     *config.Parser
	settings   models.Settings
	logger     zerolog.Logger
	dispatcher dispatcher.Service
	stderr     io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		parser: config.NewParser(),
		logger: zerolog.Nop(),
		stderr: stderr,
	}

	cmd := &cobra.Command{
		Use:   "data-mirror",
		Short: "Data Mirror CLI",
		Long: `data-mirror moves data between databases:
  - egress:  moving data out
  - ingress: moving data in

Each command takes --type to select the database kind (defaults to postgres).`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return &UsageError{Err: errors.New("a command is required: egress or ingress")}
		},
		PersistentPreRunE: a.setup,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	// Registered explicitly so cobra does not claim -v for it.
	cmd.Flags().Bool("version", false, "version for data-mirror")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.SetHelpCommand(newHelpCmd())
	cmd.AddCommand(newEgressCmd(a))
	cmd.AddCommand(newIngressCmd(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.parser.BindFlags(cmd.Flags()); err != nil {
		return err
	}
	a.settings = a.parser.Settings()
	a.logger = logging.New(a.stderr, a.settings.Log)
	if a.dispatcher == nil {
		a.dispatcher = dispatcher.NewWithWriter(a.logger, cmd.OutOrStdout())
	}
	return nil
}

// dispatch hands the parsed command to the dispatcher.
func (a *app) dispatch(cmd *cobra.Command, command models.Command) error {
	if err := a.dispatcher.Dispatch(cmd.Context(), models.Cli{Command: command}); err != nil {
		a.logger.Error().Err(err).Str("command", command.Name()).Msg("command failed")
		return err
	}
	return nil
}

// newHelpCmd replaces cobra's help command, which prints the root help for
// topics it does not know.
func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Help about any command",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, rest, err := cmd.Root().Find(args)
			if err != nil || len(rest) > 0 {
				return &UsageError{Err: fmt.Errorf("unknown help topic %q", strings.Join(args, " "))}
			}
			target.InitDefaultHelpFlag()
			return target.Help()
		},
	}
}

// Execute runs the root command against the process arguments.
func Execute() error {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) error {
	if args == nil {
		args = []string{}
	}

	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return nil
	}

	_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
	}

	return err
}
