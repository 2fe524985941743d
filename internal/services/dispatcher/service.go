// Package dispatcher routes a parsed invocation to its handler.
package dispatcher

import (
	"context"
	"fmt"
	"io"

	"github.com/fgeck/data-mirror/internal/models"
	"github.com/rs/zerolog"
)

// Service defines the interface for running a parsed command.
type Service interface {
	Dispatch(ctx context.Context, cli models.Cli) error
}

// Impl implements the dispatcher Service interface.
type Impl struct {
	out    io.Writer
	logger zerolog.Logger
}

// NewWithWriter creates a dispatcher writing to out.
func NewWithWriter(logger zerolog.Logger, out io.Writer) *Impl {
	return &Impl{
		out:    out,
		logger: logger,
	}
}

// Dispatch runs the selected command.
func (s *Impl) Dispatch(ctx context.Context, cli models.Cli) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("dispatch aborted: %w", err)
	}

	switch cmd := cli.Command.(type) {
	case models.EgressCmd:
		return s.runEgress(cmd)
	case models.IngressCmd:
		return s.runIngress(cmd)
	default:
		return fmt.Errorf("unsupported command %T", cli.Command)
	}
}

func (s *Impl) runEgress(cmd models.EgressCmd) error {
	return s.report(cmd)
}

func (s *Impl) runIngress(cmd models.IngressCmd) error {
	return s.report(cmd)
}

// report writes the status line. The type is printed verbatim.
func (s *Impl) report(cmd models.Command) error {
	s.logger.Debug().
		Str("command", cmd.Name()).
		Str("type", cmd.DatabaseType()).
		Msg("dispatching command")

	if _, err := fmt.Fprintf(s.out, "Running %s with type: %s\n", cmd.Name(), cmd.DatabaseType()); err != nil {
		return fmt.Errorf("writing %s status: %w", cmd.Name(), err)
	}

	return nil
}
