// Package logs builds the process-wide slog logger from the env config.
package logs

import (
	"log/slog"
	"os"

	"herbaciarnia/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the logger. log.pretty selects a human-readable text handler
// for local development; otherwise the shop logs JSON lines.
func New(params Params) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(params.Config.Env.Log.Level)); err != nil {
		return nil, errors.Wrapf(err, "unknown log level: %s", params.Config.Env.Log.Level)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if params.Config.Env.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler).With(
		slog.String("service", params.Config.Env.ServiceName),
	), nil
}
