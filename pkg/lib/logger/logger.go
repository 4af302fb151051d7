package logger

import (
	"errors"

	"log/slog"
	"os"

	constants "github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/config"
	"github.com/Akashtl-Tiwari/bytebite-food-ordering/pkg/lib/logger/handler/slogpretty"
)

func SetupLogger(env string) (*slog.Logger, error) {
	var log *slog.Logger

	switch env {
	case constants.EnvLocal:
		log = setupPrettySlog()
	case constants.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case constants.EnvProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		return nil, errors.New("failed to init logger: wrong env variable")
	}

	return log, nil
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
