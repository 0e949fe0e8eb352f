package utils

import (
	"log/slog"
	"os"

	"github.com/Bossofgyms/newbot/internal/logger"
)

// Must stops the process when a start-up step fails.
func Must(log *slog.Logger, step string, err error) {
	if err != nil {
		log.Error("не удалось запустить бота", slog.String("step", step), logger.Err(err))
		os.Exit(1)
	}
}
