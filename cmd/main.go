package main

import (
	"log/slog"
	"os"

	"github.com/dasdy/vilviz/cmd/vilviz"
	"github.com/dasdy/vilviz/logging"
)

func main() {
	// Replaced in initConfig once --log-level is known.
	slog.SetDefault(slog.New(logging.NewHandler(os.Stderr, slog.LevelInfo, false)))

	vilviz.Execute()
}
