package main

import (
	"log"
	"os"
	"strings"

	"textpart/cmd"
	"textpart/pkg/config"
	"textpart/pkg/logging"
	"textpart/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	cfg, cfgErr := config.Load()

	if err := logging.Setup(cfg.Debug, "textpart", version.Get().Version); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := logging.Logger

	if cfgErr != nil {
		// A broken config file is not fatal; built-in defaults apply.
		logger.Warn("Failed to load config file, using defaults", zap.Error(cfgErr))
	}

	if err := cmd.Execute(cfg, logger); err != nil {
		logger.Fatal("textpart execution failed", zap.Error(err))
	}

	// Syncing to a closed or piped stderr reports spurious errors; only sync
	// when stderr is a terminal or a regular file.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := logger.Sync(); syncErr != nil {
			if !strings.Contains(strings.ToLower(syncErr.Error()), "invalid argument") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
