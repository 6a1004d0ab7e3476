package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/yumyai/binassess/logger"
	"github.com/yumyai/binassess/pkg/handler"
	"github.com/yumyai/binassess/pkg/handler/request"
	"go.uber.org/zap"
)

const VERSION = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

func run(argv []string, getenv func(string) string, stdout, stderr io.Writer) int {

	// Try load env
	dotenvErr := godotenv.Load()

	opts, code, done := parseOptions(argv, getenv, stdout, stderr)
	if done {
		return code
	}

	// Establish logger
	if err := logger.InitLogger(opts.LogLevel); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFailure
	}
	defer logger.Sync() // Make sure that the buffered is flushed.

	if dotenvErr != nil {
		logger.Debug("No .env found, using local environment")
	}
	logger.Debug("Start:", zap.String("Version", VERSION))

	if err := handler.Run(opts.Request); err != nil {
		fmt.Fprintf(stderr, "Error, %v\n", err)
		if request.IsUsageError(err) {
			return exitUsage
		}
		return exitFailure
	}

	logger.Info("Wrote summary table", zap.String("output", opts.Request.Output))
	return exitSuccess
}
