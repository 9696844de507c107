// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

// Command donate lists donation campaigns, shows their progress and submits
// donations against the remote campaign service.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	logging "github.com/farhanmansurii/Donate-frontend/pkg/log"
	"github.com/farhanmansurii/Donate-frontend/pkg/utils"
)

func main() {
	// Missing .env files are fine
	_ = godotenv.Load(".env", ".env.local")

	logging.InitStructureLogConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	otelShutdown, err := utils.SetupOTelSDK(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "error setting up OpenTelemetry SDK", "error", err)
		stop()
		os.Exit(1)
	}

	code := 0
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		code = 1
	}

	if err := otelShutdown(context.Background()); err != nil {
		slog.ErrorContext(ctx, "error shutting down OpenTelemetry SDK", "error", err)
	}
	stop()
	os.Exit(code)
}
