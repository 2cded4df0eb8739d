// Package cli provides common initialization shared by the binaries:
// logging setup, .env loading, and mail transport construction.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"affitto/internal/config"
	"affitto/internal/mail"
)

// SetupLogger initializes structured logging with default settings and
// installs it as the default logger.
func SetupLogger() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadRuntime loads environment settings and validates them, exiting the
// process on failure.
func LoadRuntime(logger *slog.Logger) *config.Runtime {
	rt := config.LoadEnv()
	if err := rt.Validate(); err != nil {
		logger.Error("Runtime configuration validation failed", "error", err)
		os.Exit(1)
	}
	return rt
}

// NewSender builds the configured mail transport.
func NewSender(ctx context.Context, rt *config.Runtime) (mail.Sender, error) {
	switch rt.MailTransport {
	case config.TransportSMTP:
		return mail.NewSMTPSender(rt.SMTPAddr, rt.SMTPUsername, rt.SMTPPassword), nil
	case config.TransportGmail:
		sender, err := mail.NewGmailSenderFromEnv(ctx)
		if err != nil {
			return nil, fmt.Errorf("gmail transport: %w", err)
		}
		return sender, nil
	default:
		return nil, fmt.Errorf("unknown mail transport %q", rt.MailTransport)
	}
}
