package main

import (
	"context"
	"fmt"
	"os"

	"affitto/internal/amqp"
	"affitto/internal/billing"
	"affitto/internal/cli"
	"affitto/internal/config"
	"affitto/internal/core"
	"affitto/internal/mail"
)

const usageText = `usage: affitto CONFIG_FILE MODE

Compute the monthly rent split from CONFIG_FILE and email each household
member an itemized statement.

MODE:
  dry    print each statement without sending anything
  real   deliver each statement over the configured mail transport
  queue  publish each statement to AMQP for affitto-worker to deliver
`

func usage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	if len(os.Args) < 3 {
		usage()
		os.Exit(1)
	}
	configPath, mode := os.Args[1], os.Args[2]

	// Load .env file for local development (ignore errors in production)
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Error("Failed to load configuration", "error", err, "path", configPath)
		os.Exit(1)
	}

	calc, err := billing.NewCalculator(cfg, core.Today())
	if err != nil {
		logger.Error("Failed to resolve billing run", "error", err)
		os.Exit(1)
	}

	var sender mail.Sender
	switch mode {
	case "dry":
		sender = mail.NewConsoleSender(os.Stdout)
	case "real":
		rt := cli.LoadRuntime(logger)
		sender, err = cli.NewSender(ctx, rt)
		if err != nil {
			logger.Error("Failed to initialize mail transport", "error", err)
			os.Exit(1)
		}
	case "queue":
		rt := cli.LoadRuntime(logger)
		client, err := amqp.NewClient(rt.AMQPURL, rt.AMQPExchange, rt.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		defer client.Close()
		sender = client
	default:
		usage()
		os.Exit(1)
	}

	logger.Info("Starting billing run",
		"mode", mode,
		"due_date", calc.DueDate().ISO(),
		"people", len(cfg.People),
		"payers", calc.NumPayers())

	if err := billing.NewRunner(calc, sender).Run(ctx); err != nil {
		logger.Error("Billing run finished with failures", "error", err)
		os.Exit(1)
	}
	logger.Info("Billing run complete")
}
