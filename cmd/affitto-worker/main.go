package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"affitto/internal/amqp"
	"affitto/internal/cli"
	"affitto/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production)
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting affitto-worker")

	rt := cli.LoadRuntime(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sender, err := cli.NewSender(ctx, rt)
	if err != nil {
		logger.Error("Failed to initialize mail transport", "error", err)
		os.Exit(1)
	}

	amqpClient, err := amqp.NewClient(rt.AMQPURL, rt.AMQPExchange, rt.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	sendWorker := worker.NewSendWorker(sender)

	go func() {
		if err := amqpClient.ConsumeStatements(ctx, sendWorker.HandleStatement); err != nil {
			if err != context.Canceled {
				logger.Error("Message consumption failed", "error", err)
			}
			cancel()
		}
	}()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Shutdown signal received", "signal", sig.String())
	case <-ctx.Done():
		logger.Info("Context cancelled")
	}

	logger.Info("Shutting down worker...")
	cancel()

	// Give the in-flight delivery a moment to settle before closing the
	// AMQP connection.
	time.Sleep(2 * time.Second)
	logger.Info("Worker shutdown complete")
}
