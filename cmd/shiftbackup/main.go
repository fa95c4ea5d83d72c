package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-shift-keeper/internal/app"
	"github.com/MKhiriev/go-shift-keeper/internal/client"
	"github.com/MKhiriev/go-shift-keeper/internal/config"
	"github.com/MKhiriev/go-shift-keeper/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n%s\n", err, app.MsgUsage)
		return 2
	}

	log := logger.NewClientLogger("shiftbackup", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli, err := client.New(ctx, cfg, os.Stdout, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.MsgStorage, err)
		return 1
	}
	defer func() {
		if err := cli.Close(); err != nil {
			log.Err(err).Msg("close client app error")
		}
	}()

	if err = cli.Run(ctx, cfg.Args); err != nil {
		log.Err(err).Msg("command failed")
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) || errors.Is(err, client.ErrMissingArgument) {
			fmt.Fprintf(os.Stderr, "%v\n%s\n", err, app.MsgUsage)
			return 2
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.Describe(err), err)
		return 1
	}

	return 0
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
