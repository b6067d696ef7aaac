package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/lightfetch/cli"
	"github.com/ardnew/lightfetch/log"
)

func main() {
	err := cli.Run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		log.Debug("run failed", slog.Any("error", err)) // slog uses LogValue()
		cli.Report(os.Stderr, err)
		os.Exit(1)
	}
}
