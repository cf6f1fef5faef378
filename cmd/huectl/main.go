package main

import (
	"context"
	"hue-controller/internal/adapters/input/cli"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Run(ctx, os.Args[1:])
	if err == nil {
		return
	}
	if cli.IsHelp(err) {
		os.Exit(0)
	}
	if _, ok := err.(*flags.Error); ok {
		// go-flags has already printed the message
		os.Exit(2)
	}
	log.Fatal(err)
}
