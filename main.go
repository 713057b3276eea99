package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/babarot/stripname/internal/cli"
)

const appName = "stripname"

// These variables are set in build step
var (
	version   = "unset"
	revision  = "unset"
	buildDate = "unset"
)

const exitCodeInterrupt = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cli.Run(ctx, cli.Version{
		AppName:   appName,
		Version:   version,
		Revision:  revision,
		BuildDate: buildDate,
	})
	if err == nil {
		return
	}
	if errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "%s: operation cancelled\n", appName)
		os.Exit(exitCodeInterrupt)
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
	os.Exit(1)
}
