package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/peteraglen/loxo-go-client/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := cli.Execute(ctx, cli.BuildInfo{Version: version, Commit: commit, Date: date})

	stop()
	os.Exit(code)
}
