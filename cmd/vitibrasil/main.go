package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/vitivinicultura-api/cmd/vitibrasil/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	commands.ExecuteContext(ctx)
}
