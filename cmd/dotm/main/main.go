package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/dotm/cmd/dotm"
	"github.com/arthur-debert/dotm/pkg/errors"
	"github.com/arthur-debert/dotm/pkg/style"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := dotm.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		style.Error("%s", errors.Message(err))
		stop()
		os.Exit(1)
	}
}
