package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/hexboard/internal/cli"
	hexerrors "github.com/matzehuels/hexboard/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stderr, cli.LogInfo)
	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		if code := hexerrors.GetCode(err); code != "" {
			c.Logger.Error(hexerrors.UserMessage(err), "code", code)
		} else {
			c.Logger.Error(err)
		}
		os.Exit(1)
	}
}
