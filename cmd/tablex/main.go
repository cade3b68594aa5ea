package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rusperres/tablex/internal/failure"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var fErr *failure.Error
		if errors.As(err, &fErr) {
			if emitErr := failure.Emit(os.Stderr, fErr); emitErr != nil {
				fmt.Fprintln(os.Stderr, emitErr)
			}
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
