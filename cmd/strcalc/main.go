// Command strcalc adds up delimited integers from the command line or over HTTP.
//
//	strcalc add "1,2\n3" --escapes
//	echo '//[;]' | strcalc add
//	strcalc serve
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		var rejected *rejectedError
		if !errors.As(err, &rejected) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}
