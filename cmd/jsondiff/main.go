// Command jsondiff compares pairs of JSON files line by line, structurally,
// or both.
//
//	jsondiff [OPTIONS] LEFT RIGHT [LEFT RIGHT ...]
//
// Pass "-" as one file to read it from stdin. Exit status is 0 when no pair
// differs, 1 when any pair differs, and 2 on errors.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
