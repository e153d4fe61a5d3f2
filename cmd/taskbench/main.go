// SPDX-License-Identifier: MIT

// Command taskbench runs the benchmark suite described by a YAML file, or the
// built-in reference suite when no file is given.
//
//	taskbench run --config suite.yaml --metrics
//	taskbench list
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
