// Package main provides the crossforge CLI for composing cross-compilation
// toolchains, building WebAssembly package artifacts, and assembling
// native-library development shells.
package main

import (
	"context"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	Execute(ctx)
}
