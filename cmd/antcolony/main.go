// Command antcolony runs the ant colony solver against a Graphviz-like
// graph file, or benchmarks it across a range of synthetic graph sizes.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/brindlewood/antcolony/cmd/antcolony/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cli.Root().ExecuteContext(ctx); err != nil {
		log.New(os.Stderr).Error("antcolony failed", "err", err)
		os.Exit(1)
	}
}
