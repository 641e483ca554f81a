// Command healthcheck probes the admin listener and exits non-zero when it is
// not healthy. It is meant for container HEALTHCHECK instructions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"loremserver/internal/probe"
)

func main() {
	url := flag.String("url", "http://127.0.0.1:9090/healthz", "endpoint to probe")
	timeout := flag.Duration("timeout", 3*time.Second, "overall probe timeout")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := probe.Check(ctx, probe.NewClient(*timeout), *url); err != nil {
		fmt.Fprintf(os.Stderr, "healthcheck: %v\n", err)
		os.Exit(1)
	}
}
