// Package main provides the CLI entrypoint for protofield-generator.
//
// protofield-generator reads struct tags of the form
//
//	Items []*Item `proto:"message,repeated,tag=3"`
//
// and writes, next to each source file, the wire encoding methods of every
// annotated message type:
//   - gen: analyze, plan and write *_proto.go files
//   - check: report generated files that are missing or out of date
//   - plan: dump the resolved field plan for debugging
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
