// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package metrics implements a command to print
// the list of the known diversity metrics.
package metrics

import (
	"fmt"
	"strings"

	"github.com/js-arias/biodiv/diversity"
	"github.com/js-arias/command"
)

var Command = &command.Command{
	Usage: "metrics [alpha|beta]",
	Short: "print a list of the known diversity metrics",
	Long: `
Command metrics prints the names of the known diversity metrics in the
standard output. The names are the values accepted by the flag --metric of
the commands "alpha" and "beta".

By default both the alpha and the beta metrics will be printed. With the
argument "alpha" or "beta" only the metrics of that kind will be printed.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	kind := ""
	if len(args) > 0 {
		kind = strings.ToLower(args[0])
	}

	switch kind {
	case "":
		printList(c, "alpha", diversity.AlphaMetrics())
		printList(c, "beta", diversity.BetaMetrics())
	case "alpha":
		printList(c, "alpha", diversity.AlphaMetrics())
	case "beta":
		printList(c, "beta", diversity.BetaMetrics())
	default:
		msg := fmt.Sprintf("unknown metric kind %q", args[0])
		return c.UsageError(msg)
	}
	return nil
}

func printList(c *command.Command, kind string, names []string) {
	for _, n := range names {
		fmt.Fprintf(c.Stdout(), "%s\t%s\n", kind, n)
	}
}
