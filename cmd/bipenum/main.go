// Command bipenum lists every maximal connected induced bipartite subgraph
// of a graph read from a file, stdin or a generator expression.
//
//	bipenum [flags] [file]
//	bipenum -gen cycle:7
//	bipenum -one-based -order alternating -db /tmp/idx graph.txt
//
// Each solution prints as "maximal: [..]" when emitted; every neighbor probe
// that lands on a known solution prints as "duplicated: [..]".
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/plan-systems/klog"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses args, executes one enumeration and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fset := flag.NewFlagSet("bipenum", flag.ContinueOnError)
	fset.SetOutput(stderr)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
	})
	defer klog.Flush()

	cfg := defaultConfig()
	cfg.register(fset)
	fset.Usage = func() {
		fmt.Fprintln(stderr, "usage: bipenum [flags] [file]")
		fset.PrintDefaults()
	}
	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if err := cfg.finish(fset.Args()); err != nil {
		fmt.Fprintln(stderr, "bipenum:", err)
		return exitUsage
	}

	out := bufio.NewWriter(stdout)
	defer out.Flush()

	if err := execute(cfg, stdin, out); err != nil {
		out.Flush()
		klog.Errorf("%v", err)
		fmt.Fprintln(stderr, "bipenum:", err)
		return exitError
	}

	return exitOK
}
