package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"wavefront/internal/cmd"
	"wavefront/internal/context"
)

func main() {
	// Parse command-line flags
	debugFlag := flag.Bool("debug", false, "Enable debug output")
	dumpFlag := flag.Bool("dump", false, "Print every extracted group")
	flag.Parse()

	// Validate arguments
	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [--debug] [--dump] <level.obj>\n", filepath.Base(os.Args[0]))
		os.Exit(1)
	}

	filename := flag.Arg(0)

	// Create loader options
	options := &context.Options{
		Debug: *debugFlag,
		Dump:  *dumpFlag,
	}

	// Create loading context
	ctx := context.New(options)

	// Run loading pipeline
	if err := cmd.Load(filename, ctx); err != nil {
		ctx.EmitDiagnostics()
		fmt.Fprintf(os.Stderr, "\nLoading failed: %v\n", err)
		os.Exit(1)
	}

	// Emit any warnings/info diagnostics
	ctx.EmitDiagnostics()

	if ctx.Options.Dump {
		cmd.Dump(ctx)
	}

	fmt.Println(ctx.Level.Summary())
}
