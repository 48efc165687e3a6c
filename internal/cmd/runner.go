package cmd

import (
	"fmt"
	"os"

	"wavefront/internal/context"
	"wavefront/internal/diagnostics"
	"wavefront/internal/level"
	"wavefront/internal/parser"
)

// RunReadPhase loads the level file into the session buffer.
func RunReadPhase(entryPoint string, ctx *context.LoadContext) error {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Phase 1] Read %s\n", entryPoint)
	}

	if err := ctx.LoadFile(entryPoint); err != nil {
		return err
	}

	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "  ✓ Read %d byte(s)\n", len(ctx.Source))
	}

	return nil
}

// RunExtractPhase drives the extractor over the buffer and classifies every
// named group into level entities. This is the extract phase worker - the
// extractor itself never reports, so failures are converted to diagnostics
// here.
func RunExtractPhase(ctx *context.LoadContext) error {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Phase 2] Extract + Classify\n")
	}

	lvl, err := level.Build(parser.New(ctx.Source))
	if err != nil {
		ctx.Report(err)
		return fmt.Errorf("extraction failed on %s: %w", ctx.Path, err)
	}
	ctx.Level = lvl

	if ctx.Options.Debug {
		total := len(lvl.Cubes) + len(lvl.Pickups) + len(lvl.Rest)
		if lvl.Player != nil {
			total++
		}
		if lvl.ExitDoor != nil {
			total++
		}
		fmt.Fprintf(os.Stderr, "  ✓ Extracted %d object(s)\n", total)
	}

	return nil
}

// RunCheckPhase validates the classified level and reports warnings for
// suspicious authoring: a missing spawn or exit, and groups whose bounding
// box is undefined because they carry no vertices.
func RunCheckPhase(ctx *context.LoadContext) {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Phase 3] Check\n")
	}

	lvl := ctx.Level
	if lvl.Player == nil {
		ctx.Diagnostics.Add(warn("level has no player spawn"))
	}
	if lvl.ExitDoor == nil {
		ctx.Diagnostics.Add(warn("level has no exit door"))
	}

	for _, e := range allEntities(lvl) {
		if !e.Bounds.Valid() {
			ctx.Diagnostics.Add(warn(fmt.Sprintf("object %q has no vertices; its bounds are undefined", e.Name)))
		}
	}

	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "  ✓ Checked level (%d warning(s))\n", len(ctx.Diagnostics.Diagnostics())-ctx.Diagnostics.ErrorCount())
	}
}

// Load runs the full loading pipeline: read, extract/classify, check.
// All phases operate on the LoadContext and report through ctx.Diagnostics.
// Returns error only for fatal loading failures.
func Load(entryPoint string, ctx *context.LoadContext) error {
	if ctx.Options.Debug {
		fmt.Fprintf(os.Stderr, "\n[Loading Started] Entry Point: %s\n", entryPoint)
	}

	if err := RunReadPhase(entryPoint, ctx); err != nil {
		return err
	}

	if err := RunExtractPhase(ctx); err != nil {
		return err
	}

	RunCheckPhase(ctx)

	if ctx.HasErrors() {
		return fmt.Errorf("loading failed with errors")
	}

	return nil
}

// Dump writes a per-entity listing to stdout, one line per group with its
// classification, vertex count and bounds.
func Dump(ctx *context.LoadContext) {
	for _, e := range allEntities(ctx.Level) {
		fmt.Printf("%-10s %-24s %3d vertex(es)", e.Kind, e.Name, len(e.Points))
		if e.Bounds.Valid() {
			c := e.Center()
			fmt.Printf("  center (%.2f, %.2f, %.2f)", c.X(), c.Y(), c.Z())
		} else {
			fmt.Printf("  bounds undefined")
		}
		fmt.Println()
	}
}

func allEntities(lvl *level.Level) []*level.Entity {
	out := make([]*level.Entity, 0, len(lvl.Cubes)+len(lvl.Pickups)+len(lvl.Rest)+2)
	out = append(out, lvl.Cubes...)
	out = append(out, lvl.Pickups...)
	if lvl.Player != nil {
		out = append(out, lvl.Player)
	}
	if lvl.ExitDoor != nil {
		out = append(out, lvl.ExitDoor)
	}
	out = append(out, lvl.Rest...)
	return out
}

func warn(msg string) *diagnostics.Diagnostic {
	return diagnostics.NewWarning(msg)
}
