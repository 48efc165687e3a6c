// Package context provides the shared loading context for all loader phases.
//
// The loader follows the central "context" pattern: phases are stateless
// workers that receive a LoadContext and operate on the buffer and results
// inside it. All diagnostics flow through the context's bag; the core
// lexer and extractor never log.
package context

import (
	"fmt"
	"os"

	"wavefront/internal/diagnostics"
	"wavefront/internal/level"
)

// Options holds loader configuration. Passed to the context at creation
// time and remains immutable.
type Options struct {
	Debug bool // enable phase tracing on stderr
	Dump  bool // print every extracted group after loading
}

// LoadContext is the central hub for one loading session: the source
// buffer, configuration, collected diagnostics, and the classified result.
type LoadContext struct {
	// Diagnostics - centralized error and warning collection.
	// All phases report here instead of storing their own errors.
	Diagnostics *diagnostics.Bag

	// Options - loader configuration
	Options *Options

	// Path and Source - the single buffer this session parses.
	// The extractor borrows Source; it must stay alive and unmodified
	// for the session.
	Path   string
	Source []byte

	// Level - the classified result, set by the extract phase
	Level *level.Level
}

// New starts a new loading session.
func New(options *Options) *LoadContext {
	if options == nil {
		options = &Options{}
	}
	return &LoadContext{
		Diagnostics: diagnostics.NewBag(""),
		Options:     options,
	}
}

// LoadFile reads path fully into memory and makes it the session buffer.
func (ctx *LoadContext) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	ctx.SetSource(path, data)
	return nil
}

// SetSource installs an already-loaded buffer, e.g. an embedded level.
func (ctx *LoadContext) SetSource(path string, src []byte) {
	ctx.Path = path
	ctx.Source = src
}

// Report converts a phase failure into a diagnostic.
func (ctx *LoadContext) Report(err error) {
	ctx.Diagnostics.Add(diagnostics.FromError(ctx.Path, err))
}

// HasErrors returns true if any errors have been reported during loading.
func (ctx *LoadContext) HasErrors() bool {
	return ctx.Diagnostics.HasErrors()
}

// EmitDiagnostics outputs all collected diagnostics to the console.
// Typically called at the end of loading.
func (ctx *LoadContext) EmitDiagnostics() {
	emitter := diagnostics.NewEmitter()
	if ctx.Source != nil {
		emitter.SetSource(ctx.Path, ctx.Source)
	}
	ctx.Diagnostics.EmitAll(emitter)
}
