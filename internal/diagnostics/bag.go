package diagnostics

import (
	"fmt"
	"os"
	"sync"
)

// Bag collects diagnostics during loading
type Bag struct {
	diagnostics []*Diagnostic
	filepath    string
	mu          sync.Mutex
	errorCount  int
	warnCount   int
}

// NewBag creates a new diagnostic bag for a file
func NewBag(filepath string) *Bag {
	return &Bag{
		diagnostics: make([]*Diagnostic, 0),
		filepath:    filepath,
	}
}

// Add adds a diagnostic to the bag
func (db *Bag) Add(diag *Diagnostic) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.diagnostics = append(db.diagnostics, diag)

	// If this is the first diagnostic with a filepath, use it as the bag's filepath
	if db.filepath == "" && diag.FilePath != "" {
		db.filepath = diag.FilePath
	}

	switch diag.Severity {
	case Error:
		db.errorCount++
	case Warning:
		db.warnCount++
	}
}

// HasErrors returns true if there are any errors
func (db *Bag) HasErrors() bool {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount > 0
}

// ErrorCount returns the number of errors
func (db *Bag) ErrorCount() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.errorCount
}

// Diagnostics returns all diagnostics
func (db *Bag) Diagnostics() []*Diagnostic {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.diagnostics
}

// EmitAll renders every collected diagnostic to stderr, with a summary
// when anything was reported.
func (db *Bag) EmitAll(emitter *Emitter) {
	if emitter == nil {
		emitter = NewEmitter()
	}

	db.mu.Lock()
	diagnostics := make([]*Diagnostic, len(db.diagnostics))
	copy(diagnostics, db.diagnostics)
	filepath := db.filepath
	db.mu.Unlock()

	for _, diag := range diagnostics {
		emitter.Emit(filepath, diag)
	}

	if db.errorCount > 0 || db.warnCount > 0 {
		db.printSummary()
	}
}

func (db *Bag) printSummary() {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.errorCount > 0 {
		fmt.Fprintf(os.Stderr, "\nLoading failed with %d error(s)", db.errorCount)
		if db.warnCount > 0 {
			fmt.Fprintf(os.Stderr, " and %d warning(s)", db.warnCount)
		}
		fmt.Fprintln(os.Stderr)
	} else if db.warnCount > 0 {
		fmt.Fprintf(os.Stderr, "\nLoading succeeded with %d warning(s)\n", db.warnCount)
	}
}

// Clear removes all diagnostics
func (db *Bag) Clear() {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.diagnostics = make([]*Diagnostic, 0)
	db.errorCount = 0
	db.warnCount = 0
}
