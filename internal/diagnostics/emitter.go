package diagnostics

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"wavefront/colors"
)

const lineNumFormat = "%*d | "

// SourceCache caches source file contents for error reporting
type SourceCache struct {
	files map[string][]string
}

func NewSourceCache() *SourceCache {
	return &SourceCache{
		files: make(map[string][]string),
	}
}

// SetSource registers an already-loaded buffer for a path so the emitter
// never re-reads the file the loader has in memory.
func (sc *SourceCache) SetSource(filepath string, src []byte) {
	sc.files[filepath] = strings.Split(string(src), "\n")
}

// GetLine retrieves a specific line from a source file
func (sc *SourceCache) GetLine(filepath string, line int) (string, error) {
	if lines, ok := sc.files[filepath]; ok {
		if line > 0 && line <= len(lines) {
			return lines[line-1], nil
		}
		return "", fmt.Errorf("line %d out of range", line)
	}

	// Load file
	file, err := os.Open(filepath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	lines := make([]string, 0)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	sc.files[filepath] = lines

	if line > 0 && line <= len(lines) {
		return lines[line-1], nil
	}

	return "", fmt.Errorf("line %d out of range", line)
}

// Emitter handles the rendering and output of diagnostics
type Emitter struct {
	cache *SourceCache
}

func NewEmitter() *Emitter {
	return &Emitter{
		cache: NewSourceCache(),
	}
}

// SetSource pre-populates the line cache for a path.
func (e *Emitter) SetSource(filepath string, src []byte) {
	e.cache.SetSource(filepath, src)
}

// Emit renders and prints a diagnostic to stderr
func (e *Emitter) Emit(filepath string, diag *Diagnostic) {
	// Use filepath from diagnostic if available, otherwise use parameter
	if diag.FilePath != "" {
		filepath = diag.FilePath
	}

	// Print severity and message
	e.printHeader(diag)

	for _, label := range diag.Labels {
		e.printLabel(filepath, label, diag.Severity)
	}

	// Print notes
	for _, note := range diag.Notes {
		e.printNote(note)
	}

	// Print help
	if diag.Help != "" {
		e.printHelp(diag.Help)
	}

	fmt.Fprintln(os.Stderr)
}

func (e *Emitter) printHeader(diag *Diagnostic) {
	color := e.getSeverityHeaderColor(diag.Severity)

	color.Print(diag.Severity.String())
	if diag.Code != "" {
		fmt.Fprintf(os.Stderr, "[%s]", diag.Code)
	}
	fmt.Fprint(os.Stderr, ": ")
	color.Println(diag.Message)
}

// printLabel prints a single-line caret label under the offending span.
// Every diagnostic the loader produces points at one token, so the
// multi-line rendering the general form needs does not exist here.
func (e *Emitter) printLabel(filepath string, label Label, severity Severity) {
	if label.Location == nil || label.Location.Start == nil {
		return
	}

	start := label.Location.Start
	end := label.Location.End
	if end == nil {
		end = start
	}

	// Print location header
	colors.BLUE.Printf("  --> %s:%d:%d\n", filepath, start.Line, start.Column)

	lineNumWidth := len(fmt.Sprintf("%d", start.Line))

	// Print separator
	colors.GREY.Print(strings.Repeat(" ", lineNumWidth))
	colors.GREY.Println(" |")

	sourceLine, err := e.cache.GetLine(filepath, start.Line)
	if err != nil {
		return
	}

	// Print line number and source (line number in grey)
	colors.GREY.Printf(lineNumFormat, lineNumWidth, start.Line)
	fmt.Fprintln(os.Stderr, sourceLine)

	// Print underline
	colors.GREY.Print(strings.Repeat(" ", lineNumWidth))
	colors.GREY.Print(" | ")

	padding := start.Column - 1
	length := 1
	if end.Line == start.Line && end.Column > start.Column {
		length = end.Column - start.Column
	}

	underlineColor := e.getSeverityColor(severity)
	underlineChar := "^"
	if length > 1 {
		underlineChar = "~"
	}

	fmt.Fprint(os.Stderr, strings.Repeat(" ", padding))
	underlineColor.Print(strings.Repeat(underlineChar, length))

	if label.Message != "" {
		underlineColor.Printf(" %s", label.Message)
	}
	fmt.Fprintln(os.Stderr)

	// Print separator
	colors.GREY.Print(strings.Repeat(" ", lineNumWidth))
	colors.GREY.Println(" |")
}

func (e *Emitter) printNote(note Note) {
	colors.CYAN.Print("  = note: ")
	fmt.Fprintln(os.Stderr, note.Message)
}

func (e *Emitter) printHelp(help string) {
	colors.GREEN.Print("  = help: ")
	fmt.Fprintln(os.Stderr, help)
}

func (e *Emitter) getSeverityHeaderColor(severity Severity) colors.COLOR {
	switch severity {
	case Error:
		return colors.BOLD_RED
	case Warning:
		return colors.BOLD_YELLOW
	default:
		return colors.BOLD_CYAN
	}
}

// getSeverityColor returns the color for a given severity
func (e *Emitter) getSeverityColor(severity Severity) colors.COLOR {
	switch severity {
	case Error:
		return colors.RED
	case Warning:
		return colors.YELLOW
	default:
		return colors.BLUE
	}
}
