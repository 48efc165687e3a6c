package colors

import (
	"fmt"
	"os"
)

// COLOR is an ANSI escape prefix. Printing through a COLOR wraps the text
// in the escape sequence and a reset, writing to stderr like the rest of
// the diagnostic output.
type COLOR string

const (
	RESET COLOR = "\033[0m"

	RED    COLOR = "\033[31m"
	GREEN  COLOR = "\033[32m"
	YELLOW COLOR = "\033[33m"
	BLUE   COLOR = "\033[34m"
	PURPLE COLOR = "\033[35m"
	CYAN   COLOR = "\033[36m"
	GREY   COLOR = "\033[90m"

	BOLD_RED    COLOR = "\033[1;31m"
	BOLD_YELLOW COLOR = "\033[1;33m"
	BOLD_PURPLE COLOR = "\033[1;35m"
	BOLD_CYAN   COLOR = "\033[1;36m"
)

// Enabled controls whether escape sequences are emitted. Tests and
// non-terminal consumers can switch color off globally.
var Enabled = true

func (c COLOR) Print(a ...interface{}) {
	if Enabled {
		fmt.Fprint(os.Stderr, string(c))
	}
	fmt.Fprint(os.Stderr, a...)
	if Enabled {
		fmt.Fprint(os.Stderr, string(RESET))
	}
}

func (c COLOR) Println(a ...interface{}) {
	if Enabled {
		fmt.Fprint(os.Stderr, string(c))
	}
	fmt.Fprint(os.Stderr, a...)
	if Enabled {
		fmt.Fprint(os.Stderr, string(RESET))
	}
	fmt.Fprintln(os.Stderr)
}

func (c COLOR) Printf(format string, a ...interface{}) {
	if Enabled {
		fmt.Fprint(os.Stderr, string(c))
	}
	fmt.Fprintf(os.Stderr, format, a...)
	if Enabled {
		fmt.Fprint(os.Stderr, string(RESET))
	}
}
