package parser

import (
	"fmt"

	"wavefront/internal/lexer"
)

// ErrorKind discriminates extraction failures. Every kind is terminal for
// the Next call that produced it; the Extractor performs no recovery.
type ErrorKind int

const (
	ExpectedObjectName ErrorKind = iota // token after "o" is not an identifier
	ExpectedVertexX                     // first "v" operand is not a number
	ExpectedVertexY                     // second "v" operand is not a number
	ExpectedVertexZ                     // third "v" operand is not a number
	InvalidNumber                       // a number span failed float parsing
	TooManyVertices                     // group exceeds MaxGroupPoints
	UnhandledDirective                  // keyword outside the supported vocabulary
)

func (k ErrorKind) String() string {
	switch k {
	case ExpectedObjectName:
		return "expected identifier after 'o'"
	case ExpectedVertexX:
		return "expected vertex x to be a number"
	case ExpectedVertexY:
		return "expected vertex y to be a number"
	case ExpectedVertexZ:
		return "expected vertex z to be a number"
	case InvalidNumber:
		return "invalid number literal"
	case TooManyVertices:
		return "too many vertices in group"
	case UnhandledDirective:
		return "unhandled directive"
	default:
		return "unknown error"
	}
}

// ParseError is a structured extraction failure. Tok is the token that
// triggered it; Err carries the underlying cause for InvalidNumber.
type ParseError struct {
	Kind ErrorKind
	Tok  lexer.Token
	Err  error
}

func (e *ParseError) Error() string {
	if len(e.Tok.Text) > 0 {
		return fmt.Sprintf("%s: %q at %s", e.Kind, e.Tok.Text, e.Tok.Start.String())
	}
	return fmt.Sprintf("%s at %s", e.Kind, e.Tok.Start.String())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
