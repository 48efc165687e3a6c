package diagnostics

import (
	"errors"
	"fmt"

	"wavefront/internal/lexer"
	"wavefront/internal/parser"
)

// Diagnostic codes. L-codes come from the lexer, P-codes from the extractor.
const (
	ErrUnrecognizedCharacter = "L0001"
	ErrUnexpectedTokenKind   = "L0002"
	ErrExpectedObjectName    = "P0001"
	ErrExpectedVertexX       = "P0002"
	ErrExpectedVertexY       = "P0003"
	ErrExpectedVertexZ       = "P0004"
	ErrInvalidNumber         = "P0005"
	ErrTooManyVertices       = "P0006"
	ErrUnhandledDirective    = "P0007"
	ErrRead                  = "P0100"
)

// FromError converts a lexer or extractor failure into a renderable
// diagnostic pointing at the offending token.
func FromError(filepath string, err error) *Diagnostic {
	var scanErr *lexer.ScanError
	if errors.As(err, &scanErr) {
		pos := scanErr.Pos
		return NewError("unrecognized character").
			WithCode(ErrUnrecognizedCharacter).
			WithLabel(filepath, lexer.Token{Start: pos, End: pos}.Location(),
				fmt.Sprintf("cannot start a token: %q", scanErr.Char)).
			WithHelp("remove this character; only directives, names and numbers are recognized")
	}

	var kindErr *lexer.UnexpectedKindError
	if errors.As(err, &kindErr) {
		return NewError(fmt.Sprintf("expected %s", kindErr.Want)).
			WithCode(ErrUnexpectedTokenKind).
			WithLabel(filepath, kindErr.Tok.Location(),
				fmt.Sprintf("found %s %q", kindErr.Tok.Kind, kindErr.Tok.Text))
	}

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return fromParseError(filepath, parseErr)
	}

	return NewError(err.Error()).WithCode(ErrRead)
}

func fromParseError(filepath string, err *parser.ParseError) *Diagnostic {
	diag := NewError(err.Kind.String()).
		WithCode(parseCode(err.Kind)).
		WithLabel(filepath, err.Tok.Location(), "here")

	switch err.Kind {
	case parser.TooManyVertices:
		diag.WithNote(fmt.Sprintf("a group holds at most %d vertices", parser.MaxGroupPoints)).
			WithHelp("split the object in the modeling tool")
	case parser.UnhandledDirective:
		diag.WithNote("supported directives: mtllib, o, v, vn, vt, s, usemtl, f").
			WithHelp("re-export with the restricted OBJ settings")
	case parser.InvalidNumber:
		if err.Err != nil {
			diag.WithNote(err.Err.Error())
		}
	}

	return diag
}

func parseCode(kind parser.ErrorKind) string {
	switch kind {
	case parser.ExpectedObjectName:
		return ErrExpectedObjectName
	case parser.ExpectedVertexX:
		return ErrExpectedVertexX
	case parser.ExpectedVertexY:
		return ErrExpectedVertexY
	case parser.ExpectedVertexZ:
		return ErrExpectedVertexZ
	case parser.InvalidNumber:
		return ErrInvalidNumber
	case parser.TooManyVertices:
		return ErrTooManyVertices
	case parser.UnhandledDirective:
		return ErrUnhandledDirective
	default:
		return "P0000"
	}
}
