package lexer

import "wavefront/internal/source"

// TokenKind classifies a scanned span of the source buffer.
type TokenKind int

const (
	IDENTIFIER_TOKEN TokenKind = iota // directive keywords and names
	NUMBER_TOKEN                      // raw numeric-literal span, unvalidated
	STRING_TOKEN                      // reserved; the OBJ subset never produces one
	EOF_TOKEN                         // end of buffer, returned indefinitely
)

func (k TokenKind) String() string {
	switch k {
	case IDENTIFIER_TOKEN:
		return "identifier"
	case NUMBER_TOKEN:
		return "number"
	case STRING_TOKEN:
		return "string"
	case EOF_TOKEN:
		return "end of input"
	default:
		return "unknown"
	}
}

// Token is a classified span of the source buffer. Text aliases the
// buffer the Scanner was created over; it is never a copy.
type Token struct {
	Kind  TokenKind
	Text  []byte
	Start source.Position
	End   source.Position
}

// Location builds a diagnostic location for the token's span.
func (t Token) Location() *source.Location {
	start := t.Start
	end := t.End
	return source.NewLocation(&start, &end)
}
