package lexer

import (
	"fmt"

	"wavefront/internal/source"
)

// ============================================================================
// LEXER - Byte Buffer to Token Conversion
// ============================================================================
//
// The Scanner walks a flat byte buffer and produces one classified token per
// Scan call: identifiers (directive keywords, object names), numbers (raw
// spans, validated later by the consumer), and a terminal EOF token that
// repeats once the buffer is exhausted. Whitespace and '#' comments are
// skipped. The Scanner owns nothing but a cursor; token text aliases the
// caller's buffer.

// ScanError reports a byte that cannot start any token.
type ScanError struct {
	Char byte
	Pos  source.Position
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("unrecognized character %q at %s", e.Char, e.Pos.String())
}

// UnexpectedKindError reports an Expect mismatch.
type UnexpectedKindError struct {
	Want TokenKind
	Tok  Token
}

func (e *UnexpectedKindError) Error() string {
	return fmt.Sprintf("expected %s, found %s %q at %s",
		e.Want, e.Tok.Kind, e.Tok.Text, e.Tok.Start.String())
}

// Scanner holds the cursor state for tokenizing a single buffer.
// It is not safe for concurrent use.
type Scanner struct {
	src    []byte
	offset int
	line   int
	column int
}

// New creates a Scanner over src. The Scanner borrows src; the caller
// must keep it alive and unmodified for the Scanner's lifetime.
func New(src []byte) *Scanner {
	return &Scanner{src: src, line: 1, column: 1}
}

func (s *Scanner) pos() source.Position {
	return source.Position{Line: s.line, Column: s.column, Offset: s.offset}
}

// advance moves the cursor past one byte, tracking line and column.
func (s *Scanner) advance() {
	if s.src[s.offset] == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	s.offset++
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Scan returns the next token. After the buffer is exhausted every call
// returns an EOF token. A byte that cannot start a token fails with
// *ScanError; the Scanner does not recover past it.
func (s *Scanner) Scan() (Token, error) {
	for s.offset < len(s.src) {
		c := s.src[s.offset]
		switch {
		case isWhitespace(c):
			s.advance()
		case c == '#':
			// comment runs to end of line
			for s.offset < len(s.src) && s.src[s.offset] != '\n' {
				s.advance()
			}
		case isAlpha(c) || c == '_' || c == '.':
			return s.scanSpan(IDENTIFIER_TOKEN), nil
		case isDigit(c) || c == '-' || c == '+':
			return s.scanSpan(NUMBER_TOKEN), nil
		default:
			return Token{}, &ScanError{Char: c, Pos: s.pos()}
		}
	}
	end := s.pos()
	return Token{Kind: EOF_TOKEN, Start: end, End: end}, nil
}

// scanSpan consumes bytes up to the next whitespace and returns them as a
// token of the given kind. Classification depends only on the first byte,
// so a face reference like "3/1/2" is one NUMBER token.
func (s *Scanner) scanSpan(kind TokenKind) Token {
	start := s.pos()
	for s.offset < len(s.src) && !isWhitespace(s.src[s.offset]) {
		s.advance()
	}
	return Token{
		Kind:  kind,
		Text:  s.src[start.Offset:s.offset],
		Start: start,
		End:   s.pos(),
	}
}

// Expect scans one token and fails with *UnexpectedKindError unless its
// kind matches. Used to skip-but-validate directive payloads the consumer
// does not model.
func (s *Scanner) Expect(kind TokenKind) (Token, error) {
	tok, err := s.Scan()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, &UnexpectedKindError{Want: kind, Tok: tok}
	}
	return tok, nil
}
