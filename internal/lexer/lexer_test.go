package lexer

import (
	"errors"
	"testing"
)

// scanAll collects tokens until EOF or a scan failure.
func scanAll(t *testing.T, src string) []Token {
	t.Helper()
	s := New([]byte(src))
	var toks []Token
	for {
		tok, err := s.Scan()
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if tok.Kind == EOF_TOKEN {
			return toks
		}
		toks = append(toks, tok)
	}
}

// TestScanClassifiesDirectiveLine tests basic identifier/number classification
func TestScanClassifiesDirectiveLine(t *testing.T) {
	toks := scanAll(t, "v 1.0 -2.5 +3")

	want := []struct {
		kind TokenKind
		text string
	}{
		{IDENTIFIER_TOKEN, "v"},
		{NUMBER_TOKEN, "1.0"},
		{NUMBER_TOKEN, "-2.5"},
		{NUMBER_TOKEN, "+3"},
	}

	if len(toks) != len(want) {
		t.Fatalf("Expected %d tokens, got %d", len(want), len(toks))
	}
	for i, w := range want {
		if toks[i].Kind != w.kind {
			t.Errorf("Token %d: expected kind %s, got %s", i, w.kind, toks[i].Kind)
		}
		if string(toks[i].Text) != w.text {
			t.Errorf("Token %d: expected text %q, got %q", i, w.text, toks[i].Text)
		}
	}
}

// TestScanSkipsComments tests that '#' comments vanish entirely
func TestScanSkipsComments(t *testing.T) {
	toks := scanAll(t, "# exported by a modeling tool\no cube01 # trailing\n")

	if len(toks) != 2 {
		t.Fatalf("Expected 2 tokens, got %d", len(toks))
	}
	if string(toks[0].Text) != "o" || string(toks[1].Text) != "cube01" {
		t.Errorf("Expected [o cube01], got [%s %s]", toks[0].Text, toks[1].Text)
	}
}

// TestScanLeadingCharacterClasses tests the identifier lead bytes '_' and '.'
func TestScanLeadingCharacterClasses(t *testing.T) {
	toks := scanAll(t, "_hidden .rc Cube.001")

	for i, tok := range toks {
		if tok.Kind != IDENTIFIER_TOKEN {
			t.Errorf("Token %d: expected identifier, got %s", i, tok.Kind)
		}
	}
	if len(toks) != 3 {
		t.Fatalf("Expected 3 tokens, got %d", len(toks))
	}
}

// TestScanSlashContinuesNumber tests that a slashed face reference stays one token
func TestScanSlashContinuesNumber(t *testing.T) {
	toks := scanAll(t, "1/2/3 4//6")

	if len(toks) != 2 {
		t.Fatalf("Expected 2 tokens, got %d", len(toks))
	}
	for i, want := range []string{"1/2/3", "4//6"} {
		if toks[i].Kind != NUMBER_TOKEN {
			t.Errorf("Token %d: expected number, got %s", i, toks[i].Kind)
		}
		if string(toks[i].Text) != want {
			t.Errorf("Token %d: expected %q, got %q", i, want, toks[i].Text)
		}
	}
}

// TestScanEOFIdempotent tests that a saturated scanner keeps returning EOF
func TestScanEOFIdempotent(t *testing.T) {
	s := New([]byte("  # nothing here\n"))

	for i := 0; i < 3; i++ {
		tok, err := s.Scan()
		if err != nil {
			t.Fatalf("Scan %d: expected no error, got: %v", i, err)
		}
		if tok.Kind != EOF_TOKEN {
			t.Errorf("Scan %d: expected EOF, got %s", i, tok.Kind)
		}
	}
}

// TestScanUnrecognizedCharacter tests the single fatal lexer error
func TestScanUnrecognizedCharacter(t *testing.T) {
	s := New([]byte("o cube\n! boom"))

	for i := 0; i < 2; i++ {
		if _, err := s.Scan(); err != nil {
			t.Fatalf("Scan %d: expected no error, got: %v", i, err)
		}
	}

	_, err := s.Scan()
	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("Expected *ScanError, got: %v", err)
	}
	if scanErr.Char != '!' {
		t.Errorf("Expected offending char '!', got %q", scanErr.Char)
	}
	if scanErr.Pos.Line != 2 || scanErr.Pos.Column != 1 {
		t.Errorf("Expected position 2:1, got %d:%d", scanErr.Pos.Line, scanErr.Pos.Column)
	}
}

// TestScanTracksPositions tests line/column bookkeeping across newlines
func TestScanTracksPositions(t *testing.T) {
	toks := scanAll(t, "o cube\nv 1 2 3")

	v := toks[2]
	if string(v.Text) != "v" {
		t.Fatalf("Expected token v, got %q", v.Text)
	}
	if v.Start.Line != 2 || v.Start.Column != 1 {
		t.Errorf("Expected v at 2:1, got %d:%d", v.Start.Line, v.Start.Column)
	}
}

// TestExpectMismatch tests the assert-kind helper
func TestExpectMismatch(t *testing.T) {
	s := New([]byte("cube"))

	_, err := s.Expect(NUMBER_TOKEN)
	var kindErr *UnexpectedKindError
	if !errors.As(err, &kindErr) {
		t.Fatalf("Expected *UnexpectedKindError, got: %v", err)
	}
	if kindErr.Want != NUMBER_TOKEN {
		t.Errorf("Expected want %s, got %s", NUMBER_TOKEN, kindErr.Want)
	}
	if string(kindErr.Tok.Text) != "cube" {
		t.Errorf("Expected offending token cube, got %q", kindErr.Tok.Text)
	}
}

// TestExpectMatch tests that Expect passes matching tokens through
func TestExpectMatch(t *testing.T) {
	s := New([]byte("42"))

	tok, err := s.Expect(NUMBER_TOKEN)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(tok.Text) != "42" {
		t.Errorf("Expected token 42, got %q", tok.Text)
	}
}
