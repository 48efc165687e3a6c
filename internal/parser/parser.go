package parser

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl32"

	"wavefront/internal/geometry"
	"wavefront/internal/lexer"
)

// ============================================================================
// PARSER - Token Stream to Named Group Conversion
// ============================================================================
//
// The Extractor drives the lexer token-by-token and assembles one named
// group per Next call. It recognizes a closed vocabulary of OBJ directives:
// geometry it models (o, v) and payloads it validates but discards (mtllib,
// vn, vt, s, usemtl, f). Anything else is treated as corrupt input. Faces
// are assumed to be quads with opaque vertex references; triangle faces are
// not supported and will misalign subsequent directives.

// MaxGroupPoints bounds the working storage for one group. It is a memory
// budget, not an OBJ-format limit.
const MaxGroupPoints = 50

// Object is one "o"-delimited group. Name aliases the source buffer and
// Points aliases the Extractor's reused storage: both are valid only until
// the next Next call. Callers needing persistence must copy them out.
type Object struct {
	Name   []byte
	Points []mgl32.Vec3
}

// Bounds returns the axis-aligned box of the object's points. For a group
// with no vertices the box is invalid; check Bounds().Valid().
func (o *Object) Bounds() geometry.Bounds {
	return geometry.BoundsOf(o.Points)
}

// Center returns the midpoint of the object's bounding box. Undefined for
// a group with no vertices.
func (o *Object) Center() mgl32.Vec3 {
	return o.Bounds().Center()
}

// Extractor produces named groups from a buffer one at a time. The only
// state carried between Next calls is the lexer cursor and at most one
// pushed-back token. Not safe for concurrent use.
type Extractor struct {
	scan    *lexer.Scanner
	pending *lexer.Token

	// per-group storage, reset every Next call
	points [MaxGroupPoints]mgl32.Vec3
	count  int
	name   []byte
}

// New creates an Extractor over src. The Extractor borrows src for its
// lifetime.
func New(src []byte) *Extractor {
	return &Extractor{scan: lexer.New(src)}
}

// next returns the pushed-back token if one exists, otherwise scans.
func (x *Extractor) next() (lexer.Token, error) {
	if x.pending != nil {
		tok := *x.pending
		x.pending = nil
		return tok, nil
	}
	return x.scan.Scan()
}

// Next produces the next group. It returns (nil, nil) once no group
// remains; every call after that also returns (nil, nil). A failure aborts
// the current group entirely and never yields a partial object.
func (x *Extractor) Next() (*Object, error) {
	x.count = 0
	x.name = nil
	found := false

	for {
		tok, err := x.next()
		if err != nil {
			return nil, err
		}

		switch {
		case tok.Kind == lexer.EOF_TOKEN:
			if !found {
				return nil, nil
			}
			return &Object{Name: x.name, Points: x.points[:x.count]}, nil

		case tok.Kind != lexer.IDENTIFIER_TOKEN:
			return nil, &ParseError{Kind: UnhandledDirective, Tok: tok}
		}

		switch string(tok.Text) {
		case "o":
			if found {
				// start of the next group: push the token back and
				// finish the one accumulated so far
				x.pending = &tok
				return &Object{Name: x.name, Points: x.points[:x.count]}, nil
			}
			nameTok, err := x.next()
			if err != nil {
				return nil, err
			}
			if nameTok.Kind != lexer.IDENTIFIER_TOKEN {
				return nil, &ParseError{Kind: ExpectedObjectName, Tok: nameTok}
			}
			x.name = nameTok.Text
			found = true

		case "v":
			if err := x.vertex(tok); err != nil {
				return nil, err
			}

		case "mtllib":
			// material library filename, any token kind accepted
			if _, err := x.next(); err != nil {
				return nil, err
			}

		case "vn":
			if err := x.discardNumbers(3); err != nil {
				return nil, err
			}

		case "vt":
			if err := x.discardNumbers(2); err != nil {
				return nil, err
			}

		case "s":
			if err := x.discardNumbers(1); err != nil {
				return nil, err
			}

		case "usemtl":
			if _, err := x.scan.Expect(lexer.IDENTIFIER_TOKEN); err != nil {
				return nil, err
			}

		case "f":
			// quad face; each vertex reference (slash groups included)
			// is one opaque number token
			if err := x.discardNumbers(4); err != nil {
				return nil, err
			}

		default:
			return nil, &ParseError{Kind: UnhandledDirective, Tok: tok}
		}
	}
}

// vertex reads the three coordinates of a "v" directive and appends the
// point. Coordinates are stored as written: the file's second component is
// taken directly as the engine's vertical (y) axis.
func (x *Extractor) vertex(dir lexer.Token) error {
	kinds := [3]ErrorKind{ExpectedVertexX, ExpectedVertexY, ExpectedVertexZ}
	var coords [3]float32

	for i := 0; i < 3; i++ {
		tok, err := x.next()
		if err != nil {
			return err
		}
		if tok.Kind != lexer.NUMBER_TOKEN {
			return &ParseError{Kind: kinds[i], Tok: tok}
		}
		f, err := strconv.ParseFloat(string(tok.Text), 32)
		if err != nil {
			return &ParseError{Kind: InvalidNumber, Tok: tok, Err: err}
		}
		coords[i] = float32(f)
	}

	if x.count == MaxGroupPoints {
		return &ParseError{Kind: TooManyVertices, Tok: dir}
	}
	x.points[x.count] = mgl32.Vec3{coords[0], coords[1], coords[2]}
	x.count++
	return nil
}

// discardNumbers validates and drops n number tokens.
func (x *Extractor) discardNumbers(n int) error {
	for i := 0; i < n; i++ {
		if _, err := x.scan.Expect(lexer.NUMBER_TOKEN); err != nil {
			return err
		}
	}
	return nil
}
