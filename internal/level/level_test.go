package level

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"wavefront/internal/parser"
)

const levelSource = `mtllib level.mtl
o cube01
v 0 0 0
v 2 2 2
o Cube.002
v 4 0 0
v 6 2 2
o collectGrass01
v 1 3 1
o CollectSky02
v 5 3 5
o player
v 0 1 0
o ExitDoor
v 8 0 8
v 9 2 9
o lampPost
v 3 0 3
`

// TestClassify tests the name prefix/suffix mapping in both spellings
func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		kind    EntityKind
		variant CollectVariant
	}{
		{"cube01", EntityCube, CollectPlain},
		{"Cube.002", EntityCube, CollectPlain},
		{"collectGrass01", EntityCollect, CollectGrass},
		{"CollectSky02", EntityCollect, CollectSky},
		{"collect03", EntityCollect, CollectPlain},
		{"player", EntityPlayer, CollectPlain},
		{"Player", EntityPlayer, CollectPlain},
		{"exitdoor", EntityExitDoor, CollectPlain},
		{"ExitDoor", EntityExitDoor, CollectPlain},
		{"lampPost", EntityUnknown, CollectPlain},
		{"", EntityUnknown, CollectPlain},
	}

	for _, c := range cases {
		kind, variant := Classify(c.name)
		if kind != c.kind {
			t.Errorf("Classify(%q): expected kind %s, got %s", c.name, c.kind, kind)
		}
		if variant != c.variant {
			t.Errorf("Classify(%q): expected variant %v, got %v", c.name, c.variant, variant)
		}
	}
}

// TestBuild tests draining a multi-object buffer into a classified level
func TestBuild(t *testing.T) {
	lvl, err := Build(parser.New([]byte(levelSource)))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(lvl.Cubes) != 2 {
		t.Errorf("Expected 2 cubes, got %d", len(lvl.Cubes))
	}
	if len(lvl.Pickups) != 2 {
		t.Errorf("Expected 2 pickups, got %d", len(lvl.Pickups))
	}
	if lvl.Player == nil {
		t.Fatal("Expected a player entity")
	}
	if lvl.ExitDoor == nil {
		t.Fatal("Expected an exit door entity")
	}
	if len(lvl.Rest) != 1 || lvl.Rest[0].Name != "lampPost" {
		t.Errorf("Expected lampPost in Rest, got %v", lvl.Rest)
	}
}

// TestBuildCopiesEntityData tests that entities survive extractor storage
// reuse: every entity owns its name and points
func TestBuildCopiesEntityData(t *testing.T) {
	lvl, err := Build(parser.New([]byte(levelSource)))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	// cube01 was extracted first; its data must be intact even though six
	// later groups reused the extractor's buffer
	cube := lvl.Cubes[0]
	if cube.Name != "cube01" {
		t.Errorf("Expected name cube01, got %q", cube.Name)
	}
	if len(cube.Points) != 2 || cube.Points[0] != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("Expected cube01 points intact, got %v", cube.Points)
	}
	if cube.Center() != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Expected cube01 center (1, 1, 1), got %v", cube.Center())
	}
}

// TestBuildPropagatesParseError tests that extraction failures abort the
// build instead of producing a half-classified level
func TestBuildPropagatesParseError(t *testing.T) {
	lvl, err := Build(parser.New([]byte("o cube01\nbevel 1 2\n")))
	if err == nil {
		t.Fatal("Expected an error, got none")
	}
	if lvl != nil {
		t.Errorf("Expected no level, got %+v", lvl)
	}
}

// TestPickupVariants tests that suffix variants survive into entities
func TestPickupVariants(t *testing.T) {
	lvl, err := Build(parser.New([]byte(levelSource)))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := map[string]CollectVariant{
		"collectGrass01": CollectGrass,
		"CollectSky02":   CollectSky,
	}
	for _, p := range lvl.Pickups {
		if v, ok := want[p.Name]; !ok || p.Variant != v {
			t.Errorf("Pickup %q: expected variant %v, got %v", p.Name, v, p.Variant)
		}
	}
}
