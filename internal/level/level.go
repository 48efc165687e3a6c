package level

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"wavefront/internal/geometry"
	"wavefront/internal/parser"
)

// EntityKind classifies an authored object by its name.
type EntityKind int

const (
	EntityCube EntityKind = iota
	EntityCollect
	EntityPlayer
	EntityExitDoor
	EntityUnknown
)

func (k EntityKind) String() string {
	switch k {
	case EntityCube:
		return "cube"
	case EntityCollect:
		return "collectible"
	case EntityPlayer:
		return "player"
	case EntityExitDoor:
		return "exit door"
	default:
		return "unknown"
	}
}

// CollectVariant distinguishes pickup skins by name suffix.
type CollectVariant int

const (
	CollectPlain CollectVariant = iota
	CollectGrass
	CollectSky
)

// Entity is one classified object. Unlike parser.Object it owns its data:
// the name is copied into a string and the points into a fresh slice, so
// entities survive further extraction calls.
type Entity struct {
	Kind    EntityKind
	Variant CollectVariant
	Name    string
	Points  []mgl32.Vec3
	Bounds  geometry.Bounds
}

// Center returns the midpoint of the entity's bounding box. Undefined for
// an entity with no vertices.
func (e *Entity) Center() mgl32.Vec3 {
	return e.Bounds.Center()
}

// Level is the result of classifying every object in a buffer.
type Level struct {
	Cubes    []*Entity
	Pickups  []*Entity
	Player   *Entity
	ExitDoor *Entity
	Rest     []*Entity // recognized groups with unclassified names
}

// Classify maps an object name to entity kind and pickup variant. Authoring
// tools emit both lower- and upper-camel spellings, so prefixes are matched
// case-insensitively on the first letter only.
func Classify(name string) (EntityKind, CollectVariant) {
	switch {
	case hasPrefix(name, "cube"):
		return EntityCube, CollectPlain
	case hasPrefix(name, "collect"):
		switch {
		case strings.Contains(name, "Grass"):
			return EntityCollect, CollectGrass
		case strings.Contains(name, "Sky"):
			return EntityCollect, CollectSky
		}
		return EntityCollect, CollectPlain
	case hasPrefix(name, "player"):
		return EntityPlayer, CollectPlain
	case hasPrefix(name, "exitdoor"):
		return EntityExitDoor, CollectPlain
	default:
		return EntityUnknown, CollectPlain
	}
}

func hasPrefix(name, prefix string) bool {
	if len(name) < len(prefix) {
		return false
	}
	return strings.EqualFold(name[:len(prefix)], prefix)
}

// Build drains the extractor and assembles a Level. Classification is
// lenient (unknown names land in Rest); extraction failures are not and
// abort the build.
func Build(x *parser.Extractor) (*Level, error) {
	lvl := &Level{}
	for {
		obj, err := x.Next()
		if err != nil {
			return nil, err
		}
		if obj == nil {
			return lvl, nil
		}
		lvl.add(newEntity(obj))
	}
}

// newEntity copies an object out of the extractor's reused storage.
func newEntity(obj *parser.Object) *Entity {
	name := string(obj.Name)
	kind, variant := Classify(name)
	points := make([]mgl32.Vec3, len(obj.Points))
	copy(points, obj.Points)
	return &Entity{
		Kind:    kind,
		Variant: variant,
		Name:    name,
		Points:  points,
		Bounds:  geometry.BoundsOf(points),
	}
}

func (lvl *Level) add(e *Entity) {
	switch e.Kind {
	case EntityCube:
		lvl.Cubes = append(lvl.Cubes, e)
	case EntityCollect:
		lvl.Pickups = append(lvl.Pickups, e)
	case EntityPlayer:
		lvl.Player = e
	case EntityExitDoor:
		lvl.ExitDoor = e
	default:
		lvl.Rest = append(lvl.Rest, e)
	}
}

// Summary renders a one-line-per-entity description for CLI output.
func (lvl *Level) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d cube(s), %d pickup(s)", len(lvl.Cubes), len(lvl.Pickups))
	if lvl.Player != nil {
		c := lvl.Player.Center()
		fmt.Fprintf(&sb, ", player at (%.2f, %.2f, %.2f)", c.X(), c.Y(), c.Z())
	}
	if lvl.ExitDoor != nil {
		sb.WriteString(", exit door present")
	}
	if len(lvl.Rest) > 0 {
		fmt.Fprintf(&sb, ", %d unclassified", len(lvl.Rest))
	}
	return sb.String()
}
