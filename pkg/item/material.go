package item

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-mclib/data/pkg/data/items"
)

// ErrUnknownMaterial is returned when a name is not in the items registry.
var ErrUnknownMaterial = errors.New("unknown material")

// Material is an item kind, identified by its id in the minecraft:item registry.
type Material int32

// Air is the empty material.
var Air = Material(items.ItemID("minecraft:air"))

// ParseMaterial resolves a registry name such as "minecraft:stone" or "stone".
func ParseMaterial(name string) (Material, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Air, fmt.Errorf("%w: empty name", ErrUnknownMaterial)
	}
	if !strings.Contains(name, ":") {
		name = "minecraft:" + name
	}
	id := items.ItemID(name)
	if id < 0 {
		return Air, fmt.Errorf("%w: %s", ErrUnknownMaterial, name)
	}
	return Material(id), nil
}

// MustMaterial is like ParseMaterial but panics on unknown names.
// Intended for package-level tables.
func MustMaterial(name string) Material {
	m, err := ParseMaterial(name)
	if err != nil {
		panic(err)
	}
	return m
}

// String returns the registry name of the material.
func (m Material) String() string {
	return items.ItemName(int32(m))
}

// IsAir reports whether m is the empty material.
func (m Material) IsAir() bool { return m == Air }
