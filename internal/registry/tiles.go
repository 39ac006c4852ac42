package registry

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FaceTiles holds one atlas tile per face in TileTable order. In YAML it may
// be a single tile for every face, a list of six, or a mapping keyed by face
// name plus the shorthands "all" and "side" (left, right, front, back).
type FaceTiles [6]int

// Uniform returns tiles using tile on every face.
func Uniform(tile int) FaceTiles {
	return FaceTiles{tile, tile, tile, tile, tile, tile}
}

// Column returns tiles with distinct top and bottom and a shared side.
func Column(side, top, bottom int) FaceTiles {
	return FaceTiles{side, side, top, bottom, side, side}
}

var sideFaces = []int{0, 1, 4, 5}

func (t *FaceTiles) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var all int
		if err := value.Decode(&all); err != nil {
			return err
		}
		*t = Uniform(all)
		return nil

	case yaml.SequenceNode:
		var list []int
		if err := value.Decode(&list); err != nil {
			return err
		}
		if len(list) != len(t) {
			return fmt.Errorf("line %d: tiles list needs %d entries, got %d", value.Line, len(t), len(list))
		}
		copy(t[:], list)
		return nil

	case yaml.MappingNode:
		var m map[string]int
		if err := value.Decode(&m); err != nil {
			return err
		}
		var out FaceTiles
		if all, ok := m["all"]; ok {
			out = Uniform(all)
		}
		if side, ok := m["side"]; ok {
			for _, i := range sideFaces {
				out[i] = side
			}
		}
		for key := range m {
			if key == "all" || key == "side" {
				continue
			}
			if faceIndex(key) < 0 {
				return fmt.Errorf("line %d: unknown face %q", value.Line, key)
			}
		}
		for i, name := range FaceNames {
			if v, ok := m[name]; ok {
				out[i] = v
			}
		}
		*t = out
		return nil
	}
	return fmt.Errorf("line %d: tiles must be a number, list or mapping", value.Line)
}

// MarshalYAML writes tiles as a single number when uniform, else a list.
func (t FaceTiles) MarshalYAML() (interface{}, error) {
	if t == Uniform(t[0]) {
		return t[0], nil
	}
	return t[:], nil
}

func faceIndex(name string) int {
	for i, n := range FaceNames {
		if n == name {
			return i
		}
	}
	return -1
}
