package blockmodel

import (
	"encoding/json"
	"sort"
	"strings"
)

type Model struct {
	Parent           string             `json:"parent"`
	AmbientOcclusion *bool              `json:"ambientocclusion"`
	Textures         map[string]string  `json:"textures"`
	Elements         []Element          `json:"elements"`
	Display          map[string]Display `json:"display"`

	// Ancestors lists this model and its parents, nearest first.
	Ancestors []string `json:"-"`
}

type Element struct {
	From     [3]float32      `json:"from"`
	To       [3]float32      `json:"to"`
	Rotation *Rotation       `json:"rotation"`
	Shade    *bool           `json:"shade"`
	Faces    map[string]Face `json:"faces"`
}

type Rotation struct {
	Origin  [3]float32 `json:"origin"`
	Angle   float32    `json:"angle"`
	Axis    string     `json:"axis"`
	Rescale bool       `json:"rescale"`
}

type Face struct {
	UV        [4]float32 `json:"uv"`
	Texture   string     `json:"texture"`
	CullFace  string     `json:"cullface"`
	Rotation  int        `json:"rotation"`
	TintIndex *int       `json:"tintindex"`
}

type Display struct {
	Rotation    [3]float32 `json:"rotation"`
	Translation [3]float32 `json:"translation"`
	Scale       [3]float32 `json:"scale"`
}

// FaceDirections are the model face names in cube emission order:
// left (-X), right (+X), top, bottom, front (-Z), back (+Z).
var FaceDirections = [6]string{"west", "east", "up", "down", "north", "south"}

// Fallback texture keys per direction when no element names the face.
var faceFallbacks = [6][]string{
	{"west", "side", "all"},
	{"east", "side", "all"},
	{"up", "top", "end", "all"},
	{"down", "bottom", "end", "all"},
	{"north", "front", "side", "all"},
	{"south", "back", "side", "all"},
}

// ResolveTexture follows "#key" references through the model's textures.
func (m *Model) ResolveTexture(textureName string) string {
	for i := 0; i < 10 && strings.HasPrefix(textureName, "#"); i++ {
		resolved, ok := m.Textures[strings.TrimPrefix(textureName, "#")]
		if !ok {
			break
		}
		textureName = resolved
	}
	return textureName
}

// IsCross reports whether the model is a crossed-plane sprite (flowers,
// grass tufts) rather than a cube.
func (m *Model) IsCross() bool {
	for _, a := range m.Ancestors {
		if a == "block/cross" || a == "block/tinted_cross" {
			return true
		}
	}
	_, ok := m.Textures["cross"]
	return ok
}

// FaceTextures returns one resolved texture name per cube face in
// FaceDirections order. Element faces win over texture-key fallbacks; cross
// models return their cross texture everywhere. Unresolvable faces are "".
func (m *Model) FaceTextures() [6]string {
	var out [6]string
	if m.IsCross() {
		t := m.ResolveTexture("#cross")
		if strings.HasPrefix(t, "#") {
			t = ""
		}
		for i := range out {
			out[i] = t
		}
		return out
	}
	for i, dir := range FaceDirections {
		for _, e := range m.Elements {
			if f, ok := e.Faces[dir]; ok && f.Texture != "" {
				out[i] = m.ResolveTexture(f.Texture)
				break
			}
		}
		if out[i] != "" && !strings.HasPrefix(out[i], "#") {
			continue
		}
		out[i] = ""
		for _, key := range faceFallbacks[i] {
			if t, ok := m.Textures[key]; ok {
				out[i] = m.ResolveTexture(t)
				break
			}
		}
	}
	return out
}

// BlockState defines the blockstate JSON structure. It maps variants of a block to their corresponding models.
type BlockState struct {
	// Variants is a map of variant names to a list of models.
	Variants map[string]BlockStateVariants `json:"variants"`
}

// DefaultModel returns the model name of the block's default variant.
func (bs *BlockState) DefaultModel() string {
	for _, key := range []string{"normal", ""} {
		if v, ok := bs.Variants[key]; ok && len(v) > 0 {
			return v[0].Model
		}
	}
	keys := make([]string, 0, len(bs.Variants))
	for k := range bs.Variants {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := bs.Variants[k]; len(v) > 0 {
			return v[0].Model
		}
	}
	return ""
}

// BlockStateVariants is a custom type to handle the fact that the "variants" field can contain either a single object or an array of objects.
type BlockStateVariants []Variant

func (v *BlockStateVariants) UnmarshalJSON(data []byte) error {
	// First, try to unmarshal as an array
	var variants []Variant
	if err := json.Unmarshal(data, &variants); err == nil {
		*v = variants
		return nil
	}

	// If that fails, try to unmarshal as a single object
	var singleVariant Variant
	if err := json.Unmarshal(data, &singleVariant); err != nil {
		return err
	}

	*v = []Variant{singleVariant}
	return nil
}

type Variant struct {
	Model string `json:"model"`
}
