package registry

import (
	"fmt"
	"os"

	"blockmesh/internal/logger"
	"blockmesh/pkg/blockmodel"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// File is the YAML layout of a block file:
//
//	textures:
//	  block/log_side: 20
//	blocks:
//	  - {id: 3, name: stone, tiles: 2}
//	  - {id: 5, name: wood, tiles: {side: 20, top: 36, bottom: 4}}
//	  - {id: 30, name: log, model: block/log}
//	  - {id: 17, name: tall_grass, tiles: 48, plant: true}
type File struct {
	Textures map[string]int    `yaml:"textures"`
	Blocks   []BlockDefinition `yaml:"blocks"`
}

// Load registers the textures and blocks in a YAML block file.
func (r *Registry) Load(data []byte) error {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("could not unmarshal block file: %w", err)
	}
	for name, tile := range f.Textures {
		r.RegisterTexture(name, tile)
	}
	for _, def := range f.Blocks {
		if err := r.RegisterBlock(def); err != nil {
			return err
		}
	}
	return nil
}

// LoadFile builds a registry from a block file. When assetsPath is set,
// blocks may reference block models under it. With base set, the file's
// blocks are layered over the built-in ones.
func LoadFile(path, assetsPath string, base bool) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read block file: %w", err)
	}

	r := New()
	if base {
		r = Default()
	}
	if assetsPath != "" {
		r.SetModelLoader(blockmodel.NewLoader(assetsPath))
	}
	if err := r.Load(data); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	logger.Log.Info("block registry loaded",
		zap.String("path", path),
		zap.Int("blocks", len(r.IDs())))
	return r, nil
}

// Save writes the registry's blocks (tiles resolved) as a block file.
func (r *Registry) Save(path string) error {
	var f File
	for _, id := range r.IDs() {
		def, _ := r.Block(id)
		def.Model = ""
		f.Blocks = append(f.Blocks, def)
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
