package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"blockmesh/internal/logger"
	"blockmesh/pkg/blockmodel"

	"go.uber.org/zap"
)

// MaxBlocks is the number of block ids a TileTable can address.
const MaxBlocks = 256

// TileTable maps a block id to one atlas tile per face, in the order
// left, right, top, bottom, front, back. Mesh builders only read it.
type TileTable [MaxBlocks][6]int

// FaceNames are the face keys accepted in block files, in table order.
var FaceNames = [6]string{"left", "right", "top", "bottom", "front", "back"}

var (
	ErrBlockID        = errors.New("registry: block id out of range")
	ErrUnknownTexture = errors.New("registry: unknown texture")
	ErrNoModelLoader  = errors.New("registry: block uses a model but no model loader is set")
)

// BlockDefinition defines the atlas tiles of a block type. Tiles wins over
// Model; a block with neither uses tile 0 everywhere.
type BlockDefinition struct {
	ID    int        `yaml:"id"`
	Name  string     `yaml:"name"`
	Tiles *FaceTiles `yaml:"tiles,omitempty"`
	Model string     `yaml:"model,omitempty"`
	// Plant blocks are drawn as crosses using their first tile.
	Plant bool `yaml:"plant,omitempty"`
}

// Registry holds block definitions and the texture name to tile index map,
// and produces the TileTable handed to the mesh builders.
type Registry struct {
	mu       sync.RWMutex
	blocks   map[int]*BlockDefinition
	names    map[string]int
	textures map[string]int
	loader   *blockmodel.Loader
	table    *TileTable
}

func New() *Registry {
	return &Registry{
		blocks:   make(map[int]*BlockDefinition),
		names:    make(map[string]int),
		textures: make(map[string]int),
	}
}

// SetModelLoader enables Model references in block definitions.
func (r *Registry) SetModelLoader(l *blockmodel.Loader) {
	r.mu.Lock()
	r.loader = l
	r.mu.Unlock()
}

// RegisterTexture maps a texture name, as used by block models, to a tile.
func (r *Registry) RegisterTexture(name string, tile int) {
	r.mu.Lock()
	r.textures[name] = tile
	r.mu.Unlock()
}

// RegisterBlock adds or replaces a block definition. Model references are
// resolved immediately, so the loader and textures must already be set.
func (r *Registry) RegisterBlock(def BlockDefinition) error {
	if def.ID < 0 || def.ID >= MaxBlocks {
		return fmt.Errorf("%w: %d (%s)", ErrBlockID, def.ID, def.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if def.Tiles == nil && def.Model != "" {
		tiles, plant, err := r.resolveModel(def.Model)
		if err != nil {
			return fmt.Errorf("block %q: %w", def.Name, err)
		}
		def.Tiles = &tiles
		def.Plant = def.Plant || plant
	}
	own := FaceTiles{}
	if def.Tiles != nil {
		own = *def.Tiles
	}
	def.Tiles = &own

	if old, ok := r.blocks[def.ID]; ok && old.Name != def.Name {
		delete(r.names, old.Name)
	}
	r.blocks[def.ID] = &def
	if def.Name != "" {
		r.names[def.Name] = def.ID
	}
	r.table = nil

	logger.Log.Debug("registered block",
		zap.Int("id", def.ID),
		zap.String("name", def.Name),
		zap.Ints("tiles", def.Tiles[:]),
		zap.Bool("plant", def.Plant))
	return nil
}

// resolveModel maps a block model's face textures to tiles. Caller holds mu.
func (r *Registry) resolveModel(name string) (FaceTiles, bool, error) {
	var tiles FaceTiles
	if r.loader == nil {
		return tiles, false, ErrNoModelLoader
	}
	model, err := r.loader.LoadModel(name)
	if err != nil {
		return tiles, false, err
	}
	for i, tex := range model.FaceTextures() {
		tile, ok := r.textures[tex]
		if !ok {
			return tiles, false, fmt.Errorf("%w: %q on %s face of %s", ErrUnknownTexture, tex, FaceNames[i], name)
		}
		tiles[i] = tile
	}
	return tiles, model.IsCross(), nil
}

// Block returns the definition registered under id.
func (r *Registry) Block(id int) (BlockDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.blocks[id]
	if !ok {
		return BlockDefinition{}, false
	}
	return *def, true
}

// BlockID returns the id registered under name.
func (r *Registry) BlockID(name string) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.names[name]
	return id, ok
}

// IDs returns every registered block id in ascending order.
func (r *Registry) IDs() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int, 0, len(r.blocks))
	for id := range r.blocks {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Tiles returns the tile table for the current definitions. The returned
// table is never written again; later registrations build a new one, so it
// can be shared with builders running on other goroutines.
func (r *Registry) Tiles() *TileTable {
	r.mu.RLock()
	if t := r.table; t != nil {
		r.mu.RUnlock()
		return t
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.table == nil {
		t := new(TileTable)
		for id, def := range r.blocks {
			t[id] = [6]int(*def.Tiles)
		}
		r.table = t
	}
	return r.table
}
