package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"blockmesh/pkg/blockmodel"
)

func TestDefaultTable(t *testing.T) {
	tiles := Default().Tiles()

	if got, want := tiles[BlockGrass], [6]int{16, 16, 32, 0, 16, 16}; got != want {
		t.Errorf("grass tiles: got %v, want %v", got, want)
	}
	if got, want := tiles[BlockStone], [6]int{2, 2, 2, 2, 2, 2}; got != want {
		t.Errorf("stone tiles: got %v, want %v", got, want)
	}
	if got := tiles[BlockTallGrass][0]; got != 48 {
		t.Errorf("tall grass tile: got %d, want 48", got)
	}
	if got := tiles[200]; got != [6]int{} {
		t.Errorf("unregistered block: got %v, want zeros", got)
	}
}

func TestRegisterBlockRange(t *testing.T) {
	r := New()
	for _, id := range []int{-1, MaxBlocks} {
		err := r.RegisterBlock(BlockDefinition{ID: id, Name: "bad"})
		if !errors.Is(err, ErrBlockID) {
			t.Errorf("id %d: got %v, want ErrBlockID", id, err)
		}
	}
	if err := r.RegisterBlock(BlockDefinition{ID: MaxBlocks - 1, Name: "last"}); err != nil {
		t.Errorf("id %d: unexpected error %v", MaxBlocks-1, err)
	}
}

func TestTilesSnapshot(t *testing.T) {
	r := Default()
	before := r.Tiles()
	if r.Tiles() != before {
		t.Fatal("Tiles should be cached until the next registration")
	}

	stone := Uniform(99)
	if err := r.RegisterBlock(BlockDefinition{ID: BlockStone, Name: "stone", Tiles: &stone}); err != nil {
		t.Fatalf("register: %v", err)
	}
	stone[0] = 7 // caller's copy must not leak in

	after := r.Tiles()
	if before[BlockStone][0] != 2 {
		t.Errorf("old snapshot changed: got %d, want 2", before[BlockStone][0])
	}
	if after[BlockStone] != [6]int(Uniform(99)) {
		t.Errorf("new snapshot: got %v, want all 99", after[BlockStone])
	}
}

func TestRenameReleasesOldName(t *testing.T) {
	r := New()
	_ = r.RegisterBlock(BlockDefinition{ID: 4, Name: "old"})
	_ = r.RegisterBlock(BlockDefinition{ID: 4, Name: "new"})
	if _, ok := r.BlockID("old"); ok {
		t.Error("old name still resolves")
	}
	if id, ok := r.BlockID("new"); !ok || id != 4 {
		t.Errorf("new name: got %d,%v want 4,true", id, ok)
	}
}

func TestLoadYAML(t *testing.T) {
	r := New()
	err := r.Load([]byte(`
blocks:
  - {id: 1, name: uniform, tiles: 7}
  - {id: 2, name: listed, tiles: [1, 2, 3, 4, 5, 6]}
  - id: 3
    name: mapped
    tiles: {all: 9, side: 20, top: 36}
  - {id: 4, name: flower, tiles: 49, plant: true}
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	tiles := r.Tiles()
	tests := []struct {
		id   int
		want [6]int
	}{
		{1, [6]int{7, 7, 7, 7, 7, 7}},
		{2, [6]int{1, 2, 3, 4, 5, 6}},
		{3, [6]int{20, 20, 36, 9, 20, 20}},
		{4, [6]int{49, 49, 49, 49, 49, 49}},
	}
	for _, tt := range tests {
		if tiles[tt.id] != tt.want {
			t.Errorf("block %d: got %v, want %v", tt.id, tiles[tt.id], tt.want)
		}
	}
	if def, _ := r.Block(4); !def.Plant {
		t.Error("flower should be a plant")
	}
}

func TestLoadYAMLErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"short list":   `blocks: [{id: 1, tiles: [1, 2]}]`,
		"unknown face": `blocks: [{id: 1, tiles: {up: 3}}]`,
		"bad id":       `blocks: [{id: 300, tiles: 1}]`,
		"model only":   `blocks: [{id: 1, model: block/stone}]`,
	} {
		if err := New().Load([]byte(doc)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoadFileWithModels(t *testing.T) {
	root := t.TempDir()
	write := func(name, content string) {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("assets/models/block/log.json", `{
		"textures": { "end": "block/log_top", "side": "block/log_side" },
		"elements": [ { "from": [0,0,0], "to": [16,16,16], "faces": {
			"up": { "texture": "#end" }, "down": { "texture": "#end" },
			"north": { "texture": "#side" }, "south": { "texture": "#side" },
			"west": { "texture": "#side" }, "east": { "texture": "#side" } } } ]
	}`)
	write("assets/models/block/fern.json", `{ "parent": "block/cross", "textures": { "cross": "block/fern" } }`)
	write("assets/models/block/cross.json", `{}`)
	write("blocks.yaml", `
textures:
  block/log_top: 21
  block/log_side: 20
  block/fern: 55
blocks:
  - {id: 30, name: log, model: block/log}
  - {id: 31, name: fern, model: block/fern}
`)

	r, err := LoadFile(filepath.Join(root, "blocks.yaml"), filepath.Join(root, "assets"), true)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	tiles := r.Tiles()
	if got, want := tiles[30], [6]int{20, 20, 21, 21, 20, 20}; got != want {
		t.Errorf("log tiles: got %v, want %v", got, want)
	}
	if def, _ := r.Block(31); !def.Plant || def.Tiles[0] != 55 {
		t.Errorf("fern: got %+v, want plant with tile 55", def)
	}
	// Built-ins survive underneath.
	if tiles[BlockGrass][2] != 32 {
		t.Errorf("grass top: got %d, want 32", tiles[BlockGrass][2])
	}

	out := filepath.Join(root, "saved.yaml")
	if err := r.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}
	again, err := LoadFile(out, "", false)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if *again.Tiles() != *tiles {
		t.Error("saved registry does not reproduce the tile table")
	}
}

func TestUnknownModelTexture(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "models", "block")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "odd.json"), []byte(`{"textures": {"all": "block/odd"}}`), 0644); err != nil {
		t.Fatal(err)
	}
	r := New()
	r.SetModelLoader(blockmodel.NewLoader(root))
	err := r.RegisterBlock(BlockDefinition{ID: 1, Name: "odd", Model: "block/odd"})
	if !errors.Is(err, ErrUnknownTexture) {
		t.Fatalf("got %v, want ErrUnknownTexture", err)
	}
}
