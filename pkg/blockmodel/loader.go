package blockmodel

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Loader reads block models and blockstates from an assets directory laid
// out as <assets>/models/<name>.json and <assets>/blockstates/<name>.json.
// It is safe for concurrent use.
type Loader struct {
	assetsPath string

	mu         sync.Mutex
	modelCache map[string]*Model
}

func NewLoader(assetsPath string) *Loader {
	return &Loader{
		assetsPath: assetsPath,
		modelCache: make(map[string]*Model),
	}
}

// LoadModel loads name and merges in its parent chain. Returned models are
// shared through the cache and must not be modified.
func (l *Loader) LoadModel(name string) (*Model, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadModel(name, 0)
}

func (l *Loader) loadModel(name string, depth int) (*Model, error) {
	if !strings.Contains(name, "/") {
		name = "block/" + name
	}
	if depth > maxParentDepth {
		return nil, fmt.Errorf("model %q: parent chain deeper than %d", name, maxParentDepth)
	}

	if model, ok := l.modelCache[name]; ok {
		return model, nil
	}

	path := filepath.Join(l.assetsPath, "models", name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read model file: %w", err)
	}

	var model Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("could not unmarshal model json: %w", err)
	}
	if model.Textures == nil {
		model.Textures = make(map[string]string)
	}
	model.Ancestors = []string{name}

	if model.Parent != "" && !strings.HasPrefix(model.Parent, "builtin/") {
		parent, err := l.loadModel(model.Parent, depth+1)
		if err != nil {
			return nil, fmt.Errorf("could not load parent model '%s': %w", model.Parent, err)
		}

		if model.AmbientOcclusion == nil {
			model.AmbientOcclusion = parent.AmbientOcclusion
		}
		if len(model.Elements) == 0 {
			// Deep copy: face textures get resolved per child.
			model.Elements = cloneElements(parent.Elements)
		}
		for key, val := range parent.Textures {
			if _, ok := model.Textures[key]; !ok {
				model.Textures[key] = val
			}
		}
		model.Ancestors = append(model.Ancestors, parent.Ancestors...)
	}

	l.resolveTextures(&model)
	l.modelCache[name] = &model
	return &model, nil
}

const maxParentDepth = 16

func cloneElements(src []Element) []Element {
	out := make([]Element, len(src))
	for i, e := range src {
		out[i] = e
		out[i].Faces = make(map[string]Face, len(e.Faces))
		for k, f := range e.Faces {
			out[i].Faces[k] = f
		}
	}
	return out
}

func (l *Loader) resolveTextures(m *Model) {
	for i := range m.Elements {
		for faceName, face := range m.Elements[i].Faces {
			resolved := m.ResolveTexture(face.Texture)
			if resolved != face.Texture {
				face.Texture = resolved
				m.Elements[i].Faces[faceName] = face
			}
		}
	}
}

// LoadBlockState reads the blockstate for name.
func (l *Loader) LoadBlockState(name string) (*BlockState, error) {
	path := filepath.Join(l.assetsPath, "blockstates", name+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read blockstate file: %w", err)
	}

	var blockState BlockState
	if err := json.Unmarshal(data, &blockState); err != nil {
		return nil, fmt.Errorf("could not unmarshal blockstate json: %w", err)
	}

	return &blockState, nil
}

// LoadBlockModel resolves a block's model through its blockstate. The
// "normal" or "" variant is preferred; otherwise the alphabetically first
// variant is used so the choice is deterministic.
func (l *Loader) LoadBlockModel(block string) (*Model, error) {
	bs, err := l.LoadBlockState(block)
	if err != nil {
		return nil, err
	}
	name := bs.DefaultModel()
	if name == "" {
		return nil, fmt.Errorf("blockstate %q has no model variants", block)
	}
	return l.LoadModel(name)
}
