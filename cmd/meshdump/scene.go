package main

import (
	"fmt"

	"blockmesh/internal/config"
	"blockmesh/internal/meshing"
	"blockmesh/internal/registry"

	"github.com/go-gl/mathgl/mgl32"
)

// item is one scene primitive ready for the pool, named for its OBJ group.
type item struct {
	name string
	job  meshing.Job
}

// buildScene turns the configured scene into emit jobs in a stable order:
// cubes, plants, spheres, then text.
func buildScene(scene config.SceneConfig, reg *registry.Registry) ([]item, error) {
	tiles := reg.Tiles()
	items := make([]item, 0, len(scene.Cubes)+len(scene.Plants)+len(scene.Spheres)+len(scene.Text))

	for i, s := range scene.Cubes {
		block, err := blockID(reg, s.Block)
		if err != nil {
			return nil, fmt.Errorf("cube %d: %w", i, err)
		}
		faces, err := faceSet(s.Faces)
		if err != nil {
			return nil, fmt.Errorf("cube %d: %w", i, err)
		}
		c := meshing.Cube{
			Faces: shade(faces, s.AO, s.Light),
			X:     s.Position[0],
			Y:     s.Position[1],
			Z:     s.Position[2],
			N:     s.Size,
			Block: block,
		}
		name := fmt.Sprintf("cube_%d_%s", i, s.Block)
		if s.Rotation == [3]float32{} {
			items = append(items, item{name, &meshing.CubeJob{Cube: c, Tiles: tiles}})
			continue
		}
		r := meshing.Rotation{
			Yaw:   mgl32.DegToRad(s.Rotation[0]),
			Pitch: mgl32.DegToRad(s.Rotation[1]),
			Roll:  mgl32.DegToRad(s.Rotation[2]),
		}
		items = append(items, item{name, &meshing.RotatedCubeJob{Cube: c, Rotation: r, Tiles: tiles}})
	}

	for i, s := range scene.Plants {
		block, err := blockID(reg, s.Block)
		if err != nil {
			return nil, fmt.Errorf("plant %d: %w", i, err)
		}
		p := meshing.Plant{
			AO:       s.AO,
			Light:    s.Light,
			X:        s.Position[0],
			Y:        s.Position[1],
			Z:        s.Position[2],
			N:        s.Size,
			Block:    block,
			Rotation: s.Yaw,
		}
		items = append(items, item{fmt.Sprintf("plant_%d_%s", i, s.Block), &meshing.PlantJob{Plant: p, Tiles: tiles}})
	}

	for i, s := range scene.Spheres {
		items = append(items, item{fmt.Sprintf("sphere_%d", i), &meshing.SphereJob{Radius: s.Radius, Detail: s.Detail}})
	}

	for i, s := range scene.Text {
		align, err := parseAlign(s.Align)
		if err != nil {
			return nil, fmt.Errorf("text %d: %w", i, err)
		}
		items = append(items, item{fmt.Sprintf("text_%d", i), &meshing.TextJob{
			Align: align,
			X:     s.Position[0],
			Y:     s.Position[1],
			Z:     s.Position[2],
			N:     s.Size,
			Text:  s.Text,
		}})
	}
	return items, nil
}

func blockID(reg *registry.Registry, name string) (int, error) {
	id, ok := reg.BlockID(name)
	if !ok {
		return 0, fmt.Errorf("unknown block %q", name)
	}
	return id, nil
}

// faceSet parses face names; none means all six.
func faceSet(names []string) (meshing.FaceSet, error) {
	if len(names) == 0 {
		return meshing.AllFaces, nil
	}
	var s meshing.FaceSet
	for _, name := range names {
		f, ok := meshing.ParseFace(name)
		if !ok {
			return 0, fmt.Errorf("unknown face %q", name)
		}
		s = s.With(f)
	}
	return s, nil
}

// shade gives every corner of every face the same ao and light.
func shade(visible meshing.FaceSet, ao, light float32) meshing.Faces {
	f := meshing.Faces{Visible: visible}
	for i := range f.AO {
		f.AO[i] = [4]float32{ao, ao, ao, ao}
		f.Light[i] = [4]float32{light, light, light, light}
	}
	return f
}

func parseAlign(name string) (meshing.Align, error) {
	switch name {
	case "", "left":
		return meshing.AlignLeft, nil
	case "center":
		return meshing.AlignCenter, nil
	case "right":
		return meshing.AlignRight, nil
	}
	return 0, fmt.Errorf("unknown alignment %q", name)
}

func jobs(items []item) []meshing.Job {
	js := make([]meshing.Job, len(items))
	for i, it := range items {
		js[i] = it.job
	}
	return js
}
