package meshing

import (
	"context"
	"errors"
	"sync"
	"testing"

	"blockmesh/internal/registry"

	"go.uber.org/multierr"
)

func sampleJobs(tiles *registry.TileTable) []Job {
	return []Job{
		&CubeJob{Cube: Cube{Faces: shadedFaces(AllFaces), X: 1, N: 0.5, Block: registry.BlockGrass}, Tiles: tiles},
		&SphereJob{Radius: 2, Detail: 2},
		&RotatedCubeJob{
			Cube:     Cube{Faces: shadedFaces(NewFaceSet(FaceTop, FaceFront)), Y: 3, N: 0.25, Block: registry.BlockWood},
			Rotation: Rotation{Yaw: 0.3, Pitch: 0.2, Roll: 0.1},
			Tiles:    tiles,
		},
		&PlantJob{Plant: Plant{AO: 0.5, Light: 1, Z: -2, N: 0.5, Block: registry.BlockTallGrass, Rotation: 45}, Tiles: tiles},
		&TextJob{Align: AlignCenter, Y: 5, N: 0.5, Text: "hello"},
		&CubeJob{Cube: Cube{Faces: shadedFaces(0), Block: registry.BlockStone}, Tiles: tiles},
	}
}

func TestBatchMatchesSequential(t *testing.T) {
	pool := NewWorkerPool(4, 8)
	defer pool.Shutdown()

	jobs := sampleJobs(testTiles())
	batch, err := pool.Batch(context.Background(), jobs)
	if err != nil {
		t.Fatalf("Batch: %v", err)
	}

	offset := 0
	for i, j := range jobs {
		r := batch.Regions[i]
		if r.Offset != offset || r.Floats != j.Floats() || r.Stride != j.Stride() {
			t.Fatalf("job %d: region %+v, want offset %d floats %d stride %d", i, r, offset, j.Floats(), j.Stride())
		}
		if r.Vertices*r.Stride != r.Floats {
			t.Fatalf("job %d: %d vertices do not fill %d floats", i, r.Vertices, r.Floats)
		}
		offset += r.Floats

		want := make([]float32, j.Floats())
		if _, err := j.Emit(want); err != nil {
			t.Fatalf("job %d sequential: %v", i, err)
		}
		got := batch.Vertices(i)
		for k := range want {
			if got[k] != want[k] {
				t.Fatalf("job %d float %d: batch %v, sequential %v", i, k, got[k], want[k])
			}
		}
	}
	if len(batch.Data) != offset {
		t.Fatalf("batch size %d, want %d", len(batch.Data), offset)
	}
	if batch.Regions[1].Vertices != 384 {
		t.Fatalf("sphere detail 2: got %d vertices, want 384", batch.Regions[1].Vertices)
	}
}

func TestBatchCombinesErrors(t *testing.T) {
	pool := NewWorkerPool(2, 2)
	defer pool.Shutdown()

	tiles := testTiles()
	jobs := []Job{
		&CubeJob{Cube: Cube{Faces: shadedFaces(AllFaces), Block: 999}, Tiles: tiles},
		&PlantJob{Plant: Plant{Block: 1}, Tiles: tiles},
		&SphereJob{Radius: 1, Detail: -3},
	}
	batch, err := pool.Batch(context.Background(), jobs)
	if batch != nil || err == nil {
		t.Fatalf("expected failure, got batch %v err %v", batch, err)
	}
	if got := len(multierr.Errors(err)); got != 2 {
		t.Fatalf("got %d errors, want 2: %v", got, err)
	}
	if !errors.Is(err, ErrBlockOutOfRange) || !errors.Is(err, ErrInvalidDetail) {
		t.Fatalf("combined error lost a cause: %v", err)
	}
}

func TestBatchCancelledAndClosed(t *testing.T) {
	pool := NewWorkerPool(1, 1)
	jobs := sampleJobs(testTiles())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := pool.Batch(ctx, jobs); !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled context: got %v", err)
	}

	pool.Shutdown()
	pool.Shutdown()
	if _, err := pool.Batch(context.Background(), jobs); !errors.Is(err, ErrPoolClosed) {
		t.Fatalf("closed pool: got %v", err)
	}
}

func TestBuildersConcurrentDisjointRegions(t *testing.T) {
	tiles := testTiles()
	const instances = 64
	size := CubeFloats(AllFaces)
	shared := make([]float32, instances*size)

	var wg sync.WaitGroup
	for i := 0; i < instances; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := Cube{Faces: shadedFaces(AllFaces), X: float32(i), N: 0.5, Block: i % 17}
			dst := shared[i*size : (i+1)*size : (i+1)*size]
			if _, err := MakeRotatedCube(dst, &c, Rotation{Yaw: float32(i) * 0.1}, tiles); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < instances; i++ {
		c := Cube{Faces: shadedFaces(AllFaces), X: float32(i), N: 0.5, Block: i % 17}
		want := make([]float32, size)
		if _, err := MakeRotatedCube(want, &c, Rotation{Yaw: float32(i) * 0.1}, tiles); err != nil {
			t.Fatal(err)
		}
		for k, w := range want {
			if shared[i*size+k] != w {
				t.Fatalf("instance %d float %d: got %v, want %v", i, k, shared[i*size+k], w)
			}
		}
	}
}
