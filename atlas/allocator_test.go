package atlas

import (
	"errors"
	"math/rand/v2"
	"testing"
)

// checkDisjoint fails the test if any two regions overlap or leave the bounds.
func checkDisjoint(t *testing.T, regions []Region, width, height int) {
	t.Helper()
	for i, a := range regions {
		if a.X < 0 || a.Y < 0 || a.X+a.Width > width || a.Y+a.Height > height {
			t.Fatalf("%v outside %dx%d", a, width, height)
		}
		for _, b := range regions[i+1:] {
			if a.Overlaps(b) {
				t.Fatalf("%v overlaps %v", a, b)
			}
		}
	}
}

func TestShelfAllocatorUniformExhaustion(t *testing.T) {
	a := NewShelfAllocator(64, 64)

	var regions []Region
	for i := 0; i < 64; i++ {
		r, ok := a.Allocate(8, 8)
		if !ok {
			t.Fatalf("allocation %d failed before exhaustion", i)
		}
		regions = append(regions, r)
	}
	checkDisjoint(t, regions, 64, 64)

	if _, ok := a.Allocate(8, 8); ok {
		t.Error("allocation succeeded in a full atlas")
	}
	if a.Utilization() != 1 {
		t.Errorf("Utilization() = %v, want 1", a.Utilization())
	}

	for _, r := range regions {
		if err := a.Deallocate(r); err != nil {
			t.Fatalf("Deallocate(%v): %v", r, err)
		}
	}
	if a.ShelfCount() != 0 || a.UsedArea() != 0 {
		t.Fatalf("after freeing everything: shelves=%d used=%d", a.ShelfCount(), a.UsedArea())
	}

	for i := 0; i < 64; i++ {
		if _, ok := a.Allocate(8, 8); !ok {
			t.Fatalf("re-allocation %d failed", i)
		}
	}
}

func TestShelfAllocatorReusesFreedSlots(t *testing.T) {
	a := NewShelfAllocator(64, 64)

	var regions []Region
	for i := 0; i < 64; i++ {
		r, _ := a.Allocate(8, 8)
		regions = append(regions, r)
	}

	var kept []Region
	freed := 0
	for i, r := range regions {
		if i%2 == 0 {
			if err := a.Deallocate(r); err != nil {
				t.Fatal(err)
			}
			freed++
			continue
		}
		kept = append(kept, r)
	}

	for i := 0; i < freed; i++ {
		r, ok := a.Allocate(8, 8)
		if !ok {
			t.Fatalf("allocation %d of %d failed with free space left", i, freed)
		}
		kept = append(kept, r)
	}
	checkDisjoint(t, kept, 64, 64)
}

func TestShelfAllocatorDeallocateUnknown(t *testing.T) {
	a := NewShelfAllocator(32, 32)
	r, ok := a.Allocate(4, 4)
	if !ok {
		t.Fatal("Allocate failed")
	}

	if err := a.Deallocate(Region{X: 1, Y: 1, Width: 4, Height: 4}); !errors.Is(err, ErrRegionNotAllocated) {
		t.Errorf("Deallocate(unknown) = %v, want ErrRegionNotAllocated", err)
	}
	if err := a.Deallocate(r); err != nil {
		t.Fatalf("Deallocate: %v", err)
	}
	if err := a.Deallocate(r); !errors.Is(err, ErrRegionNotAllocated) {
		t.Errorf("double Deallocate = %v, want ErrRegionNotAllocated", err)
	}
}

func TestShelfAllocatorRejectsOversize(t *testing.T) {
	a := NewShelfAllocator(32, 16)

	tests := []struct {
		name string
		w, h int
	}{
		{"too wide", 33, 4},
		{"too tall", 4, 17},
		{"zero width", 0, 4},
		{"negative height", 4, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := a.Allocate(tt.w, tt.h); ok {
				t.Errorf("Allocate(%d, %d) succeeded", tt.w, tt.h)
			}
		})
	}

	if _, ok := a.Allocate(32, 16); !ok {
		t.Error("Allocate of the full area failed")
	}
}

func TestShelfAllocatorMergesEmptyShelves(t *testing.T) {
	a := NewShelfAllocator(64, 64)
	r1, _ := a.Allocate(64, 8)
	r2, _ := a.Allocate(64, 8)
	r3, _ := a.Allocate(64, 8)
	if a.ShelfCount() != 3 {
		t.Fatalf("ShelfCount() = %d, want 3", a.ShelfCount())
	}

	_ = a.Deallocate(r1)
	_ = a.Deallocate(r2)
	if a.ShelfCount() != 2 {
		t.Fatalf("ShelfCount() after merge = %d, want 2", a.ShelfCount())
	}

	r, ok := a.Allocate(64, 16)
	if !ok {
		t.Fatal("Allocate(64, 16) failed")
	}
	if r.Y != 0 {
		t.Errorf("merged shelf not reused: got %v", r)
	}
	checkDisjoint(t, []Region{r, r3}, 64, 64)
}

func TestShelfAllocatorTrimsTrailingShelf(t *testing.T) {
	a := NewShelfAllocator(64, 64)
	r1, _ := a.Allocate(10, 10)
	r2, _ := a.Allocate(64, 20)

	_ = a.Deallocate(r2)
	if a.ShelfCount() != 1 {
		t.Errorf("ShelfCount() = %d, want 1", a.ShelfCount())
	}
	_ = a.Deallocate(r1)
	if a.ShelfCount() != 0 {
		t.Errorf("ShelfCount() = %d, want 0", a.ShelfCount())
	}
	if _, ok := a.Allocate(64, 64); !ok {
		t.Error("full-size allocation failed after freeing everything")
	}
}

func TestShelfAllocatorChurn(t *testing.T) {
	const size = 128
	a := NewShelfAllocator(size, size)
	rng := rand.New(rand.NewPCG(1, 2))

	live := map[Region]bool{}
	for cycle := 0; cycle < 50; cycle++ {
		for {
			w, h := 6+rng.IntN(5), 6+rng.IntN(5)
			r, ok := a.Allocate(w, h)
			if !ok {
				break
			}
			if live[r] {
				t.Fatalf("cycle %d: region %v handed out twice", cycle, r)
			}
			live[r] = true
		}

		regions := make([]Region, 0, len(live))
		for r := range live {
			regions = append(regions, r)
		}
		checkDisjoint(t, regions, size, size)

		for _, r := range regions {
			if rng.IntN(2) == 0 {
				if err := a.Deallocate(r); err != nil {
					t.Fatal(err)
				}
				delete(live, r)
			}
		}
	}

	for r := range live {
		if err := a.Deallocate(r); err != nil {
			t.Fatal(err)
		}
	}
	if a.AllocCount() != 0 || a.ShelfCount() != 0 {
		t.Fatalf("leftover state: allocs=%d shelves=%d", a.AllocCount(), a.ShelfCount())
	}
	if _, ok := a.Allocate(size, size); !ok {
		t.Error("atlas fragmented permanently after churn")
	}
}

func TestShelfAllocatorReset(t *testing.T) {
	a := NewShelfAllocator(32, 32)
	for i := 0; i < 4; i++ {
		a.Allocate(16, 16)
	}
	a.Reset()
	if a.UsedArea() != 0 || a.AllocCount() != 0 || a.ShelfCount() != 0 {
		t.Error("Reset() left state behind")
	}
	if _, ok := a.Allocate(32, 32); !ok {
		t.Error("Allocate after Reset failed")
	}
}
