package review

import (
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"
)

func TestSamplePrefix_NoDuplicates(t *testing.T) {
	t.Parallel()

	pool := make([]uuid.UUID, 100)
	for i := range pool {
		pool[i] = uuid.New()
	}

	got := samplePrefix(pool, 30, rand.IntN)
	if len(got) != 30 {
		t.Fatalf("len = %d, want 30", len(got))
	}

	seen := make(map[uuid.UUID]bool, len(got))
	for _, id := range got {
		if seen[id] {
			t.Fatalf("duplicate id %s in sample", id)
		}
		seen[id] = true
	}
}

func TestSamplePrefix_WholePool(t *testing.T) {
	t.Parallel()

	pool := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	want := map[uuid.UUID]bool{pool[0]: true, pool[1]: true, pool[2]: true}

	got := samplePrefix(pool, 3, rand.IntN)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for _, id := range got {
		if !want[id] {
			t.Fatalf("unexpected id %s", id)
		}
	}
}

// With a deterministic source every element must be reachable: over many
// draws of 1 from a pool of 4, each entry shows up.
func TestSamplePrefix_EveryEntryReachable(t *testing.T) {
	t.Parallel()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	rng := rand.New(rand.NewPCG(1, 2))

	picked := make(map[uuid.UUID]bool)
	for range 200 {
		pool := append([]uuid.UUID(nil), ids...)
		got := samplePrefix(pool, 1, rng.IntN)
		picked[got[0]] = true
	}

	for _, id := range ids {
		if !picked[id] {
			t.Errorf("entry %s never selected in 200 draws", id)
		}
	}
}
