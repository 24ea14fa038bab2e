package rank

import (
	"math/rand"
	"testing"
)

type scored struct {
	id    string
	score float64
}

func key(s scored) Key { return Key{ID: s.id, Score: s.score} }

func TestOrder_SortsDescending(t *testing.T) {
	t.Parallel()

	in := []scored{{"a", 0.2}, {"b", 0.9}, {"c", 0.5}}
	got := Order(in, key, 0, 0)
	if got[0].id != "b" || got[1].id != "c" || got[2].id != "a" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestOrder_TieBreakByIDAscending(t *testing.T) {
	t.Parallel()

	in := []scored{{"zeta", 0.5}, {"alpha", 0.5}, {"mid", 0.5}}
	got := Order(in, key, 0, 0)
	if got[0].id != "alpha" || got[1].id != "mid" || got[2].id != "zeta" {
		t.Fatalf("tie-break must be id ascending: %+v", got)
	}
}

func TestOrder_FilterBeforeTruncate(t *testing.T) {
	t.Parallel()

	// four candidates, two below threshold; with max=2 the survivors must be
	// the two above threshold, not whatever the first two happened to be
	in := []scored{{"low1", 0.1}, {"high1", 0.8}, {"low2", 0.2}, {"high2", 0.7}}
	got := Order(in, key, 0.5, 2)
	if len(got) != 2 || got[0].id != "high1" || got[1].id != "high2" {
		t.Fatalf("filter must run before truncation: %+v", got)
	}
}

func TestOrder_TruncatesToMax(t *testing.T) {
	t.Parallel()

	in := []scored{{"a", 0.9}, {"b", 0.8}, {"c", 0.7}}
	got := Order(in, key, 0, 2)
	if len(got) != 2 {
		t.Fatalf("want 2 results, got %d", len(got))
	}
	if got := Order(in, key, 0, 0); len(got) != 3 {
		t.Fatalf("max<=0 must keep all, got %d", len(got))
	}
}

func TestOrder_IndependentOfInputOrder(t *testing.T) {
	t.Parallel()

	base := []scored{{"a", 0.3}, {"b", 0.9}, {"c", 0.9}, {"d", 0.1}, {"e", 0.5}}
	want := Order(base, key, 0.2, 3)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]scored(nil), base...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got := Order(shuffled, key, 0.2, 3)
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("order depends on input order: %+v vs %+v", got, want)
			}
		}
	}
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := []scored{{"b", 0.5}, {"a", 0.9}}
	_ = Order(in, key, 0, 0)
	if in[0].id != "b" || in[1].id != "a" {
		t.Fatalf("input mutated: %+v", in)
	}
}
