package skills

import "testing"

func TestOrdinalTotalOrder(t *testing.T) {
	t.Parallel()
	if !(Beginner < Intermediate && Intermediate < Advanced && Advanced < Expert) {
		t.Fatal("levels must be totally ordered BEGINNER<INTERMEDIATE<ADVANCED<EXPERT")
	}
	if int(Beginner) != 1 || int(Expert) != 4 {
		t.Fatalf("ordinals must be 1..4, got %d..%d", Beginner, Expert)
	}
}

func TestParseRoundtrip(t *testing.T) {
	t.Parallel()
	for _, l := range []Level{Beginner, Intermediate, Advanced, Expert} {
		got, ok := Parse(l.String())
		if !ok || got != l {
			t.Fatalf("Parse(%q) = %v ok=%v", l.String(), got, ok)
		}
	}
}

func TestParseCaseAndSpace(t *testing.T) {
	t.Parallel()
	if got, ok := Parse("  advanced "); !ok || got != Advanced {
		t.Fatalf("Parse lax = %v ok=%v", got, ok)
	}
}

func TestParseUnknownFloors(t *testing.T) {
	t.Parallel()
	got, ok := Parse("wizard")
	if ok {
		t.Fatal("unknown level must report ok=false")
	}
	if got != Beginner {
		t.Fatalf("unknown level must floor to Beginner, got %v", got)
	}
}

func TestDelta(t *testing.T) {
	t.Parallel()
	if d := Delta(Expert, Advanced); d != 1 {
		t.Fatalf("Delta(Expert,Advanced) = %d", d)
	}
	if d := Delta(Beginner, Expert); d != WorstDelta {
		t.Fatalf("Delta(Beginner,Expert) = %d want %d", d, WorstDelta)
	}
	if WorstDelta != -3 {
		t.Fatalf("WorstDelta = %d", WorstDelta)
	}
}
