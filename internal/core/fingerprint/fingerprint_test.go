package fingerprint

import "testing"

func TestNew_Deterministic(t *testing.T) {
	t.Parallel()

	a := New("req-1", []string{"go", "sql"}, []byte(`{"max":10}`))
	b := New("req-1", []string{"go", "sql"}, []byte(`{"max":10}`))
	if a != b {
		t.Fatalf("identical inputs must fingerprint identically: %s vs %s", a, b)
	}
}

func TestNew_SkillOrderIndependent(t *testing.T) {
	t.Parallel()

	a := New("req-1", []string{"sql", "go", "k8s"}, nil)
	b := New("req-1", []string{"go", "k8s", "sql"}, nil)
	if a != b {
		t.Fatal("skill id order must not change the fingerprint")
	}
}

func TestNew_SensitiveToEachInput(t *testing.T) {
	t.Parallel()

	base := New("req-1", []string{"go"}, []byte("opts"))
	if New("req-2", []string{"go"}, []byte("opts")) == base {
		t.Fatal("requisition id must change the fingerprint")
	}
	if New("req-1", []string{"rust"}, []byte("opts")) == base {
		t.Fatal("skill set must change the fingerprint")
	}
	if New("req-1", []string{"go"}, []byte("other")) == base {
		t.Fatal("options must change the fingerprint")
	}
}

func TestNew_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	ids := []string{"z", "a"}
	_ = New("req-1", ids, nil)
	if ids[0] != "z" || ids[1] != "a" {
		t.Fatalf("input slice mutated: %v", ids)
	}
}
