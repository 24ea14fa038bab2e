package scoring

import (
	"math"
	"testing"

	"reqmatch/internal/core/skills"
)

func approx(t *testing.T, got, want float64, what string) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v want %v", what, got, want)
	}
}

func TestPerSkill_MeetsAndExceeds(t *testing.T) {
	t.Parallel()

	// requires 3y ADVANCED; candidate has 5y EXPERT
	r := Required{SkillID: "x", MinYears: 3, Level: skills.Advanced, Mandatory: true}
	cs := &CandidateSkill{SkillID: "x", Years: 5, Level: skills.Expert}

	m := PerSkill(r, cs)
	approx(t, m.YearsDelta, 2, "years delta")
	if m.LevelDelta != 1 {
		t.Fatalf("level delta = %d", m.LevelDelta)
	}
	// clamp(2/5+0.5)*0.6 + clamp(1/4+0.5)*0.4 = 0.9*0.6 + 0.75*0.4
	approx(t, m.Score, 0.84, "per-skill score")
}

func TestPerSkill_MissingSkillIsWorstCase(t *testing.T) {
	t.Parallel()

	r := Required{SkillID: "x", MinYears: 3, Level: skills.Advanced, Mandatory: true}
	m := PerSkill(r, nil)
	if m.Score != 0 {
		t.Fatalf("missing skill score = %v", m.Score)
	}
	approx(t, m.YearsDelta, -3, "years delta")
	if m.LevelDelta != skills.WorstDelta {
		t.Fatalf("level delta = %d want %d", m.LevelDelta, skills.WorstDelta)
	}
}

func TestPerSkill_ScoreStaysInUnitInterval(t *testing.T) {
	t.Parallel()

	r := Required{SkillID: "x", MinYears: 0, Level: skills.Beginner}
	cs := &CandidateSkill{SkillID: "x", Years: 40, Level: skills.Expert}
	m := PerSkill(r, cs)
	if m.Score < 0 || m.Score > 1 {
		t.Fatalf("score out of range: %v", m.Score)
	}
	approx(t, m.Score, 1, "maxed score")
}

func TestSkillScores_PairsBySkillID(t *testing.T) {
	t.Parallel()

	reqs := []Required{
		{SkillID: "go", MinYears: 2, Level: skills.Intermediate, Mandatory: true},
		{SkillID: "sql", MinYears: 1, Level: skills.Beginner},
	}
	have := []CandidateSkill{
		{SkillID: "sql", Years: 4, Level: skills.Advanced},
	}
	got := SkillScores(reqs, have)
	if len(got) != 2 {
		t.Fatalf("want one score per requirement, got %d", len(got))
	}
	if got[0].SkillID != "go" || got[0].Score != 0 {
		t.Fatalf("missing go must score 0: %+v", got[0])
	}
	if got[1].SkillID != "sql" || got[1].Score <= 0 {
		t.Fatalf("held sql must score >0: %+v", got[1])
	}
}

func TestOverall_BlendsPartitions(t *testing.T) {
	t.Parallel()

	matches := []SkillScore{
		{SkillID: "a", Mandatory: true, Score: 0.8},
		{SkillID: "b", Mandatory: true, Score: 0.4},
		{SkillID: "c", Score: 1.0},
	}
	// mandatory_avg=0.6, optional_avg=1.0, blend 0.2
	approx(t, Overall(matches, 0.2), 0.6*0.2+1.0*0.8, "overall")
}

func TestOverall_EmptyPartitionsContributeZero(t *testing.T) {
	t.Parallel()

	approx(t, Overall(nil, 0.2), 0, "no skills")
	onlyMandatory := []SkillScore{{SkillID: "a", Mandatory: true, Score: 1}}
	approx(t, Overall(onlyMandatory, 0.2), 0.2, "mandatory only")
	onlyOptional := []SkillScore{{SkillID: "a", Score: 1}}
	approx(t, Overall(onlyOptional, 0.2), 0.8, "optional only")
}

// A candidate missing a mandatory skill must trail an otherwise identical
// candidate holding it at or above the required level
func TestMandatoryAbsenceOrdersBelowPresence(t *testing.T) {
	t.Parallel()

	reqs := []Required{{SkillID: "x", MinYears: 3, Level: skills.Advanced, Mandatory: true}}
	withSkill := Overall(SkillScores(reqs, []CandidateSkill{{SkillID: "x", Years: 5, Level: skills.Expert}}), 0.2)
	without := Overall(SkillScores(reqs, nil), 0.2)
	if !(withSkill > without) {
		t.Fatalf("with=%v must exceed without=%v", withSkill, without)
	}
}

func TestComposite_WeightsAndClamp(t *testing.T) {
	t.Parallel()

	w := DefaultWeights()
	approx(t, Composite(1, 1, 1, w), 1, "full marks clamp")
	approx(t, Composite(0.168, 1, 1, w), 0.168*0.5+0.3+0.2, "scenario A candidate")
	approx(t, Composite(0, 0, 0, w), 0, "zero floor")

	heavy := Weights{SkillMatch: 2, LocationMatch: 2, Availability: 2}
	if got := Composite(1, 1, 1, heavy); got != 1 {
		t.Fatalf("composite must clamp to 1, got %v", got)
	}
}

func TestLocationScore(t *testing.T) {
	t.Parallel()

	remote := Place{RemoteAllowed: true}
	if LocationScore(remote, Place{RemoteAllowed: true}) != 1 {
		t.Fatal("remote/remote must score 1")
	}
	austin := Place{City: "Austin", State: "TX"}
	if LocationScore(austin, Place{City: "austin", State: "tx"}) != 1 {
		t.Fatal("same city+state must match case insensitively")
	}
	if LocationScore(austin, Place{City: "Dallas", State: "TX"}) != 0 {
		t.Fatal("different city must score 0")
	}
	if LocationScore(austin, Place{City: "Austin", State: "TX", RemoteAllowed: true}) != 1 {
		t.Fatal("city+state match scores regardless of remote flags")
	}
	if LocationScore(Place{RemoteAllowed: true}, Place{City: "Austin", State: "TX"}) != 0 {
		t.Fatal("remote requisition with on-site candidate and no city scores 0")
	}
}

func TestAvailabilityScore(t *testing.T) {
	t.Parallel()

	if AvailabilityScore(StatusActive) != 1 {
		t.Fatal("active must score 1")
	}
	if AvailabilityScore("INACTIVE") != 0 {
		t.Fatal("inactive must score 0")
	}
}
