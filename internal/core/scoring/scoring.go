// Package scoring computes per-skill, composite, and confidence scores for one
// candidate against one requisition. Pure functions, no IO
package scoring

import (
	"reqmatch/internal/core/skills"
)

// Required is one skill demanded by a requisition
type Required struct {
	SkillID   string
	MinYears  float64
	Level     skills.Level
	Mandatory bool
	// Weight is carried for callers but not consumed by the current formula
	Weight float64
}

// CandidateSkill is one skill record on a candidate document
type CandidateSkill struct {
	SkillID string
	Years   float64
	Level   skills.Level
}

// SkillScore is the scored outcome of one required skill
type SkillScore struct {
	SkillID    string
	Mandatory  bool
	Score      float64
	YearsDelta float64
	LevelDelta int
}

// Weights configures the composite blend
// constructed once at module wiring, never read from globals
type Weights struct {
	SkillMatch     float64 `validate:"gte=0"`
	MandatoryBlend float64 `validate:"gte=0,lte=1"`
	LocationMatch  float64 `validate:"gte=0"`
	Availability   float64 `validate:"gte=0"`
}

// DefaultWeights returns the stock blend
func DefaultWeights() Weights {
	return Weights{
		SkillMatch:     0.5,
		MandatoryBlend: 0.2,
		LocationMatch:  0.3,
		Availability:   0.2,
	}
}

// PerSkill scores one requirement against the candidate's matching record
// cs nil means the candidate lacks the skill entirely: score 0 and worst deltas
func PerSkill(r Required, cs *CandidateSkill) SkillScore {
	out := SkillScore{SkillID: r.SkillID, Mandatory: r.Mandatory}
	if cs == nil {
		out.Score = 0
		out.YearsDelta = -r.MinYears
		out.LevelDelta = skills.WorstDelta
		return out
	}
	out.YearsDelta = cs.Years - r.MinYears
	out.LevelDelta = skills.Delta(cs.Level, r.Level)

	years := clamp01(out.YearsDelta/5 + 0.5)
	level := clamp01(float64(out.LevelDelta)/4 + 0.5)
	out.Score = years*0.6 + level*0.4
	return out
}

// SkillScores scores every requirement, pairing by skill id
func SkillScores(reqs []Required, have []CandidateSkill) []SkillScore {
	byID := make(map[string]*CandidateSkill, len(have))
	for i := range have {
		byID[have[i].SkillID] = &have[i]
	}
	out := make([]SkillScore, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, PerSkill(r, byID[r.SkillID]))
	}
	return out
}

// Overall blends the mandatory and optional averages into one skill score
// an empty partition contributes 0 rather than dividing by zero
func Overall(matches []SkillScore, blend float64) float64 {
	var mSum, oSum float64
	var mN, oN int
	for _, m := range matches {
		if m.Mandatory {
			mSum += m.Score
			mN++
		} else {
			oSum += m.Score
			oN++
		}
	}
	var mAvg, oAvg float64
	if mN > 0 {
		mAvg = mSum / float64(mN)
	}
	if oN > 0 {
		oAvg = oSum / float64(oN)
	}
	return mAvg*blend + oAvg*(1-blend)
}

// Composite folds the three factor scores under the configured weights,
// clamped to [0,1]
func Composite(overallSkill, location, availability float64, w Weights) float64 {
	return clamp01(overallSkill*w.SkillMatch + location*w.LocationMatch + availability*w.Availability)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
