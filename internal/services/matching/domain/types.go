// Package domain defines the types and interfaces for the matching service
package domain

import (
	"time"

	"reqmatch/internal/core/skills"
)

// Statuses understood by the requisition and candidate records
const (
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// RequiredSkill is one skill demanded by a requisition
type RequiredSkill struct {
	SkillID       string       `json:"skill_id" validate:"required"`
	MinimumYears  float64      `json:"minimum_years" validate:"gte=0"`
	RequiredLevel skills.Level `json:"required_level" validate:"gte=1,lte=4"`
	IsMandatory   bool         `json:"is_mandatory"`
	// Weight is informational only; the scoring formula does not consume it
	Weight float64 `json:"weight" validate:"gte=0"`
}

// Location is the place shape shared by requisitions and candidates
type Location struct {
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	RemoteAllowed bool   `json:"remote_allowed"`
}

// RequisitionMatchInput is the caller-supplied requisition to match against
// skill ids must be unique within RequiredSkills
type RequisitionMatchInput struct {
	ID             string          `json:"id" validate:"required"`
	RequiredSkills []RequiredSkill `json:"required_skills" validate:"dive"`
	Location       Location        `json:"location"`
	Status         string          `json:"status"`
}

// CandidateSkillRecord is one skill entry on an indexed candidate
// Level is the raw index string; unknown values floor to BEGINNER when scored
type CandidateSkillRecord struct {
	SkillID string  `json:"skill_id"`
	Years   float64 `json:"years" validate:"gte=0"`
	Level   string  `json:"level"`
}

// CandidateDocument is a candidate as read from the search index
type CandidateDocument struct {
	ID        string                 `json:"id"`
	Skills    []CandidateSkillRecord `json:"skills"`
	Location  Location               `json:"location"`
	Status    string                 `json:"status"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// CandidatePage is one executed search: decoded documents plus index latency
type CandidatePage struct {
	Candidates []CandidateDocument
	TookMS     int64
}

// SkillMatch is the scored outcome of one required skill for one candidate
type SkillMatch struct {
	SkillID    string  `json:"skill_id"`
	Required   bool    `json:"required"`
	Score      float64 `json:"score"`
	YearsDelta float64 `json:"years_delta"`
	LevelDelta int     `json:"level_delta"`
}

// MatchResult is one ranked candidate outcome, immutable once produced
type MatchResult struct {
	CandidateID       string       `json:"candidate_id"`
	Score             float64      `json:"score"`
	SkillMatches      []SkillMatch `json:"skill_matches"`
	ExperienceMatch   float64      `json:"experience_match"`
	AvailabilityMatch bool         `json:"availability_match"`
	LocationMatch     float64      `json:"location_match"`
	LastUpdated       time.Time    `json:"last_updated"`
	Confidence        float64      `json:"confidence"`
}

// Weights configures the composite blend, resolved before the engine boundary
type Weights struct {
	SkillMatch           float64 `json:"skill_match" validate:"gte=0"`
	MandatorySkillsBlend float64 `json:"mandatory_skills_blend" validate:"gte=0,lte=1"`
	LocationMatch        float64 `json:"location_match" validate:"gte=0"`
	Availability         float64 `json:"availability" validate:"gte=0"`
}

// MatchOptions tunes one matching call
type MatchOptions struct {
	MinimumScore    float64       `json:"minimum_score" validate:"gte=0,lte=1"`
	MaxResults      int           `json:"max_results" validate:"gte=0"`
	IncludeInactive bool          `json:"include_inactive"`
	Weights         Weights       `json:"weights"`
	FuzzyMatching   bool          `json:"fuzzy_matching"`
	CacheResults    bool          `json:"cache_results"`
	Timeout         time.Duration `json:"timeout"`
}
