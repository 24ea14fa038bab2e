// Package repo implements the matching service's index, query, and cache layers
package repo

import (
	"encoding/json"
	"sort"

	"reqmatch/internal/services/matching/domain"
)

// searchPageSize bounds how many candidate documents one search returns
// scoring filters and truncates afterwards, so this oversamples max_results
const searchPageSize = 200

// BuildQuery renders the requisition and options into a structured index query.
// Identical inputs yield byte-identical output: skill clauses are sorted by
// skill id ascending and all objects serialize with sorted keys.
// An empty skill list yields a status/location-only query
func BuildQuery(in domain.RequisitionMatchInput, opts domain.MatchOptions) ([]byte, error) {
	statuses := []string{domain.StatusActive}
	if opts.IncludeInactive {
		statuses = append(statuses, domain.StatusInactive)
	}
	filter := []any{
		map[string]any{"terms": map[string]any{"status": statuses}},
	}

	reqs := append([]domain.RequiredSkill(nil), in.RequiredSkills...)
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].SkillID < reqs[j].SkillID })

	must := make([]any, 0, len(reqs))
	for _, r := range reqs {
		must = append(must, skillClause(r, opts.FuzzyMatching))
	}

	should := make([]any, 0, 2)
	if in.Location.RemoteAllowed {
		should = append(should, map[string]any{
			"term": map[string]any{"location.remote_allowed": true},
		})
	}
	if in.Location.City != "" && in.Location.State != "" {
		should = append(should, map[string]any{
			"bool": map[string]any{
				"must": []any{
					map[string]any{"term": map[string]any{"location.city": in.Location.City}},
					map[string]any{"term": map[string]any{"location.state": in.Location.State}},
				},
			},
		})
	}

	boolQ := map[string]any{"filter": filter}
	if len(must) > 0 {
		boolQ["must"] = must
	}
	if len(should) > 0 {
		boolQ["should"] = should
		boolQ["minimum_should_match"] = 1
	}

	return json.Marshal(map[string]any{
		"query": map[string]any{"bool": boolQ},
		"size":  searchPageSize,
	})
}

// skillClause is one nested requirement: skill id match AND years >= minimum
func skillClause(r domain.RequiredSkill, fuzzy bool) map[string]any {
	var idMatch map[string]any
	if fuzzy {
		idMatch = map[string]any{
			"match": map[string]any{
				"skills.skill_id": map[string]any{"query": r.SkillID, "fuzziness": "AUTO"},
			},
		}
	} else {
		idMatch = map[string]any{"term": map[string]any{"skills.skill_id": r.SkillID}}
	}
	return map[string]any{
		"nested": map[string]any{
			"path": "skills",
			"query": map[string]any{
				"bool": map[string]any{
					"must": []any{
						idMatch,
						map[string]any{
							"range": map[string]any{
								"skills.years": map[string]any{"gte": r.MinimumYears},
							},
						},
					},
				},
			},
		},
	}
}
