package scoring

// MandatoryRatio is the share of mandatory skills the candidate actually holds
// (per-skill score > 0). Defined as 1 when there are no mandatory skills
func MandatoryRatio(matches []SkillScore) float64 {
	var total, met int
	for _, m := range matches {
		if !m.Mandatory {
			continue
		}
		total++
		if m.Score > 0 {
			met++
		}
	}
	if total == 0 {
		return 1
	}
	return float64(met) / float64(total)
}

// Confidence discounts the composite score by mandatory coverage,
// capped at 1
func Confidence(composite, mandatoryRatio float64) float64 {
	c := composite * mandatoryRatio * 1.2
	if c > 1 {
		return 1
	}
	return c
}
