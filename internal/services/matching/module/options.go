package module

import (
	"time"

	"reqmatch/internal/platform/config"
	"reqmatch/internal/services/matching/domain"
)

// Options holds configuration settings for the matching module
type Options struct {
	Index         string
	CacheTTL      time.Duration
	MaxResults    int
	RetryAttempts int
	BackoffBase   time.Duration
	Weights       domain.Weights
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	mf := cfg.Prefix("MATCH_")
	return Options{
		Index:         mf.MayString("INDEX", "candidates"),
		CacheTTL:      mf.MayDuration("CACHE_TTL", time.Hour),
		MaxResults:    mf.MayInt("MAX_RESULTS", 10),
		RetryAttempts: mf.MayInt("RETRY_ATTEMPTS", 3),
		BackoffBase:   mf.MayDuration("BACKOFF_BASE", time.Second),
		Weights: domain.Weights{
			SkillMatch:           mf.MayFloat64("WEIGHT_SKILL", 0.5),
			MandatorySkillsBlend: mf.MayFloat64("WEIGHT_MANDATORY_BLEND", 0.2),
			LocationMatch:        mf.MayFloat64("WEIGHT_LOCATION", 0.3),
			Availability:         mf.MayFloat64("WEIGHT_AVAILABILITY", 0.2),
		},
	}
}
