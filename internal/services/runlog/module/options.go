package module

import "reqmatch/internal/platform/config"

// Options holds configuration settings for the runlog module
type Options struct {
	Table string
}

// FromConfig reads configuration settings from the config.Conf
func FromConfig(cfg config.Conf) Options {
	rf := cfg.Prefix("RUNLOG_")
	return Options{
		Table: rf.MayString("TABLE", "match_runs"),
	}
}
