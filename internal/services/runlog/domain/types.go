// Package domain defines the types and interfaces for the runlog service
package domain

import "time"

// Run is one matching engine invocation flattened for the analytics warehouse
type Run struct {
	RunID          string
	RequisitionID  string
	Fingerprint    string
	CandidateCount int
	ResultCount    int
	TookMS         int64
	CacheHit       bool
	ErrorClass     string
	StartedAt      time.Time
	DurationMS     int64
}
