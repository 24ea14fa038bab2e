package scoring

import "golang.org/x/text/cases"

// Place is the location shape shared by requisitions and candidates
type Place struct {
	City          string
	State         string
	Country       string
	RemoteAllowed bool
}

// LocationScore is 1 when both sides allow remote, or the city and state match
// under case folding; otherwise 0
func LocationScore(req, cand Place) float64 {
	if req.RemoteAllowed && cand.RemoteAllowed {
		return 1
	}
	if req.City == "" || req.State == "" {
		return 0
	}
	// Caser is stateful, so build a fresh one per call
	fold := cases.Fold()
	if fold.String(req.City) == fold.String(cand.City) &&
		fold.String(req.State) == fold.String(cand.State) {
		return 1
	}
	return 0
}

// StatusActive is the candidate status that counts as available
const StatusActive = "ACTIVE"

// AvailabilityScore is 1 for an ACTIVE candidate, else 0
func AvailabilityScore(status string) float64 {
	if status == StatusActive {
		return 1
	}
	return 0
}
