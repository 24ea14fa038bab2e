package repo

import (
	"context"
	"encoding/json"

	perr "reqmatch/internal/platform/errors"
	"reqmatch/internal/platform/store"
	"reqmatch/internal/services/matching/domain"
)

// Executor runs built queries against the candidate index
// it is read-only and safe to call repeatedly; retrying is the caller's job
type Executor struct {
	index  string
	search store.Searcher
}

var _ domain.ExecutorPort = (*Executor)(nil)

// NewExecutor wraps the store search seam for one index
func NewExecutor(search store.Searcher, index string) *Executor {
	return &Executor{index: index, search: search}
}

// Execute implements domain.ExecutorPort
// transport and status failures come back classified by the store adapter;
// a document that does not decode is a fatal index contract breach
func (e *Executor) Execute(ctx context.Context, body []byte) (domain.CandidatePage, error) {
	res, err := e.search.Search(ctx, e.index, body)
	if err != nil {
		return domain.CandidatePage{}, err
	}

	page := domain.CandidatePage{
		TookMS:     res.TookMS,
		Candidates: make([]domain.CandidateDocument, 0, len(res.Hits)),
	}
	for _, h := range res.Hits {
		var doc domain.CandidateDocument
		if err := json.Unmarshal(h.Source, &doc); err != nil {
			return domain.CandidatePage{}, perr.Wrapf(err, perr.ErrorCodeSearchFatal, "decode candidate document from %s", e.index)
		}
		page.Candidates = append(page.Candidates, doc)
	}
	return page, nil
}
