package store

import (
	"bytes"
	"context"
	"encoding/json"

	perr "reqmatch/internal/platform/errors"
	"reqmatch/internal/platform/store/es"
)

// newESAdapter is called by openers.go to wrap an existing *es.Client
// and return the store.Searcher seam
func newESAdapter(c *es.Client) Searcher {
	return &esAdapter{inner: c}
}

// esAdapter adapts *es.Client to the store.Searcher interface and classifies
// failures so callers can distinguish transient from fatal
type esAdapter struct {
	inner *es.Client
}

var _ Searcher = (*esAdapter)(nil)

// searchEnvelope mirrors the subset of the index response we consume
type searchEnvelope struct {
	Took int64 `json:"took"`
	Hits struct {
		Hits []struct {
			Source json.RawMessage `json:"_source"`
			Score  *float64        `json:"_score"`
		} `json:"hits"`
	} `json:"hits"`
}

func (a *esAdapter) Search(ctx context.Context, index string, body []byte) (SearchResult, error) {
	res, err := a.inner.Search(ctx, index, bytes.NewReader(body))
	if err != nil {
		// never reached the index or it never answered: transient
		return SearchResult{}, perr.FromSearchTransportf(err, "search %s", index)
	}
	if serr := perr.FromSearchStatus(res.Status, "search "+index); serr != nil {
		return SearchResult{}, serr
	}

	var env searchEnvelope
	if err := json.Unmarshal(res.Body, &env); err != nil {
		return SearchResult{}, perr.Wrapf(err, perr.ErrorCodeSearchFatal, "decode search response for %s", index)
	}

	out := SearchResult{TookMS: env.Took, Hits: make([]SearchHit, 0, len(env.Hits.Hits))}
	for _, h := range env.Hits.Hits {
		score := 0.0
		if h.Score != nil {
			score = *h.Score
		}
		out.Hits = append(out.Hits, SearchHit{Source: h.Source, Score: score})
	}
	return out, nil
}

// Ping verifies connectivity with the search index
func (a *esAdapter) Ping(ctx context.Context) error {
	if a == nil || a.inner == nil {
		return perr.Internalf("store: nil search adapter")
	}
	return a.inner.Ping(ctx)
}
