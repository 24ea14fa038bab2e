// Package service orchestrates one matching call end to end:
// validate, fingerprint, cache check, retried search, parallel scoring,
// confidence, rank, cache write, run record
package service

import (
	"context"
	"encoding/json"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"reqmatch/internal/core/fingerprint"
	"reqmatch/internal/core/rank"
	"reqmatch/internal/core/scoring"
	"reqmatch/internal/core/skills"
	perr "reqmatch/internal/platform/errors"
	"reqmatch/internal/platform/logger"
	"reqmatch/internal/services/matching/domain"
	"reqmatch/internal/services/matching/repo"
	rldom "reqmatch/internal/services/runlog/domain"
)

// Config for the matching service
// weights and limits here are the resolved defaults applied when an options
// field is left zero; no module-level mutable state
type Config struct {
	CacheTTL   time.Duration
	MaxResults int
	Weights    domain.Weights
	Retry      RetryPolicy
}

// Service implements domain.MatcherPort
type Service struct {
	exec     domain.ExecutorPort
	cache    domain.CachePort   // nil disables result caching
	recorder rldom.RecorderPort // nil disables run records
	cfg      Config
}

var _ domain.MatcherPort = (*Service)(nil)

// New constructs the matching service
func New(exec domain.ExecutorPort, cache domain.CachePort, recorder rldom.RecorderPort, cfg Config) *Service {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = 10
	}
	if cfg.Weights == (domain.Weights{}) {
		d := scoring.DefaultWeights()
		cfg.Weights = domain.Weights{
			SkillMatch:           d.SkillMatch,
			MandatorySkillsBlend: d.MandatoryBlend,
			LocationMatch:        d.LocationMatch,
			Availability:         d.Availability,
		}
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry = DefaultRetryPolicy()
	}
	return &Service{exec: exec, cache: cache, recorder: recorder, cfg: cfg}
}

// Match implements domain.MatcherPort
func (s *Service) Match(ctx context.Context, in domain.RequisitionMatchInput, opts domain.MatchOptions) ([]domain.MatchResult, error) {
	started := time.Now()

	if err := checkInput(in); err != nil {
		return nil, err
	}
	opts = s.withDefaults(opts)
	if err := checkOptions(opts); err != nil {
		return nil, err
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	runID := uuid.NewString()
	ctx = logger.WithRequest(ctx, runID, in.ID)
	log := logger.C(ctx)

	fp, err := fingerprintOf(in, opts)
	if err != nil {
		return nil, err
	}

	run := rldom.Run{
		RunID:         runID,
		RequisitionID: in.ID,
		Fingerprint:   fp,
		StartedAt:     started,
	}

	if opts.CacheResults && s.cache != nil {
		rs, ok, cerr := s.cache.Get(ctx, fp)
		switch {
		case cerr != nil:
			// soft failure: proceed as a miss
			log.Warn().Err(cerr).Str("fingerprint", fp).Msg("cache read failed")
		case ok:
			run.CacheHit = true
			run.ResultCount = len(rs)
			run.DurationMS = time.Since(started).Milliseconds()
			s.record(ctx, run)
			return rs, nil
		}
	}

	body, err := repo.BuildQuery(in, opts)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "build query for requisition %s", in.ID)
	}

	var page domain.CandidatePage
	err = s.cfg.Retry.Do(ctx, func(ctx context.Context) error {
		p, eerr := s.exec.Execute(ctx, body)
		if eerr != nil {
			return eerr
		}
		page = p
		return nil
	})
	if err != nil {
		run.ErrorClass = perr.CodeOf(err).String()
		run.DurationMS = time.Since(started).Milliseconds()
		s.record(ctx, run)
		return nil, err
	}

	scored := s.scoreAll(ctx, in, opts, page.Candidates)
	ranked := rank.Order(scored, func(r domain.MatchResult) rank.Key {
		return rank.Key{ID: r.CandidateID, Score: r.Score}
	}, opts.MinimumScore, opts.MaxResults)

	if opts.CacheResults && s.cache != nil {
		if cerr := s.cache.Set(ctx, fp, ranked, s.cfg.CacheTTL); cerr != nil {
			log.Warn().Err(cerr).Str("fingerprint", fp).Msg("cache write failed")
		}
	}

	run.CandidateCount = len(page.Candidates)
	run.ResultCount = len(ranked)
	run.TookMS = page.TookMS
	run.DurationMS = time.Since(started).Milliseconds()
	s.record(ctx, run)

	log.Debug().
		Int("candidates", len(page.Candidates)).
		Int("results", len(ranked)).
		Int64("took_ms", page.TookMS).
		Msg("match complete")
	return ranked, nil
}

// withDefaults fills zero-valued option fields from service config
func (s *Service) withDefaults(opts domain.MatchOptions) domain.MatchOptions {
	if opts.MaxResults == 0 {
		opts.MaxResults = s.cfg.MaxResults
	}
	if opts.Weights == (domain.Weights{}) {
		opts.Weights = s.cfg.Weights
	}
	return opts
}

// fingerprintOf derives the cache key from the requisition id, its skill ids,
// and the canonical option bytes
func fingerprintOf(in domain.RequisitionMatchInput, opts domain.MatchOptions) (string, error) {
	canon, err := json.Marshal(opts)
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "canonicalize options for %s", in.ID)
	}
	ids := make([]string, 0, len(in.RequiredSkills))
	for _, r := range in.RequiredSkills {
		ids = append(ids, r.SkillID)
	}
	return fingerprint.New(in.ID, ids, canon), nil
}

// scoreAll scores candidates in parallel; output order mirrors input order so
// the result never depends on goroutine scheduling
func (s *Service) scoreAll(
	ctx context.Context,
	in domain.RequisitionMatchInput,
	opts domain.MatchOptions,
	cands []domain.CandidateDocument,
) []domain.MatchResult {
	reqs := make([]scoring.Required, 0, len(in.RequiredSkills))
	for _, r := range in.RequiredSkills {
		reqs = append(reqs, scoring.Required{
			SkillID:   r.SkillID,
			MinYears:  r.MinimumYears,
			Level:     r.RequiredLevel,
			Mandatory: r.IsMandatory,
			Weight:    r.Weight,
		})
	}

	out := make([]domain.MatchResult, len(cands))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range cands {
		i := i
		g.Go(func() error {
			out[i] = scoreOne(reqs, opts.Weights, in.Location, cands[i])
			return nil
		})
	}
	_ = g.Wait() // workers never return errors
	return out
}

// scoreOne computes the full MatchResult for a single candidate
func scoreOne(reqs []scoring.Required, w domain.Weights, reqLoc domain.Location, cand domain.CandidateDocument) domain.MatchResult {
	have := make([]scoring.CandidateSkill, 0, len(cand.Skills))
	for _, cs := range cand.Skills {
		lvl, _ := skills.Parse(cs.Level) // unknown levels floor to Beginner
		have = append(have, scoring.CandidateSkill{SkillID: cs.SkillID, Years: cs.Years, Level: lvl})
	}

	ss := scoring.SkillScores(reqs, have)
	overall := scoring.Overall(ss, w.MandatorySkillsBlend)
	loc := scoring.LocationScore(place(reqLoc), place(cand.Location))
	avail := scoring.AvailabilityScore(cand.Status)

	comp := scoring.Composite(overall, loc, avail, scoring.Weights{
		SkillMatch:     w.SkillMatch,
		MandatoryBlend: w.MandatorySkillsBlend,
		LocationMatch:  w.LocationMatch,
		Availability:   w.Availability,
	})
	conf := scoring.Confidence(comp, scoring.MandatoryRatio(ss))

	matches := make([]domain.SkillMatch, 0, len(ss))
	for _, m := range ss {
		matches = append(matches, domain.SkillMatch{
			SkillID:    m.SkillID,
			Required:   m.Mandatory,
			Score:      m.Score,
			YearsDelta: m.YearsDelta,
			LevelDelta: m.LevelDelta,
		})
	}

	return domain.MatchResult{
		CandidateID:       cand.ID,
		Score:             comp,
		SkillMatches:      matches,
		ExperienceMatch:   overall,
		AvailabilityMatch: avail == 1,
		LocationMatch:     loc,
		LastUpdated:       cand.UpdatedAt,
		Confidence:        conf,
	}
}

func place(l domain.Location) scoring.Place {
	return scoring.Place{City: l.City, State: l.State, Country: l.Country, RemoteAllowed: l.RemoteAllowed}
}

// record writes the run row best-effort; a runlog failure never fails a match
func (s *Service) record(ctx context.Context, run rldom.Run) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Record(ctx, run); err != nil {
		logger.C(ctx).Warn().Err(err).Str("run_id", run.RunID).Msg("runlog write failed")
	}
}
