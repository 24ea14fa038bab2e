// Package module implements the matching service module
package module

import (
	"reqmatch/internal/modkit"
	"reqmatch/internal/services/matching/domain"
	"reqmatch/internal/services/matching/repo"
	"reqmatch/internal/services/matching/service"
	rldom "reqmatch/internal/services/runlog/domain"
)

// Ports exposed by the matching module
type Ports struct {
	Matcher domain.MatcherPort
}

// Module implements the matching service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new matching module
// pass a runlog recorder via modkit.WithPorts to enable run records
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	o := FromConfig(deps.Cfg)
	built := modkit.Build(opts...)

	var recorder rldom.RecorderPort
	if p, ok := built.PortsValue().(rldom.RecorderPort); ok {
		recorder = p
	}

	var cache domain.CachePort
	if deps.Cache != nil {
		cache = repo.NewCache(deps.Cache)
	}

	svc := service.New(
		repo.NewExecutor(deps.Search, o.Index),
		cache,
		recorder,
		service.Config{
			CacheTTL:   o.CacheTTL,
			MaxResults: o.MaxResults,
			Weights:    o.Weights,
			Retry: service.RetryPolicy{
				MaxAttempts: o.RetryAttempts,
				Base:        o.BackoffBase,
			},
		},
	)

	m := &Module{deps: deps}
	m.ports = Ports{Matcher: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "matching" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
