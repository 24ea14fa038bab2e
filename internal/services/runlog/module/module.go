// Package module implements the runlog service module
package module

import (
	"reqmatch/internal/modkit"
	"reqmatch/internal/services/runlog/domain"
	"reqmatch/internal/services/runlog/repo"
	"reqmatch/internal/services/runlog/service"
)

// Ports exposed by the runlog module
// Recorder is nil when no warehouse is configured
type Ports struct {
	Recorder domain.RecorderPort
}

// Module implements the runlog service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs a new runlog module
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	m := &Module{deps: deps}
	if deps.Warehouse != nil {
		m.ports = Ports{Recorder: service.New(repo.NewCH(deps.Warehouse, opts.Table))}
	}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "runlog" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }
