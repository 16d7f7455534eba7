package watchlist

import (
	"fmt"
	"sync"
	"time"

	"github.com/prathickshaselvaraj/FinancialRiskRadar/internal/config"
)

// Manager guards the watchlist state with concurrency safety. Configured
// sources are merged into the persisted state on startup; run history for
// sources no longer configured is kept.
type Manager struct {
	mu       sync.Mutex
	state    *State
	filePath string
}

// NewManager loads (or initializes) the state file and seeds it with the
// configured sources.
func NewManager(filePath string, configured []config.SourceConfig) (*Manager, error) {
	state, err := LoadState(filePath)
	if err != nil {
		return nil, err
	}

	known := make(map[string]int, len(state.Sources))
	for i, src := range state.Sources {
		known[src.Name] = i
	}
	for _, sc := range configured {
		if i, ok := known[sc.Name]; ok {
			// Config wins for target and entities; run history survives.
			state.Sources[i].URL = sc.URL
			state.Sources[i].Path = sc.Path
			state.Sources[i].Entities = sc.Entities
			continue
		}
		state.Sources = append(state.Sources, Source{
			Name:     sc.Name,
			URL:      sc.URL,
			Path:     sc.Path,
			Entities: sc.Entities,
		})
	}

	m := &Manager{state: state, filePath: filePath}
	if err := m.save(); err != nil {
		return nil, err
	}
	return m, nil
}

// Sources returns a copy of the current source list.
func (m *Manager) Sources() []Source {
	m.mu.Lock()
	defer m.mu.Unlock()
	sources := make([]Source, len(m.state.Sources))
	copy(sources, m.state.Sources)
	return sources
}

// Get returns the named source, or false if absent.
func (m *Manager) Get(name string) (Source, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, src := range m.state.Sources {
		if src.Name == name {
			return src, true
		}
	}
	return Source{}, false
}

// RecordRun stores the outcome of one analysis run and persists the state.
func (m *Manager) RecordRun(name string, overallScore float64, riskLevel string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.state.Sources {
		if m.state.Sources[i].Name != name {
			continue
		}
		m.state.Sources[i].LastRunAt = time.Now()
		m.state.Sources[i].LastScore = overallScore
		m.state.Sources[i].LastRiskLevel = riskLevel
		m.state.Sources[i].RunCount++
		return m.save()
	}
	return fmt.Errorf("unknown source %q", name)
}

// save persists state. Caller must hold the lock.
func (m *Manager) save() error {
	return SaveState(m.filePath, m.state)
}
