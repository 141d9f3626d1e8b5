// Package charts manages the in-progress chart and the pinned chart
// instances, each with its own dataset, hidden series and viewport.
package charts

import (
	"github.com/andareed/siftly-sheetchart/ingest"
	"github.com/andareed/siftly-sheetchart/viewport"
	"github.com/andareed/siftly-sheetchart/visibility"
)

// ID identifies a pinned chart.
type ID string

// NoInstance addresses the in-progress chart.
const NoInstance ID = ""

// Chart is one dataset with its own series visibility and viewport.
type Chart struct {
	id      ID
	dataset *ingest.Dataset
	series  *visibility.Tracker
	view    *viewport.Controller
}

func newChart(id ID, ds *ingest.Dataset, hidden visibility.Set, opts viewport.Options) *Chart {
	return &Chart{
		id:      id,
		dataset: ds,
		series:  visibility.FromSet(ds.IndexHeader(), hidden),
		view:    viewport.New(ds.Len(), opts),
	}
}

func (c *Chart) ID() ID { return c.id }

// Pinned is false for the in-progress chart.
func (c *Chart) Pinned() bool { return c.id != NoInstance }

func (c *Chart) Dataset() *ingest.Dataset { return c.dataset }

func (c *Chart) Series() *visibility.Tracker { return c.series }

func (c *Chart) Viewport() *viewport.Controller { return c.view }

// Manager holds the draft chart and the pinned charts in pin order.
type Manager struct {
	ids    IDGenerator
	opts   viewport.Options
	draft  *Chart
	pinned []*Chart
}

func NewManager(ids IDGenerator, opts viewport.Options) *Manager {
	if ids == nil {
		ids = NewULIDGenerator()
	}
	return &Manager{ids: ids, opts: opts}
}

// SetDraft makes ds the in-progress chart with its viewport at full range.
// Series hidden on the previous draft stay hidden.
func (m *Manager) SetDraft(ds *ingest.Dataset) *Chart {
	var hidden visibility.Set
	if m.draft != nil {
		hidden = m.draft.series.Snapshot()
	}
	m.draft = newChart(NoInstance, ds, hidden, m.opts)
	return m.draft
}

func (m *Manager) ClearDraft() {
	m.draft = nil
}

// Draft returns the in-progress chart, or nil.
func (m *Manager) Draft() *Chart { return m.draft }

// Pin stores ds as a new chart with a copy of hidden.
func (m *Manager) Pin(ds *ingest.Dataset, hidden visibility.Set) ID {
	id := m.ids.NewID()
	m.pinned = append(m.pinned, newChart(id, ds, hidden, m.opts))
	return id
}

// PinDraft pins the in-progress chart and clears it.
func (m *Manager) PinDraft() (ID, bool) {
	if m.draft == nil {
		return NoInstance, false
	}
	id := m.Pin(m.draft.dataset, m.draft.series.Snapshot())
	m.draft = nil
	return id, true
}

// Remove drops the pinned chart id.
func (m *Manager) Remove(id ID) bool {
	for i, c := range m.pinned {
		if c.id == id {
			m.pinned = append(m.pinned[:i], m.pinned[i+1:]...)
			return true
		}
	}
	return false
}

// ToggleSeries flips series name on chart id, or on the draft for
// NoInstance. It reports whether a chart was addressed.
func (m *Manager) ToggleSeries(id ID, name string) bool {
	c, ok := m.Instance(id)
	if !ok {
		return false
	}
	c.series.Toggle(name)
	return true
}

// Instance looks up a pinned chart, or the draft for NoInstance.
func (m *Manager) Instance(id ID) (*Chart, bool) {
	if id == NoInstance {
		return m.draft, m.draft != nil
	}
	for _, c := range m.pinned {
		if c.id == id {
			return c, true
		}
	}
	return nil, false
}

// Instances returns the pinned charts in pin order.
func (m *Manager) Instances() []*Chart {
	out := make([]*Chart, len(m.pinned))
	copy(out, m.pinned)
	return out
}

// All returns the pinned charts followed by the draft, if any.
func (m *Manager) All() []*Chart {
	out := m.Instances()
	if m.draft != nil {
		out = append(out, m.draft)
	}
	return out
}

// Len is the number of pinned charts.
func (m *Manager) Len() int { return len(m.pinned) }
