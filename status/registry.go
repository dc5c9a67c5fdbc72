package status

import "sync/atomic"

// Metric keys written by the render loop
const (
	LoopCommands        = "loop.commands"         // commands applied
	LoopRejected        = "loop.rejected"         // fire-and-forget commands dropped by the store
	LoopQueries         = "loop.queries"          // GetNode answered
	LoopFrames          = "loop.frames"           // paint passes
	LoopPaintErrors     = "loop.paint_errors"     // failed paint passes
	LoopPaintMs         = "loop.paint_ms"         // smoothed paint duration
	LoopEvents          = "loop.events"           // events queued for the document
	LoopEventsCoalesced = "loop.events_coalesced" // frame events merged into a newer one
	LoopState           = "loop.state"            // engine state as an integer
	StoreNodes          = "store.nodes"
)

// Registry is the central metrics facade
// Components cache pointers during init; hot loops write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Snapshot is a point-in-time copy of every registered metric
type Snapshot struct {
	Ints   map[string]int64
	Floats map[string]float64
}

// Snapshot reads all metrics
// Individual values are atomic, the set as a whole is not
func (r *Registry) Snapshot() Snapshot {
	s := Snapshot{
		Ints:   make(map[string]int64, r.Ints.Count()),
		Floats: make(map[string]float64, r.Floats.Count()),
	}
	r.Ints.Range(func(k string, v *atomic.Int64) { s.Ints[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { s.Floats[k] = v.Get() })
	return s
}
