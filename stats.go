package glcontext

import "fmt"

// Kind identifies a category of native resource tracked by Stats.
type Kind uint8

// Resource categories.
const (
	KindTexture Kind = iota
	KindFramebuffer
	KindBuffer
	KindProgram
	KindVertexArray
	KindGeometry
	KindComputeShader
	KindQuery

	kindCount
)

// String returns the category name.
func (k Kind) String() string {
	switch k {
	case KindTexture:
		return "texture"
	case KindFramebuffer:
		return "framebuffer"
	case KindBuffer:
		return "buffer"
	case KindProgram:
		return "program"
	case KindVertexArray:
		return "vertex_array"
	case KindGeometry:
		return "geometry"
	case KindComputeShader:
		return "compute_shader"
	case KindQuery:
		return "query"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// DefaultWarnThreshold is the allocation count interval at which Stats
// logs a debug message for a category.
const DefaultWarnThreshold = 1000

// Stats counts created and freed native resources per category.
//
// Both counters increase monotonically; the current live count for a
// category is Created minus Freed and is never negative under correct
// usage. Counting is advisory: crossing the warn threshold only emits a
// debug log and never affects control flow.
//
// Stats shares the Context's single-threaded model and is not safe for
// concurrent use.
type Stats struct {
	warnThreshold uint64
	counters      [kindCount]struct{ created, freed uint64 }
}

func newStats(warnThreshold int) *Stats {
	if warnThreshold <= 0 {
		warnThreshold = DefaultWarnThreshold
	}
	return &Stats{warnThreshold: uint64(warnThreshold)}
}

// Incr records a created resource in the given category.
func (s *Stats) Incr(k Kind) {
	c := &s.counters[k]
	c.created++
	if c.created%s.warnThreshold == 0 {
		Logger().Debug("resource allocations passed threshold",
			"kind", k.String(),
			"threshold", s.warnThreshold,
			"created", c.created,
			"freed", c.freed,
			"active", c.created-c.freed,
		)
	}
}

// Decr records a freed resource in the given category.
func (s *Stats) Decr(k Kind) {
	s.counters[k].freed++
}

// Created returns the total number of resources created in the category.
func (s *Stats) Created(k Kind) uint64 {
	return s.counters[k].created
}

// Freed returns the total number of resources freed in the category.
func (s *Stats) Freed(k Kind) uint64 {
	return s.counters[k].freed
}

// Live returns the current number of live resources in the category.
func (s *Stats) Live(k Kind) int64 {
	c := s.counters[k]
	return int64(c.created) - int64(c.freed)
}

// String returns a short human-readable summary of non-empty categories.
func (s *Stats) String() string {
	out := "Stats["
	first := true
	for k := Kind(0); k < kindCount; k++ {
		c := s.counters[k]
		if c.created == 0 && c.freed == 0 {
			continue
		}
		if !first {
			out += " "
		}
		out += fmt.Sprintf("%s=%d/%d", k, c.created, c.freed)
		first = false
	}
	return out + "]"
}
