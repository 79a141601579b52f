package ui

import "math"

type valueKind uint8

const (
	kindUint valueKind = iota
	kindFloat
)

// StateValue is the single slot kept per ID: an unsigned integer or a float.
// Folded flags and selection indices use the integer form.
type StateValue struct {
	kind valueKind
	bits uint64

	touched uint64 // frame of the last lookup
}

func Uint(v uint32) StateValue   { return StateValue{kind: kindUint, bits: uint64(v)} }
func Float(v float32) StateValue { return StateValue{kind: kindFloat, bits: uint64(math.Float32bits(v))} }

func Bool(v bool) StateValue {
	if v {
		return Uint(1)
	}
	return Uint(0)
}

// Uint returns the integer form; a float slot is truncated and clamped to
// [0, MaxUint32]. NaN reads as 0.
func (s *StateValue) Uint() uint32 {
	if s.kind != kindFloat {
		return uint32(s.bits)
	}
	f := math.Float32frombits(uint32(s.bits))
	switch {
	case !(f > 0):
		return 0
	case f >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(f)
}

// Float returns the float form; an integer slot is converted.
func (s *StateValue) Float() float32 {
	if s.kind == kindUint {
		return float32(uint32(s.bits))
	}
	return math.Float32frombits(uint32(s.bits))
}

func (s *StateValue) Bool() bool { return s.Uint() != 0 }

func (s *StateValue) SetUint(v uint32) {
	s.kind = kindUint
	s.bits = uint64(v)
}

func (s *StateValue) SetFloat(v float32) {
	s.kind = kindFloat
	s.bits = uint64(math.Float32bits(v))
}

func (s *StateValue) SetBool(v bool) {
	if v {
		s.SetUint(1)
	} else {
		s.SetUint(0)
	}
}

// Storage maps IDs to persistent widget state. It is owned by the UI and
// outlives frames; entries are never removed unless Sweep is called.
type Storage struct {
	slots map[ID]*StateValue
	frame uint64
}

func NewStorage() *Storage {
	return &Storage{slots: make(map[ID]*StateValue, 256)}
}

// GetOrInsert returns the slot for id, creating it with def when absent.
// The returned pointer stays valid until the entry is swept.
func (s *Storage) GetOrInsert(id ID, def StateValue) *StateValue {
	v, ok := s.slots[id]
	if !ok {
		v = &StateValue{kind: def.kind, bits: def.bits}
		s.slots[id] = v
	}
	v.touched = s.frame
	return v
}

// Lookup returns the slot for id without creating it.
func (s *Storage) Lookup(id ID) (*StateValue, bool) {
	v, ok := s.slots[id]
	return v, ok
}

func (s *Storage) Len() int { return len(s.slots) }

// NextFrame advances the frame stamp used by Sweep.
func (s *Storage) NextFrame() { s.frame++ }

// Sweep drops entries that were not looked up during the last maxIdle frames.
// It returns the number of entries removed.
func (s *Storage) Sweep(maxIdle uint64) int {
	n := 0
	for id, v := range s.slots {
		if s.frame-v.touched > maxIdle {
			delete(s.slots, id)
			n++
		}
	}
	return n
}
