package ui

import (
	"math"
	"testing"
)

func TestStorageGetOrInsert(t *testing.T) {
	s := NewStorage()
	a := HashID("a")
	b := HashID("b")

	if got := s.GetOrInsert(a, Uint(7)).Uint(); got != 7 {
		t.Fatalf("first GetOrInsert = %d, want default 7", got)
	}
	if got := s.GetOrInsert(a, Uint(99)).Uint(); got != 7 {
		t.Errorf("second GetOrInsert = %d, want 7 (default ignored)", got)
	}

	s.GetOrInsert(a, Uint(0)).SetUint(3)
	if got := s.GetOrInsert(b, Uint(1)).Uint(); got != 1 {
		t.Errorf("GetOrInsert(b) = %d, want 1 (no aliasing with a)", got)
	}
	if got := s.GetOrInsert(a, Uint(0)).Uint(); got != 3 {
		t.Errorf("GetOrInsert(a) = %d, want 3", got)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestStateValueForms(t *testing.T) {
	v := Float(2.5)
	if v.Float() != 2.5 || v.Uint() != 2 {
		t.Errorf("Float(2.5) = (%v, %v), want (2.5, 2)", v.Float(), v.Uint())
	}
	v.SetBool(true)
	if !v.Bool() || v.Uint() != 1 {
		t.Errorf("SetBool(true) = (%v, %v), want (true, 1)", v.Bool(), v.Uint())
	}
	if b := Bool(false); b.Bool() {
		t.Error("Bool(false).Bool() = true")
	}
}

func TestStorageSweep(t *testing.T) {
	s := NewStorage()
	stale := HashID("stale")
	fresh := HashID("fresh")
	s.GetOrInsert(stale, Uint(1))
	s.GetOrInsert(fresh, Uint(1))

	for i := 0; i < 3; i++ {
		s.NextFrame()
		s.GetOrInsert(fresh, Uint(0))
	}
	if n := s.Sweep(2); n != 1 {
		t.Errorf("Sweep(2) removed %d, want 1", n)
	}
	if _, ok := s.Lookup(stale); ok {
		t.Error("stale entry survived Sweep")
	}
	if _, ok := s.Lookup(fresh); !ok {
		t.Error("fresh entry removed by Sweep")
	}
}

func TestIDWith(t *testing.T) {
	root := HashID("window")
	if root.With("a") == root.With("b") {
		t.Error("With produced equal IDs for different names")
	}
	if root.With("a") != root.With("a") {
		t.Error("With is not stable")
	}
	if HashID("other").With("a") == root.With("a") {
		t.Error("With ignores the parent scope")
	}
}

func TestStateValueFloatToUintClamps(t *testing.T) {
	tests := []struct {
		in   float32
		want uint32
	}{
		{7.9, 7},
		{0, 0},
		{-3, 0},
		{float32(math.Inf(-1)), 0},
		{float32(math.NaN()), 0},
		{5e9, math.MaxUint32},
		{float32(math.Inf(1)), math.MaxUint32},
	}
	for _, tt := range tests {
		v := Float(tt.in)
		if got := v.Uint(); got != tt.want {
			t.Errorf("Float(%v).Uint() = %d, want %d", tt.in, got, tt.want)
		}
	}
}
