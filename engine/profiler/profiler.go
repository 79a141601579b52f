//go:build profile

package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

const Enabled = true

// -------- public API --------

// Init must be called once (e.g., on app start) with a capacity (#events).
// Example: profiler.Init(1 << 16)
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.init(capacity)
}

// Start begins a scope and returns an end func to be deferred.
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	id := names.intern(name)
	start := time.Now().UnixNano()
	ring.push(event{at: start, frame: id, open: true})
	return func() {
		end := time.Now().UnixNano()
		if end < start {
			end = start
		}
		ring.push(event{at: end, frame: id})
	}
}

// Dump writes the recorded scopes as a speedscope file in dir and returns
// its path.
func Dump(dir string) (string, error) {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return "", errors.New("profiler: no events to dump")
	}
	path := filepath.Join(dir, "thicket.speedscope.json")
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("profiler: %w", err)
	}
	if err := writeSpeedscope(f, evs, names.snapshot()); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("profiler: %w", err)
	}
	return path, os.Rename(tmp, path)
}

// ---------- event ring ----------

type event struct {
	at    int64 // unix ns
	frame int
	open  bool
}

type eventRing struct {
	ready atomic.Bool
	size  uint64
	write atomic.Uint64
	evs   []event
}

func (r *eventRing) init(capacity int) {
	r.size = uint64(capacity)
	r.evs = make([]event, r.size)
	r.write.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.write.Add(1) - 1
	r.evs[i%r.size] = e
}

// snapshot keeps write order; the oldest events are lost on wrap.
func (r *eventRing) snapshot() []event {
	n := r.write.Load()
	if n == 0 {
		return nil
	}
	start := uint64(0)
	if n > r.size {
		start = n - r.size
	}
	out := make([]event, 0, n-start)
	for k := start; k < n; k++ {
		out = append(out, r.evs[k%r.size])
	}
	return out
}

var ring eventRing

// ---------- scope names ----------

type interner struct {
	mu    sync.Mutex
	list  []string
	index map[string]int
}

func (in *interner) intern(name string) int {
	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.index[name]; ok {
		return id
	}
	if in.index == nil {
		in.index = make(map[string]int)
	}
	id := len(in.list)
	in.index[name] = id
	in.list = append(in.list, name)
	return id
}

func (in *interner) snapshot() []string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return append([]string(nil), in.list...)
}

var names interner

// ---------- speedscope (evented profile) ----------

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"` // "evented"
	Name       string    `json:"name"`
	Unit       string    `json:"unit"` // "microseconds"
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since first event
	Frame int    `json:"frame"`
}

// speedscopeEvents converts ring events into balanced open/close pairs.
// Closes without a matching open are dropped; opens still pending at the
// end are closed at the last timestamp.
func speedscopeEvents(evs []event) (out []ssEvent, endUS int64) {
	base := evs[0].at
	stack := make([]int, 0, 64)
	lastUS := int64(0)
	for _, e := range evs {
		atUS := max((e.at-base)/1000, lastUS)
		if e.open {
			out = append(out, ssEvent{Type: "O", At: atUS, Frame: e.frame})
			stack = append(stack, e.frame)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.frame {
				continue
			}
			stack = stack[:len(stack)-1]
			out = append(out, ssEvent{Type: "C", At: atUS, Frame: e.frame})
		}
		lastUS = atUS
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: lastUS, Frame: stack[i]})
	}
	return out, lastUS
}

func writeSpeedscope(w io.Writer, evs []event, frameNames []string) error {
	events, endUS := speedscopeEvents(evs)
	if len(events) == 0 {
		return errors.New("profiler: no usable events after filtering")
	}
	frames := make([]ssFrame, len(frameNames))
	for i, n := range frameNames {
		frames[i] = ssFrame{Name: n}
	}
	doc := ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "thicket frames",
			Unit:     "microseconds",
			EndValue: endUS,
			Events:   events,
		}},
		Exporter: "thicket-profiler",
		Name:     "thicket capture",
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("profiler: encode: %w", err)
	}
	return nil
}
