package logger

import "sync"

// Entry is one captured log line.
type Entry struct {
	Level   string
	Message string
	Err     error
	Fields  map[string]string
}

// Recorder is an in-memory Logger used by tests to assert on emitted lines.
type Recorder struct {
	mu      *sync.Mutex
	entries *[]Entry
	fields  map[string]string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{mu: &sync.Mutex{}, entries: &[]Entry{}}
}

// Info records msg at info level.
func (r *Recorder) Info(msg string) {
	r.add("info", msg, nil)
}

// Warn records msg at warn level.
func (r *Recorder) Warn(msg string) {
	r.add("warn", msg, nil)
}

// Error records msg and err at error level.
func (r *Recorder) Error(msg string, err error) {
	r.add("error", msg, err)
}

// With shares the entry buffer with the parent so children are visible to it.
func (r *Recorder) With(key, value string) Logger {
	fields := make(map[string]string, len(r.fields)+1)
	for k, v := range r.fields {
		fields[k] = v
	}
	fields[key] = value
	return &Recorder{mu: r.mu, entries: r.entries, fields: fields}
}

// Entries returns a copy of everything logged so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(*r.entries))
	copy(out, *r.entries)
	return out
}

// Messages returns the message text of every entry, in order.
func (r *Recorder) Messages() []string {
	entries := r.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}

// Reset drops captured entries.
func (r *Recorder) Reset() {
	r.mu.Lock()
	*r.entries = (*r.entries)[:0]
	r.mu.Unlock()
}

func (r *Recorder) add(level, msg string, err error) {
	r.mu.Lock()
	*r.entries = append(*r.entries, Entry{Level: level, Message: msg, Err: err, Fields: r.fields})
	r.mu.Unlock()
}
