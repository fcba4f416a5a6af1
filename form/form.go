// Package form implements a validating form: every field must be non-blank,
// a successful submit hands the values to a save callback and empties the
// fields, and the owner can reset the form at any time through a Handle.
//
// Form is the transport-independent state machine. Component binds it to
// HTMX as an hxui component.
package form

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// Status is the validation state of a form.
type Status int

const (
	// StatusClean means no errors are shown.
	StatusClean Status = iota
	// StatusInvalid means the last submit found blank fields.
	StatusInvalid
)

func (s Status) String() string {
	switch s {
	case StatusClean:
		return "clean"
	case StatusInvalid:
		return "invalid"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Entry is a named field value. Entries are kept in document order.
type Entry struct {
	Name  string
	Value string
}

// SaveFunc receives the field values of a valid submission, keyed by field
// name. When a name repeats, the last value wins.
type SaveFunc func(ctx context.Context, values map[string]string)

// Handle is the reset capability handed to the owner of a Form.
type Handle interface {
	// Clear empties every field and every error. It never saves.
	Clear()
}

// State is a snapshot of a form.
type State struct {
	Status  Status
	Entries []Entry
	Errors  []string
}

// Values returns the entry values keyed by name, last occurrence winning.
func (s State) Values() map[string]string {
	return valuesOf(s.Entries)
}

// Form holds field values and validation errors behind a mutex.
type Form struct {
	mu      sync.Mutex
	entries []Entry
	errors  []string
	onSave  SaveFunc
}

// New creates a form with one empty field per name, in order. A name may
// appear more than once.
func New(names []string, onSave SaveFunc) *Form {
	entries := make([]Entry, len(names))
	for i, name := range names {
		entries[i] = Entry{Name: name}
	}
	return &Form{
		entries: entries,
		onSave:  onSave,
	}
}

// Set assigns values to the fields called name, in order: the first value
// to the first such field and so on. Fields left without a value become
// empty, as a browser omitting them would imply.
func (f *Form) Set(name string, values ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := 0
	for idx := range f.entries {
		if f.entries[idx].Name != name {
			continue
		}
		if i < len(values) {
			f.entries[idx].Value = values[i]
		} else {
			f.entries[idx].Value = ""
		}
		i++
	}
}

// Submit validates the current values from scratch.
//
// With blank fields it replaces the errors with one message per blank field
// and returns false; values are kept and nothing is saved. Otherwise it
// clears the errors, calls the save callback with the values, empties every
// field and returns true.
func (f *Form) Submit(ctx context.Context) bool {
	f.mu.Lock()
	entries := append([]Entry(nil), f.entries...)
	errs := Validate(entries)
	if len(errs) > 0 {
		f.errors = errs
		f.mu.Unlock()

		slog.DebugContext(ctx, "form submission rejected", slog.Any("errors", errs))
		return false
	}
	f.errors = nil
	f.mu.Unlock()

	// The callback runs unlocked so it may use the form's Handle.
	if f.onSave != nil {
		f.onSave(ctx, valuesOf(entries))
	}

	f.mu.Lock()
	f.reset()
	f.mu.Unlock()

	slog.DebugContext(ctx, "form submission saved", slog.Int("fields", len(entries)))
	return true
}

// State returns a snapshot of the form.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := State{
		Status:  StatusClean,
		Entries: append([]Entry(nil), f.entries...),
	}
	if len(f.errors) > 0 {
		state.Status = StatusInvalid
		state.Errors = append([]string(nil), f.errors...)
	}
	return state
}

// Handle returns the reset capability of f.
func (f *Form) Handle() Handle {
	return resetHandle{form: f}
}

// reset must be called with mu held.
func (f *Form) reset() {
	for i := range f.entries {
		f.entries[i].Value = ""
	}
	f.errors = nil
}

type resetHandle struct {
	form *Form
}

func (h resetHandle) Clear() {
	h.form.mu.Lock()
	defer h.form.mu.Unlock()
	h.form.reset()
}

// Validate returns one RequiredMessage per entry whose value is blank after
// trimming, in entry order. Repeated names yield one message per occurrence.
func Validate(entries []Entry) []string {
	var errs []string
	for _, e := range entries {
		if strings.TrimSpace(e.Value) == "" {
			errs = append(errs, RequiredMessage(e.Name))
		}
	}
	return errs
}

// RequiredMessage is the error shown for a blank field.
func RequiredMessage(name string) string {
	return name + " is required"
}

func valuesOf(entries []Entry) map[string]string {
	values := make(map[string]string, len(entries))
	for _, e := range entries {
		values[e.Name] = e.Value
	}
	return values
}
