package form

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type saveRecorder struct {
	calls []map[string]string
}

func (s *saveRecorder) save(ctx context.Context, values map[string]string) {
	s.calls = append(s.calls, values)
}

func entries(pairs ...string) []Entry {
	out := make([]Entry, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Entry{Name: pairs[i], Value: pairs[i+1]})
	}
	return out
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name       string
		values     map[string]string
		wantSaved  []map[string]string
		wantErrors []string
		wantState  []Entry
	}{
		{
			name:      "all fields filled",
			values:    map[string]string{"name": "Alice", "age": "30"},
			wantSaved: []map[string]string{{"name": "Alice", "age": "30"}},
			wantState: entries("name", "", "age", ""),
		},
		{
			name:       "first field blank",
			values:     map[string]string{"name": "", "age": "30"},
			wantErrors: []string{"name is required"},
			wantState:  entries("name", "", "age", "30"),
		},
		{
			name:       "all fields blank",
			values:     map[string]string{"name": "", "age": ""},
			wantErrors: []string{"name is required", "age is required"},
			wantState:  entries("name", "", "age", ""),
		},
		{
			name:       "whitespace only",
			values:     map[string]string{"name": "  \t", "age": "30"},
			wantErrors: []string{"name is required"},
			wantState:  entries("name", "  \t", "age", "30"),
		},
		{
			name:      "surrounding whitespace is kept",
			values:    map[string]string{"name": " Bob ", "age": "7"},
			wantSaved: []map[string]string{{"name": " Bob ", "age": "7"}},
			wantState: entries("name", "", "age", ""),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &saveRecorder{}
			f := New([]string{"name", "age"}, rec.save)
			for name, value := range tt.values {
				f.Set(name, value)
			}

			saved := f.Submit(context.Background())
			if want := len(tt.wantErrors) == 0; saved != want {
				t.Errorf("Submit() = %v, want %v", saved, want)
			}

			if diff := cmp.Diff(tt.wantSaved, rec.calls); diff != "" {
				t.Errorf("save calls mismatch (-want +got):\n%s", diff)
			}

			state := f.State()
			if diff := cmp.Diff(tt.wantErrors, state.Errors); diff != "" {
				t.Errorf("errors mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantState, state.Entries); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}

			wantStatus := StatusClean
			if len(tt.wantErrors) > 0 {
				wantStatus = StatusInvalid
			}
			if state.Status != wantStatus {
				t.Errorf("Status = %v, want %v", state.Status, wantStatus)
			}
		})
	}
}

func TestSubmitRevalidatesFromScratch(t *testing.T) {
	rec := &saveRecorder{}
	f := New([]string{"name", "age"}, rec.save)

	f.Set("age", "30")
	f.Submit(context.Background())

	f.Set("name", "Alice")
	f.Set("age", "")
	if f.Submit(context.Background()) {
		t.Fatal("Submit() = true with a blank age")
	}
	if diff := cmp.Diff([]string{"age is required"}, f.State().Errors); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}

	f.Set("age", "31")
	if !f.Submit(context.Background()) {
		t.Fatal("Submit() = false with every field filled")
	}
	if got := f.State(); got.Status != StatusClean || len(got.Errors) != 0 {
		t.Errorf("State() after save = %+v, want clean", got)
	}
	if len(rec.calls) != 1 {
		t.Errorf("save called %d times, want 1", len(rec.calls))
	}
}

func TestClearAfterFailedSubmit(t *testing.T) {
	rec := &saveRecorder{}
	f := New([]string{"name", "age"}, rec.save)
	f.Set("age", "30")
	f.Submit(context.Background())

	f.Handle().Clear()

	want := State{Status: StatusClean, Entries: entries("name", "", "age", "")}
	if diff := cmp.Diff(want, f.State()); diff != "" {
		t.Errorf("State() mismatch (-want +got):\n%s", diff)
	}
	if len(rec.calls) != 0 {
		t.Errorf("Clear() invoked save %d times", len(rec.calls))
	}
}

func TestClearIsIdempotent(t *testing.T) {
	once := New([]string{"name", "age"}, nil)
	once.Set("name", "Alice")
	once.Handle().Clear()

	twice := New([]string{"name", "age"}, nil)
	twice.Set("name", "Alice")
	twice.Handle().Clear()
	twice.Handle().Clear()

	if diff := cmp.Diff(once.State(), twice.State()); diff != "" {
		t.Errorf("Clear() twice differs from once (-once +twice):\n%s", diff)
	}
}

func TestClearNeverSaves(t *testing.T) {
	rec := &saveRecorder{}
	f := New([]string{"name"}, rec.save)
	f.Set("name", "Alice")
	f.Handle().Clear()
	f.Handle().Clear()

	if len(rec.calls) != 0 {
		t.Errorf("save called %d times, want 0", len(rec.calls))
	}
}

func TestSaveCallbackMayUseHandle(t *testing.T) {
	var f *Form
	f = New([]string{"name"}, func(ctx context.Context, values map[string]string) {
		f.Handle().Clear()
	})
	f.Set("name", "Alice")

	if !f.Submit(context.Background()) {
		t.Fatal("Submit() = false")
	}
}

func TestDuplicateNames(t *testing.T) {
	rec := &saveRecorder{}
	f := New([]string{"tag", "tag"}, rec.save)

	f.Submit(context.Background())
	if diff := cmp.Diff([]string{"tag is required", "tag is required"}, f.State().Errors); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}

	f.Set("tag", "first")
	f.Submit(context.Background())
	if diff := cmp.Diff([]string{"tag is required"}, f.State().Errors); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}

	f.Set("tag", "first", "second")
	if !f.Submit(context.Background()) {
		t.Fatal("Submit() = false with both occurrences filled")
	}
	if diff := cmp.Diff([]map[string]string{{"tag": "second"}}, rec.calls); diff != "" {
		t.Errorf("save calls mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	got := Validate(entries("a", "x", "b", " ", "c", ""))
	if diff := cmp.Diff([]string{"b is required", "c is required"}, got); diff != "" {
		t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
	}
	if got := Validate(entries("a", "x")); got != nil {
		t.Errorf("Validate() = %v, want nil", got)
	}
}

func TestStatusString(t *testing.T) {
	if StatusClean.String() != "clean" || StatusInvalid.String() != "invalid" {
		t.Errorf("unexpected status names %q, %q", StatusClean, StatusInvalid)
	}
	if got := Status(9).String(); got != "Status(9)" {
		t.Errorf("Status(9).String() = %q", got)
	}
}
