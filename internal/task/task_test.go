package task

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"tasktracker/internal/errors"
)

func TestNew(t *testing.T) {
	before := time.Now()
	tk := New(1, "Finish the project")

	if tk.ID != 1 {
		t.Errorf("ID = %d, want 1", tk.ID)
	}
	if tk.Description != "Finish the project" {
		t.Errorf("Description = %q, want %q", tk.Description, "Finish the project")
	}
	if tk.Status != StatusTodo {
		t.Errorf("Status = %s, want todo", tk.Status)
	}
	if tk.UpdatedAt != nil {
		t.Error("UpdatedAt should be nil at creation")
	}
	if tk.CreatedAt.After(time.Now()) || tk.CreatedAt.Before(before.Truncate(time.Second)) {
		t.Errorf("CreatedAt = %v, not close to now", tk.CreatedAt)
	}
}

func TestSetDescription_TouchesUpdatedAt(t *testing.T) {
	tk := New(1, "Old")
	tk.SetDescription("New")

	if tk.Description != "New" {
		t.Errorf("Description = %q, want %q", tk.Description, "New")
	}
	if tk.UpdatedAt == nil {
		t.Fatal("UpdatedAt should be set after mutation")
	}
	if tk.UpdatedAt.Before(tk.CreatedAt.Time) {
		t.Error("UpdatedAt should not precede CreatedAt")
	}
}

func TestSetStatus_TouchesUpdatedAt(t *testing.T) {
	tk := New(1, "Task")
	tk.SetStatus(StatusInProgress)

	if tk.Status != StatusInProgress {
		t.Errorf("Status = %s, want in-progress", tk.Status)
	}
	if tk.UpdatedAt == nil {
		t.Fatal("UpdatedAt should be set after mutation")
	}
}

func TestSetStatus_SameStatusStillTouches(t *testing.T) {
	tk := New(1, "Task")
	tk.SetStatus(StatusTodo)

	if tk.UpdatedAt == nil {
		t.Error("marking with the current status should still set UpdatedAt")
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range Statuses() {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, raw := range []string{"", "in progress", "doing", "DONE", "completed"} {
		if Status(raw).IsValid() {
			t.Errorf("%q should not be valid", raw)
		}
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"todo", StatusTodo},
		{"in-progress", StatusInProgress},
		{"done", StatusDone},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.raw)
		if err != nil {
			t.Errorf("ParseStatus(%q): %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("ParseStatus(%q) = %s, want %s", tt.raw, got, tt.want)
		}
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	_, err := ParseStatus("finished")
	if err == nil {
		t.Fatal("ParseStatus with unknown status should fail")
	}
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("error should match ErrInvalidInput, got %v", err)
	}
}

func TestTaskJSON_NullUpdatedAt(t *testing.T) {
	tk := New(1, "Task")
	data, err := json.Marshal(tk)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"updated_at": null`) && !strings.Contains(string(data), `"updated_at":null`) {
		t.Errorf("never-updated task should serialize updated_at as null, got %s", data)
	}
}

func TestTaskJSON_RoundTrip(t *testing.T) {
	tk := New(7, "Round trip")
	tk.SetStatus(StatusDone)

	data, err := json.Marshal(tk)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored Task
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if restored.ID != tk.ID || restored.Description != tk.Description || restored.Status != tk.Status {
		t.Errorf("round trip mismatch: %+v vs %+v", restored, tk)
	}
	if !restored.CreatedAt.Equal(tk.CreatedAt) {
		t.Errorf("CreatedAt mismatch: %v vs %v", restored.CreatedAt, tk.CreatedAt)
	}
	if restored.UpdatedAt == nil || !restored.UpdatedAt.Equal(*tk.UpdatedAt) {
		t.Errorf("UpdatedAt mismatch: %v vs %v", restored.UpdatedAt, tk.UpdatedAt)
	}
}

func TestValidate(t *testing.T) {
	valid := New(1, "ok")
	if err := valid.Validate(); err != nil {
		t.Errorf("valid task should validate: %v", err)
	}

	badID := New(0, "bad id")
	if err := badID.Validate(); err == nil {
		t.Error("non-positive id should fail validation")
	}

	badStatus := New(1, "bad status")
	badStatus.Status = "doing"
	if err := badStatus.Validate(); err == nil {
		t.Error("unrecognized status should fail validation")
	}

	early := Timestamp{valid.CreatedAt.Add(-time.Hour)}
	backwards := New(1, "time travel")
	backwards.UpdatedAt = &early
	if err := backwards.Validate(); err == nil {
		t.Error("updated_at before created_at should fail validation")
	}
}
