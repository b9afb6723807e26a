// Package store owns the durable representation of the task collection: a
// single JSON document read in full on load and replaced atomically on save.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"tasktracker/internal/errors"
	"tasktracker/internal/logging"
	"tasktracker/internal/task"
)

// Document is the serializable representation of the task collection.
// NextID carries the id counter across deletions so ids are never reused,
// even when the highest id is deleted.
type Document struct {
	NextID int         `json:"next_id"`
	Tasks  []task.Task `json:"tasks"`
}

// NewDocument returns an empty document, as produced by a first run.
func NewDocument() *Document {
	return &Document{
		NextID: 1,
		Tasks:  []task.Task{},
	}
}

// Clone returns a deep copy of the document. Mutations are applied to a
// clone and committed only after a successful save, so a failed operation
// leaves the in-memory collection untouched.
func (d *Document) Clone() *Document {
	tasks := make([]task.Task, len(d.Tasks))
	copy(tasks, d.Tasks)
	for i := range tasks {
		if tasks[i].UpdatedAt != nil {
			ts := *tasks[i].UpdatedAt
			tasks[i].UpdatedAt = &ts
		}
	}
	return &Document{
		NextID: d.NextID,
		Tasks:  tasks,
	}
}

// MaxID returns the highest task id in the document, or 0 when empty.
func (d *Document) MaxID() int {
	max := 0
	for i := range d.Tasks {
		if d.Tasks[i].ID > max {
			max = d.Tasks[i].ID
		}
	}
	return max
}

// Store performs durable load/save of the task collection against a single
// file path. The path is injected at construction so tests can point the
// store at temporary locations.
type Store struct {
	path string
	log  *logging.Logger
}

// New creates a Store persisting to the given path. A nil logger disables
// logging.
func New(path string, log *logging.Logger) *Store {
	if log == nil {
		log = logging.NopLogger()
	}
	return &Store{path: path, log: log}
}

// Path returns the file path the store persists to.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted document if it exists and parses it into the
// in-memory collection. A missing file is a first run and yields an empty
// document, not an error. A file that exists but cannot be parsed or
// validated fails with ErrCorruptData. Tasks are returned in ascending id
// order.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debug("no task file yet, starting empty", "path", s.path)
			return NewDocument(), nil
		}
		return nil, fmt.Errorf("read task file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewCorruptDataError(s.path, err)
	}
	if doc.Tasks == nil {
		doc.Tasks = []task.Task{}
	}

	if err := validate(&doc); err != nil {
		return nil, errors.NewCorruptDataError(s.path, err)
	}

	sort.Slice(doc.Tasks, func(i, j int) bool {
		return doc.Tasks[i].ID < doc.Tasks[j].ID
	})

	// Documents written by older versions (or by hand) may lack next_id;
	// clamp it so id assignment still starts above every existing id.
	if doc.NextID < doc.MaxID()+1 {
		doc.NextID = doc.MaxID() + 1
	}

	s.log.Debug("loaded tasks", "path", s.path, "count", len(doc.Tasks))
	return &doc, nil
}

// Save serializes the full document and replaces the persisted file. The
// write is atomic: data goes to a temporary file first, then is renamed into
// place, so an interrupted save never leaves a truncated document visible to
// a subsequent Load.
func (s *Store) Save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}

	s.log.Debug("saved tasks", "path", s.path, "count", len(doc.Tasks))
	return nil
}

// validate checks the parsed document against the schema: every task must be
// individually valid and ids must be unique.
func validate(doc *Document) error {
	seen := make(map[int]struct{}, len(doc.Tasks))
	for i := range doc.Tasks {
		t := &doc.Tasks[i]
		if err := t.Validate(); err != nil {
			return err
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("duplicate task id %d", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
