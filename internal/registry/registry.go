// Package registry implements the in-memory task collection and its
// operations. Every mutating operation validates its input first, applies
// the change to a clone of the collection, persists the clone through the
// store, and commits only on success, so a failed operation leaves both the
// in-memory collection and the persisted document unchanged.
package registry

import (
	"strings"

	"tasktracker/internal/errors"
	"tasktracker/internal/logging"
	"tasktracker/internal/store"
	"tasktracker/internal/task"
)

// Registry enforces task lifecycle and id assignment over the collection
// loaded from a Store, writing through to it after every mutation.
type Registry struct {
	store *store.Store
	doc   *store.Document
	log   *logging.Logger
}

// Load builds a Registry from the store's current contents.
func Load(st *store.Store, log *logging.Logger) (*Registry, error) {
	if log == nil {
		log = logging.NopLogger()
	}
	doc, err := st.Load()
	if err != nil {
		return nil, err
	}
	return &Registry{
		store: st,
		doc:   doc,
		log:   log,
	}, nil
}

// Len returns the number of tasks in the collection.
func (r *Registry) Len() int {
	return len(r.doc.Tasks)
}

// Add creates a task with the given description and returns its id. The
// description must be non-empty after trimming surrounding whitespace. Ids
// are assigned strictly increasing and never reused after deletion.
func (r *Registry) Add(description string) (int, error) {
	description, err := validDescription(description)
	if err != nil {
		return 0, err
	}

	next := r.doc.Clone()
	id := next.NextID
	if id < next.MaxID()+1 {
		id = next.MaxID() + 1
	}
	next.Tasks = append(next.Tasks, task.New(id, description))
	next.NextID = id + 1

	if err := r.store.Save(next); err != nil {
		return 0, err
	}
	r.doc = next

	r.log.Info("added task", "task_id", id)
	return id, nil
}

// Update replaces the description of the task with the given id and records
// the mutation time.
func (r *Registry) Update(id int, description string) error {
	description, err := validDescription(description)
	if err != nil {
		return err
	}

	next := r.doc.Clone()
	t := find(next, id)
	if t == nil {
		return errors.NewNotFoundError("task", id)
	}
	t.SetDescription(description)

	if err := r.store.Save(next); err != nil {
		return err
	}
	r.doc = next

	r.log.Info("updated task", "task_id", id)
	return nil
}

// Delete removes the task with the given id entirely. Remaining ids are not
// renumbered.
func (r *Registry) Delete(id int) error {
	next := r.doc.Clone()
	idx := -1
	for i := range next.Tasks {
		if next.Tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return errors.NewNotFoundError("task", id)
	}
	next.Tasks = append(next.Tasks[:idx], next.Tasks[idx+1:]...)

	if err := r.store.Save(next); err != nil {
		return err
	}
	r.doc = next

	r.log.Info("deleted task", "task_id", id)
	return nil
}

// SetStatus sets the status of the task with the given id. The mutation time
// is recorded even when the new status equals the old one: a mark command is
// a mutation event. Transitions are unrestricted.
func (r *Registry) SetStatus(id int, status task.Status) error {
	if !status.IsValid() {
		return errors.NewValidationError("status must be one of: todo, in-progress, done").
			WithField("status").
			WithValue(string(status))
	}

	next := r.doc.Clone()
	t := find(next, id)
	if t == nil {
		return errors.NewNotFoundError("task", id)
	}
	t.SetStatus(status)

	if err := r.store.Save(next); err != nil {
		return err
	}
	r.doc = next

	r.log.Info("marked task", "task_id", id, "status", status.String())
	return nil
}

// List returns tasks in ascending id order. When filter is non-nil, only
// tasks with that status are included. List neither mutates nor persists.
func (r *Registry) List(filter *task.Status) []task.Task {
	result := make([]task.Task, 0, len(r.doc.Tasks))
	for i := range r.doc.Tasks {
		if filter != nil && r.doc.Tasks[i].Status != *filter {
			continue
		}
		t := r.doc.Tasks[i]
		if t.UpdatedAt != nil {
			ts := *t.UpdatedAt
			t.UpdatedAt = &ts
		}
		result = append(result, t)
	}
	return result
}

// Get returns a copy of the task with the given id.
func (r *Registry) Get(id int) (task.Task, error) {
	t := find(r.doc, id)
	if t == nil {
		return task.Task{}, errors.NewNotFoundError("task", id)
	}
	cp := *t
	if cp.UpdatedAt != nil {
		ts := *cp.UpdatedAt
		cp.UpdatedAt = &ts
	}
	return cp, nil
}

// find returns a pointer into doc's task slice, or nil if the id is absent.
func find(doc *store.Document, id int) *task.Task {
	for i := range doc.Tasks {
		if doc.Tasks[i].ID == id {
			return &doc.Tasks[i]
		}
	}
	return nil
}

// validDescription trims surrounding whitespace and rejects empty results.
func validDescription(description string) (string, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return "", errors.NewValidationError("description must not be empty").
			WithField("description")
	}
	return trimmed, nil
}
