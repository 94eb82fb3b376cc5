package tasks

import (
	"sort"
	"sync"
)

// Store is the narrow persistence contract: the whole mapping in, the
// whole mapping out. Implementations live in internal/store.
type Store interface {
	Load() (map[string]Fields, error)
	Save(map[string]Fields) error
}

// Service runs every operation as a load-mutate-save cycle against the
// Store. A single mutex serializes those cycles, so concurrent requests
// within one process cannot lose each other's writes. Separate processes
// sharing the same backing file still race (last writer wins).
type Service struct {
	store Store
	mu    sync.Mutex
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns the stored mapping unchanged.
func (s *Service) List() (map[string]Fields, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load()
}

func (s *Service) Get(id string) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Load()
	if err != nil {
		return Task{}, err
	}
	f, ok := data[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	return Task{ID: id, Fields: f}, nil
}

func (s *Service) Create(t Task) error {
	if err := t.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Load()
	if err != nil {
		return err
	}
	if _, exists := data[t.ID]; exists {
		return ErrConflict
	}
	data[t.ID] = t.Fields
	return s.store.Save(data)
}

// Update overlays the fields present in the patch onto the stored
// field-set, re-injects the id and revalidates the merged task before
// persisting it. This is the one place updates are validated.
func (s *Service) Update(id string, patch TaskUpdate) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Load()
	if err != nil {
		return Task{}, err
	}
	existing, ok := data[id]
	if !ok {
		return Task{}, ErrNotFound
	}

	merged := Task{ID: id, Fields: patch.ApplyTo(existing)}
	if err := merged.Validate(); err != nil {
		return Task{}, err
	}

	data[id] = merged.Fields
	if err := s.store.Save(data); err != nil {
		return Task{}, err
	}
	return merged, nil
}

func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Load()
	if err != nil {
		return err
	}
	if _, ok := data[id]; !ok {
		return ErrNotFound
	}
	delete(data, id)
	return s.store.Save(data)
}

// ----------------------
//     SORT HELPER
// ----------------------

// Sorted returns all tasks ordered by one of the effort fields. A field
// missing from a stored record decodes to zero and sorts as zero.
func (s *Service) Sorted(field, order string) ([]View, error) {
	switch field {
	case "estimated_hours", "hours_spent", "progress":
	default:
		return nil, &ValidationError{Field: "sort_by", Message: "must be one of estimated_hours, hours_spent, progress"}
	}
	if order != "asc" && order != "desc" {
		return nil, &ValidationError{Field: "order", Message: "must be asc or desc"}
	}

	data, err := s.List()
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(data))
	for id, f := range data {
		views = append(views, Task{ID: id, Fields: f}.View())
	}

	key := func(v View) float64 {
		switch field {
		case "estimated_hours":
			return v.EstimatedHours
		case "hours_spent":
			return v.HoursSpent
		default:
			return v.Progress
		}
	}

	sort.Slice(views, func(i, j int) bool {
		a, b := key(views[i]), key(views[j])
		if a != b {
			if order == "desc" {
				return a > b
			}
			return a < b
		}
		return views[i].ID < views[j].ID
	})

	return views, nil
}
