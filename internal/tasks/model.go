package tasks

import (
	"encoding/json"
	"math"
)

// ----------------------
//        ENUMS
// ----------------------

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (p *Priority) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v := Priority(s)
	if !v.Valid() {
		return &ValidationError{Field: "priority", Message: "must be one of low, medium, high"}
	}
	*p = v
	return nil
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	v := Status(raw)
	if !v.Valid() {
		return &ValidationError{Field: "status", Message: "must be one of pending, in_progress, completed"}
	}
	*s = v
	return nil
}

// ----------------------
//     TASK ENTITY
// ----------------------

// Fields is the stored value: everything a task carries except its id,
// which lives as the key of the on-disk mapping.
type Fields struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Priority       Priority `json:"priority"`
	Status         Status   `json:"status"`
	EstimatedHours float64  `json:"estimated_hours"`
	HoursSpent     float64  `json:"hours_spent"`
}

// Progress is the share of the estimate already spent, in percent,
// rounded to 2 decimals. A zero estimate yields 0.0.
func (f Fields) Progress() float64 {
	if f.EstimatedHours == 0 {
		return 0.0
	}
	return math.Round(f.HoursSpent/f.EstimatedHours*100*100) / 100
}

// Verdict buckets a progress percentage into a human-readable label.
func Verdict(progress float64) string {
	switch {
	case progress == 100:
		return "Task Completed"
	case progress >= 70:
		return "Almost Done"
	case progress >= 30:
		return "In Progress"
	default:
		return "Just Started"
	}
}

type Task struct {
	ID string `json:"id"`
	Fields
}

func (t Task) Validate() error {
	if t.ID == "" {
		return &ValidationError{Field: "id", Message: "is required"}
	}
	if t.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if t.Description == "" {
		return &ValidationError{Field: "description", Message: "is required"}
	}
	if !t.Fields.Priority.Valid() {
		return &ValidationError{Field: "priority", Message: "must be one of low, medium, high"}
	}
	if !t.Fields.Status.Valid() {
		return &ValidationError{Field: "status", Message: "must be one of pending, in_progress, completed"}
	}
	if t.EstimatedHours <= 0 {
		return &ValidationError{Field: "estimated_hours", Message: "must be greater than 0"}
	}
	if t.HoursSpent < 0 {
		return &ValidationError{Field: "hours_spent", Message: "must not be negative"}
	}
	return nil
}

// View is the API shape of a single task: stored fields plus the
// derived progress and verdict.
type View struct {
	Task
	Progress float64 `json:"progress"`
	Verdict  string  `json:"verdict"`
}

func (t Task) View() View {
	p := t.Fields.Progress()
	return View{
		Task:     t,
		Progress: p,
		Verdict:  Verdict(p),
	}
}

// ----------------------
//    PARTIAL UPDATE
// ----------------------

// TaskUpdate is a patch document. Nil means "leave the stored value
// alone"; only fields the caller actually sent are applied.
type TaskUpdate struct {
	Title          *string   `json:"title"`
	Description    *string   `json:"description"`
	Priority       *Priority `json:"priority"`
	Status         *Status   `json:"status"`
	EstimatedHours *float64  `json:"estimated_hours"`
	HoursSpent     *float64  `json:"hours_spent"`
}

func (u TaskUpdate) ApplyTo(f Fields) Fields {
	if u.Title != nil {
		f.Title = *u.Title
	}
	if u.Description != nil {
		f.Description = *u.Description
	}
	if u.Priority != nil {
		f.Priority = *u.Priority
	}
	if u.Status != nil {
		f.Status = *u.Status
	}
	if u.EstimatedHours != nil {
		f.EstimatedHours = *u.EstimatedHours
	}
	if u.HoursSpent != nil {
		f.HoursSpent = *u.HoursSpent
	}
	return f
}
