package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type Format string

const (
	FormatPhysical Format = "physical"
	FormatEBook    Format = "eBook"
	FormatAudio    Format = "audio"
)

type Flexibility string

const (
	FlexibilityFlexible Flexibility = "flexible"
	FlexibilityStrict   Flexibility = "strict"
)

type Status string

const (
	StatusPending      Status = "pending"
	StatusReading      Status = "reading"
	StatusToReview     Status = "to_review"
	StatusComplete     Status = "complete"
	StatusDidNotFinish Status = "did_not_finish"
)

// Deadline is a tracked book with a target quantity and a due date, plus its
// two append-only logs. The logs are kept sorted by CreatedAt ascending; all
// derived values re-sort defensively rather than trusting input order.
type Deadline struct {
	ID            string
	Title         string
	Author        string
	Format        Format
	TotalQuantity float64
	DueAt         time.Time
	Flexibility   Flexibility
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Progress      []ProgressEntry
	StatusLog     []StatusEntry
}

// ProgressEntry is one logged cumulative-progress update. Value is the total
// read so far, not a delta. IgnoreInCalcs marks a baseline entry representing
// progress made before tracking started; such entries are never treated as
// same-day reading activity regardless of their timestamp.
type ProgressEntry struct {
	ID            string
	DeadlineID    string
	Value         float64
	IgnoreInCalcs bool
	TimeSpentMin  float64
	CreatedAt     time.Time
}

type StatusEntry struct {
	ID         string
	DeadlineID string
	Status     Status
	CreatedAt  time.Time
}

func (f Format) Validate() error {
	switch f {
	case FormatPhysical, FormatEBook, FormatAudio:
		return nil
	default:
		return fmt.Errorf("unsupported format %q", string(f))
	}
}

func (fl Flexibility) Validate() error {
	switch fl {
	case FlexibilityFlexible, FlexibilityStrict:
		return nil
	default:
		return fmt.Errorf("unsupported flexibility %q", string(fl))
	}
}

func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusReading, StatusToReview, StatusComplete, StatusDidNotFinish:
		return nil
	default:
		return fmt.Errorf("unsupported status %q", string(s))
	}
}

// Archived reports whether the status means the book is no longer being
// actively worked.
func (s Status) Archived() bool {
	return s == StatusComplete || s == StatusDidNotFinish
}

func (d Deadline) Validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if err := d.Format.Validate(); err != nil {
		return err
	}
	if err := d.Flexibility.Validate(); err != nil {
		return err
	}
	if d.TotalQuantity < 0 {
		return fmt.Errorf("total quantity must not be negative")
	}
	return nil
}

// SortedProgress returns the progress log ordered by CreatedAt ascending,
// preserving input order for equal timestamps.
func (d Deadline) SortedProgress() []ProgressEntry {
	out := make([]ProgressEntry, len(d.Progress))
	copy(out, d.Progress)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// CurrentProgress is the value of the progress entry with the greatest
// CreatedAt, or 0 when nothing has been logged.
func (d Deadline) CurrentProgress() float64 {
	entries := d.SortedProgress()
	if len(entries) == 0 {
		return 0
	}
	return entries[len(entries)-1].Value
}

// LatestStatus resolves the current status from the status log. An empty log
// means the deadline is pending.
func (d Deadline) LatestStatus() Status {
	if len(d.StatusLog) == 0 {
		return StatusPending
	}
	entries := make([]StatusEntry, len(d.StatusLog))
	copy(entries, d.StatusLog)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAt.Before(entries[j].CreatedAt)
	})
	return entries[len(entries)-1].Status
}

func (d Deadline) Archived() bool {
	return d.LatestStatus().Archived()
}
