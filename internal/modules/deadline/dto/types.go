package dto

import "time"

type AddInput struct {
	Title         string
	Author        string
	Format        string
	Flexibility   string
	TotalQuantity float64
	DueAt         time.Time
}

type LogProgressInput struct {
	DeadlineID   string
	Value        float64
	Baseline     bool
	TimeSpentMin float64
	At           time.Time
}

type SetStatusInput struct {
	DeadlineID string
	Status     string
}

type CalculationOutput struct {
	Known            bool
	Remaining        float64
	DaysLeft         int
	UnitsPerDay      float64
	Urgency          string
	UrgencyLabel     string
	RemainingDisplay string
	PaceDisplay      string
}

type DeadlineOutput struct {
	ID              string
	Title           string
	Author          string
	Format          string
	Flexibility     string
	TotalQuantity   float64
	DueAt           time.Time
	Status          string
	CurrentProgress float64
	Calculation     CalculationOutput
}

type ProgressEntryOutput struct {
	ID            string
	Value         float64
	IgnoreInCalcs bool
	TimeSpentMin  float64
	CreatedAt     time.Time
}

type StatusEntryOutput struct {
	ID        string
	Status    string
	CreatedAt time.Time
}

type DeadlineDetailOutput struct {
	DeadlineOutput
	Progress  []ProgressEntryOutput
	StatusLog []StatusEntryOutput
}
