package dto

import "time"

type TotalsOutput struct {
	Total          float64
	Current        float64
	Display        string
	CurrentDisplay string
}

type RowOutput struct {
	ID               string
	Title            string
	Format           string
	Status           string
	DueAt            time.Time
	CurrentProgress  float64
	TotalQuantity    float64
	Known            bool
	DaysLeft         int
	UnitsPerDay      float64
	Urgency          string
	UrgencyLabel     string
	PaceDisplay      string
	RemainingDisplay string
}

type OverviewOutput struct {
	Rows          []RowOutput
	Active        TotalsOutput
	TodaysGoal    TotalsOutput
	ReadingGoal   TotalsOutput
	ListeningGoal TotalsOutput
}
