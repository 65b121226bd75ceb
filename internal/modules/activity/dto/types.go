package dto

import "time"

type BucketOutput struct {
	Date    time.Time
	Amount  float64
	Display string
}

type ActivityOutput struct {
	DeadlineID string
	Title      string
	Format     string
	Buckets    []BucketOutput
	Sparkline  string
	Empty      bool
}
