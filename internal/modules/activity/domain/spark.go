package domain

import (
	"math"
	"strings"
)

const sparkChars = " .:-=+*#%@"

// Sparkline renders a single-line ASCII sparkline of the bucket amounts.
func Sparkline(buckets []DayBucket) string {
	if len(buckets) == 0 {
		return ""
	}
	minVal := buckets[0].Amount
	maxVal := buckets[0].Amount
	for _, b := range buckets[1:] {
		if b.Amount < minVal {
			minVal = b.Amount
		}
		if b.Amount > maxVal {
			maxVal = b.Amount
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(buckets))
	}
	var b strings.Builder
	for _, bucket := range buckets {
		pos := (bucket.Amount - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
