// Package accrual computes egg production over elapsed wall-clock time.
// It is pure arithmetic: callers own the clock and the storage.
package accrual

import (
	"math"
	"time"
)

// MinInterval is the shortest window between credited collections. Below
// it nothing is produced and the caller is told how long to wait.
const MinInterval = 10 * time.Minute

// Produce returns the whole eggs produced between last and now at the
// given hourly rate. When the minimum window has not elapsed yet it
// returns zero eggs and the minutes left to wait, rounded up. A non-zero
// egg count (including an explicit zero past the window) means the caller
// must advance its last-collection timestamp to now.
func Produce(last, now time.Time, eggsPerHour float64) (eggs int64, waitMinutes int) {
	hours := now.Sub(last).Hours()
	minHours := MinInterval.Hours()
	if hours < minHours {
		return 0, int(math.Ceil((minHours - hours) * 60))
	}
	return int64(math.Floor(hours * eggsPerHour)), 0
}

// Ready reports production without the minimum-window gate, for previews
// of what a collection would yield.
func Ready(last, now time.Time, eggsPerHour float64) int64 {
	hours := now.Sub(last).Hours()
	if hours <= 0 {
		return 0
	}
	return int64(math.Floor(hours * eggsPerHour))
}
