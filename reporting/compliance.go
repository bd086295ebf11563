package reporting

import (
	"math"
	"strconv"
	"time"
)

// NoUploads is the sentinel shown when a vendor has never uploaded.
const NoUploads = "N/A"

// ComplianceRate is approved/total as a rounded percentage, clamped to
// [0,100]. A vendor with no documents is 0, never NaN.
func ComplianceRate(approved, total int) int {
	if total <= 0 {
		return 0
	}
	rate := int(math.Round(float64(approved) / float64(total) * 100))
	if rate < 0 {
		return 0
	}
	if rate > 100 {
		return 100
	}
	return rate
}

// DaysSince is the whole number of days elapsed from t to now, floored.
func DaysSince(t time.Time, now time.Time) int {
	days := int(math.Floor(now.Sub(t).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// DaysSinceLastUpload renders the aging figure for display, with the
// NoUploads sentinel when the vendor has no upload history.
func DaysSinceLastUpload(last *time.Time, now time.Time) string {
	if last == nil || last.IsZero() {
		return NoUploads
	}
	return strconv.Itoa(DaysSince(*last, now))
}
