package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComplianceRateBounds(t *testing.T) {
	assert.Equal(t, 0, ComplianceRate(0, 0))
	assert.Equal(t, 0, ComplianceRate(5, 0))
	assert.Equal(t, 100, ComplianceRate(4, 4))
	assert.Equal(t, 60, ComplianceRate(3, 5))
	assert.Equal(t, 67, ComplianceRate(2, 3))

	for approved := 0; approved <= 10; approved++ {
		for total := 0; total <= 10; total++ {
			rate := ComplianceRate(approved, total)
			assert.GreaterOrEqual(t, rate, 0)
			assert.LessOrEqual(t, rate, 100)
		}
	}
}

func TestDaysSinceLastUpload(t *testing.T) {
	now := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "N/A", DaysSinceLastUpload(nil, now))

	var zero time.Time
	assert.Equal(t, "N/A", DaysSinceLastUpload(&zero, now))

	last := now.AddDate(0, 0, -15)
	assert.Equal(t, "15", DaysSinceLastUpload(&last, now))

	// Partial days floor.
	recent := now.Add(-36 * time.Hour)
	assert.Equal(t, "1", DaysSinceLastUpload(&recent, now))
}
