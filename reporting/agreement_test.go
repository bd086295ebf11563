package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLiteralRangeOverridesCreationDate(t *testing.T) {
	end := time.Date(2025, time.August, 26, 0, 0, 0, 0, time.UTC)
	for _, createdAt := range []time.Time{
		time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
	} {
		a := ParseAgreement("1 April 2025 to 26 August 2025", createdAt)
		assert.Equal(t, AgreementDateRange, a.Kind)
		assert.Equal(t, end, a.EndDate)
	}
}

func TestRangeParsingIsCaseInsensitive(t *testing.T) {
	a := ParseAgreement("1 april 2025 TO 26 AUGUST 2025", time.Now())
	assert.Equal(t, AgreementDateRange, a.Kind)
	assert.Equal(t, time.Date(2025, time.August, 26, 0, 0, 0, 0, time.UTC), a.EndDate)
}

func TestMisspelledMonthYieldsInvalidNotNaN(t *testing.T) {
	a := ParseAgreement("1 April 2025 to 26 Augst 2025", time.Now())
	assert.Equal(t, AgreementInvalid, a.Kind)

	status := AgreementStatusAt(a, time.Now(), 30)
	assert.Equal(t, "Invalid end date in range", status.Label)
	assert.False(t, status.IsExpiring)
}

func TestAnnualContractAddsTwelveMonths(t *testing.T) {
	createdAt := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	a := ParseAgreement("Annual Contract", createdAt)
	assert.Equal(t, AgreementDuration, a.Kind)
	assert.Equal(t, 12, a.Months)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), a.EndDate)
}

func TestDurationKeywords(t *testing.T) {
	createdAt := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 24, ParseAgreement("2 Year Deal", createdAt).Months)
	assert.Equal(t, 36, ParseAgreement("3 year framework", createdAt).Months)
	assert.Equal(t, 6, ParseAgreement("6 month trial", createdAt).Months)
	assert.Equal(t, 12, ParseAgreement("Yearly renewal", createdAt).Months)
	// Unrecognized free text defaults to a 12-month term.
	assert.Equal(t, 12, ParseAgreement("standard terms apply", createdAt).Months)
}

func TestPermanentContractNeverExpires(t *testing.T) {
	a := ParseAgreement("Permanent engagement", time.Now())
	assert.Equal(t, AgreementPermanent, a.Kind)

	status := AgreementStatusAt(a, time.Now().AddDate(50, 0, 0), 30)
	assert.Equal(t, "Permanent contract", status.Label)
	assert.False(t, status.IsExpired)
}

func TestAgreementStatusLabels(t *testing.T) {
	now := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)

	expired := AgreementStatusAt(Agreement{Kind: AgreementDateRange, EndDate: now.AddDate(0, 0, -10)}, now, 30)
	assert.Equal(t, "Expired 10 days ago", expired.Label)
	assert.True(t, expired.IsExpired)

	expiring := AgreementStatusAt(Agreement{Kind: AgreementDateRange, EndDate: now.AddDate(0, 0, 7)}, now, 30)
	assert.Equal(t, "Expiring in 7 days", expiring.Label)
	assert.True(t, expiring.IsExpiring)

	active := AgreementStatusAt(Agreement{Kind: AgreementDateRange, EndDate: now.AddDate(0, 6, 0)}, now, 30)
	assert.Equal(t, "Active", active.Label)
	assert.False(t, active.IsExpiring)
}
