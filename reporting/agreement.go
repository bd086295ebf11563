package reporting

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// AgreementKind tags the parsed variant of the free-text agreement field.
type AgreementKind int

const (
	// AgreementDateRange is a literal "<D Month YYYY> to <D Month YYYY>".
	AgreementDateRange AgreementKind = iota
	// AgreementDuration is a keyword phrase like "Annual Contract".
	AgreementDuration
	// AgreementPermanent never expires.
	AgreementPermanent
	// AgreementInvalid looked like a date range but would not parse.
	AgreementInvalid
)

// Agreement is the parsed form of a vendor's agreement period.
type Agreement struct {
	Kind    AgreementKind
	EndDate time.Time
	Months  int
}

var agreementRangeRe = regexp.MustCompile(`(?i)^\s*(\d{1,2}\s+[a-z]+\.?\s+\d{4})\s+to\s+(\d{1,2}\s+[a-z]+\.?\s+\d{4})\s*$`)

// ParseAgreement classifies a free-text agreement period. A literal date
// range overrides any duration keywords; the second date of the range is
// the contract end. Duration phrases resolve relative to the account
// creation date. Anything unrecognized defaults to a 12-month term.
func ParseAgreement(period string, createdAt time.Time) Agreement {
	if m := agreementRangeRe.FindStringSubmatch(period); m != nil {
		end, err := parseLongDate(m[2])
		if err != nil {
			return Agreement{Kind: AgreementInvalid}
		}
		return Agreement{Kind: AgreementDateRange, EndDate: end}
	}

	lower := strings.ToLower(period)
	switch {
	case strings.Contains(lower, "permanent"), strings.Contains(lower, "indefinite"):
		return Agreement{Kind: AgreementPermanent}
	case strings.Contains(lower, "3 year"):
		return durationAgreement(createdAt, 36)
	case strings.Contains(lower, "2 year"):
		return durationAgreement(createdAt, 24)
	case strings.Contains(lower, "6 month"):
		return durationAgreement(createdAt, 6)
	case strings.Contains(lower, "annual"), strings.Contains(lower, "yearly"), strings.Contains(lower, "1 year"):
		return durationAgreement(createdAt, 12)
	default:
		return durationAgreement(createdAt, 12)
	}
}

func durationAgreement(createdAt time.Time, months int) Agreement {
	return Agreement{
		Kind:    AgreementDuration,
		EndDate: createdAt.AddDate(0, months, 0),
		Months:  months,
	}
}

// parseLongDate parses "26 August 2025" tolerating arbitrary case. A
// misspelled month name is an error, never a zero time passed through.
func parseLongDate(s string) (time.Time, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 3 {
		month := strings.TrimSuffix(fields[1], ".")
		fields[1] = strings.ToUpper(month[:1]) + strings.ToLower(month[1:])
	}
	return time.Parse("2 January 2006", strings.Join(fields, " "))
}

// AgreementStatus is the aging classification of a parsed agreement.
type AgreementStatus struct {
	Label         string
	IsExpiring    bool
	IsExpired     bool
	DaysRemaining int
}

// AgreementStatusAt classifies an agreement against the given clock.
// warnDays is the expiring-soon window (configured, default 30).
func AgreementStatusAt(a Agreement, now time.Time, warnDays int) AgreementStatus {
	switch a.Kind {
	case AgreementPermanent:
		return AgreementStatus{Label: "Permanent contract"}
	case AgreementInvalid:
		return AgreementStatus{Label: "Invalid end date in range"}
	}

	if a.EndDate.IsZero() {
		return AgreementStatus{Label: "Invalid Date"}
	}

	daysRemaining := int(math.Ceil(a.EndDate.Sub(now).Hours() / 24))
	switch {
	case daysRemaining <= 0:
		return AgreementStatus{
			Label:         fmt.Sprintf("Expired %d days ago", -daysRemaining),
			IsExpired:     true,
			DaysRemaining: daysRemaining,
		}
	case daysRemaining <= warnDays:
		return AgreementStatus{
			Label:         fmt.Sprintf("Expiring in %d days", daysRemaining),
			IsExpiring:    true,
			DaysRemaining: daysRemaining,
		}
	default:
		return AgreementStatus{Label: "Active", DaysRemaining: daysRemaining}
	}
}
