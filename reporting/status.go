package reporting

import (
	"strings"

	"github.com/complyware/vendorback/models"
)

// Status is the canonical vocabulary used uniformly across reports and
// charts, collapsing the legacy Document states and the per-period
// DocumentSubmission states.
type Status string

const (
	StatusDraft                Status = "draft"
	StatusSubmitted            Status = "submitted"
	StatusPending              Status = "pending"
	StatusUnderReview          Status = "under_review"
	StatusPartiallyApproved    Status = "partially_approved"
	StatusFullyApproved        Status = "fully_approved"
	StatusApproved             Status = "approved"
	StatusRejected             Status = "rejected"
	StatusRequiresResubmission Status = "requires_resubmission"
)

// statusAliases folds the legacy consultant/final split and assorted
// historical tokens onto the canonical set.
var statusAliases = map[string]Status{
	"draft":                 StatusDraft,
	"submitted":             StatusSubmitted,
	"pending":               StatusPending,
	"pending_consultant":    StatusPending,
	"under_review":          StatusUnderReview,
	"in_review":             StatusUnderReview,
	"partially_approved":    StatusPartiallyApproved,
	"fully_approved":        StatusFullyApproved,
	"approved":              StatusApproved,
	"consultant_approved":   StatusApproved,
	"final_approved":        StatusApproved,
	"rejected":              StatusRejected,
	"consultant_rejected":   StatusRejected,
	"final_rejected":        StatusRejected,
	"requires_resubmission": StatusRequiresResubmission,
	"resubmission_required": StatusRequiresResubmission,
}

var statusLabels = map[Status]string{
	StatusDraft:                "Draft",
	StatusSubmitted:            "Submitted",
	StatusPending:              "Pending",
	StatusUnderReview:          "Under Review",
	StatusPartiallyApproved:    "Partially Approved",
	StatusFullyApproved:        "Fully Approved",
	StatusApproved:             "Approved",
	StatusRejected:             "Rejected",
	StatusRequiresResubmission: "Requires Resubmission",
}

// labelOverrides keeps a handful of raw tokens whose display wording does
// not match their canonical bucket.
var labelOverrides = map[string]string{
	"pending_consultant": "Pending from Consultant",
}

var statusColors = map[Status]string{
	StatusDraft:                "default",
	StatusSubmitted:            "info",
	StatusPending:              "warning",
	StatusUnderReview:          "info",
	StatusPartiallyApproved:    "warning",
	StatusFullyApproved:        "success",
	StatusApproved:             "success",
	StatusRejected:             "error",
	StatusRequiresResubmission: "error",
}

// NormalizeStatus maps a raw status token onto the canonical set. Unknown
// tokens pass through lowercased rather than being rejected, so a new
// status value degrades to a humanized label instead of breaking reports.
func NormalizeStatus(raw string) Status {
	token := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := statusAliases[token]; ok {
		return canonical
	}
	return Status(token)
}

// StatusLabel returns the display label for a raw status token.
func StatusLabel(raw string) string {
	token := strings.ToLower(strings.TrimSpace(raw))
	if label, ok := labelOverrides[token]; ok {
		return label
	}
	if label, ok := statusLabels[NormalizeStatus(raw)]; ok {
		return label
	}
	return humanizeToken(token)
}

// StatusColor returns the UI color category for a raw status token.
func StatusColor(raw string) string {
	if color, ok := statusColors[NormalizeStatus(raw)]; ok {
		return color
	}
	return "default"
}

// humanizeToken renders an unknown token by replacing underscores with
// spaces and title-casing each word.
func humanizeToken(token string) string {
	words := strings.Split(strings.ReplaceAll(token, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

type bucket int

const (
	bucketPending bucket = iota
	bucketApproved
	bucketRejected
)

// classifyDocument places a per-document status into the approved,
// rejected or pending tally. Anything not terminally decided counts as
// pending.
func classifyDocument(s models.DocumentStatus) bucket {
	switch NormalizeStatus(string(s)) {
	case StatusApproved, StatusFullyApproved:
		return bucketApproved
	case StatusRejected, StatusRequiresResubmission:
		return bucketRejected
	default:
		return bucketPending
	}
}
