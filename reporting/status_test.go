package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/complyware/vendorback/models"
)

func TestNormalizeStatusFoldsLegacyTokens(t *testing.T) {
	assert.Equal(t, StatusApproved, NormalizeStatus("consultant_approved"))
	assert.Equal(t, StatusApproved, NormalizeStatus("FINAL_APPROVED"))
	assert.Equal(t, StatusRejected, NormalizeStatus("consultant_rejected"))
	assert.Equal(t, StatusRejected, NormalizeStatus("final_rejected"))
	assert.Equal(t, StatusUnderReview, NormalizeStatus("Under_Review"))
	assert.Equal(t, StatusPending, NormalizeStatus("  pending "))
}

func TestNormalizeStatusPassesUnknownThrough(t *testing.T) {
	assert.Equal(t, Status("on_hold"), NormalizeStatus("ON_HOLD"))
}

func TestStatusLabelKnownAndOverride(t *testing.T) {
	assert.Equal(t, "Requires Resubmission", StatusLabel("requires_resubmission"))
	assert.Equal(t, "Fully Approved", StatusLabel("FULLY_APPROVED"))
	assert.Equal(t, "Pending from Consultant", StatusLabel("pending_consultant"))
}

func TestStatusLabelHumanizesUnknown(t *testing.T) {
	assert.Equal(t, "On Hold", StatusLabel("on_hold"))
	assert.Equal(t, "Awaiting Legal Signoff", StatusLabel("AWAITING_LEGAL_SIGNOFF"))
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "success", StatusColor("final_approved"))
	assert.Equal(t, "error", StatusColor("requires_resubmission"))
	assert.Equal(t, "warning", StatusColor("partially_approved"))
	assert.Equal(t, "default", StatusColor("whatever_else"))
}

func TestClassifyDocument(t *testing.T) {
	assert.Equal(t, bucketApproved, classifyDocument(models.DocumentStatusConsultantApproved))
	assert.Equal(t, bucketRejected, classifyDocument(models.DocumentStatusFinalRejected))
	assert.Equal(t, bucketPending, classifyDocument(models.DocumentStatusUnderReview))
	assert.Equal(t, bucketPending, classifyDocument(models.DocumentStatus("mystery")))
}
