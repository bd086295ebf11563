package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ActivityAction string

const (
	ActivityUserCreated        ActivityAction = "USER_CREATED"
	ActivityUserUpdated        ActivityAction = "USER_UPDATED"
	ActivityConsultantAssigned ActivityAction = "CONSULTANT_ASSIGNED"
	ActivitySubmissionStarted  ActivityAction = "SUBMISSION_STARTED"
	ActivityDocumentUploaded   ActivityAction = "DOCUMENT_UPLOADED"
	ActivityDocumentReviewed   ActivityAction = "DOCUMENT_REVIEWED"
	ActivityArtifactDownloaded ActivityAction = "ARTIFACT_DOWNLOADED"
)

// ActivityLog is the admin-visible audit trail entry written by every
// mutating operation.
type ActivityLog struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	ActorID   primitive.ObjectID  `bson:"actor_id" json:"actor_id"`
	ActorName string              `bson:"actor_name,omitempty" json:"actor_name,omitempty"`
	Action    ActivityAction      `bson:"action" json:"action"`
	EntityID  *primitive.ObjectID `bson:"entity_id,omitempty" json:"entity_id,omitempty"`
	Detail    string              `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
}
