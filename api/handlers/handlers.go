package handlers

import (
	"github.com/complyware/vendorback/env"
	"github.com/complyware/vendorback/reporting"
	"github.com/complyware/vendorback/services/mongo"
	"github.com/complyware/vendorback/services/redis"
	"github.com/complyware/vendorback/services/s3"
)

// Deps bundles the services handlers draw on. Handlers are constructors
// over this plus a logger, so routes stay one line each.
type Deps struct {
	Cfg           *env.Config
	Users         *mongo.UserService
	Documents     *mongo.DocumentService
	Submissions   *mongo.SubmissionService
	Activity      *mongo.ActivityService
	Notifications *mongo.NotificationService
	Cache         *redis.RedisService
	Artifacts     *s3.S3Service
	Fetcher       *reporting.Fetcher
}

func (d *Deps) thresholds() reporting.Thresholds {
	return reporting.Thresholds{
		NonCompliantAfterDays: d.Cfg.NonCompliantAfterDays,
		StaleWarningAfterDays: d.Cfg.StaleWarningAfterDays,
		ExpiryWarningDays:     d.Cfg.ExpiryWarningDays,
	}
}
