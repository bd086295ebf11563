package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/complyware/vendorback/api/auth"
	"github.com/complyware/vendorback/api/handlers"
	"github.com/complyware/vendorback/env"
	"github.com/complyware/vendorback/logger"
	loaders "github.com/complyware/vendorback/middleware/loaders"
	"github.com/complyware/vendorback/reporting"
	mongosvc "github.com/complyware/vendorback/services/mongo"
	redissvc "github.com/complyware/vendorback/services/redis"
	s3svc "github.com/complyware/vendorback/services/s3"
)

func main() {
	lg := logger.New()
	defer func() { _ = lg.Sync() }()

	cfg := env.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		lg.Fatalw("mongo connect failed", "error", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		lg.Fatalw("mongo ping failed", "error", err)
	}
	db := client.Database(cfg.MongoDatabase)

	base := mongosvc.New(db, lg)
	users := mongosvc.NewUserService(base)
	documents := mongosvc.NewDocumentService(base)
	submissions := mongosvc.NewSubmissionService(base)
	activity := mongosvc.NewActivityService(base)
	notifications := mongosvc.NewNotificationService(base)

	cache := redissvc.NewRedisService(
		redissvc.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB),
		lg,
	)

	artifacts, err := s3svc.NewS3Service(&s3svc.S3ClientConfig{
		Bucket:    cfg.S3Bucket,
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	}, lg)
	if err != nil {
		lg.Fatalw("s3 client init failed", "error", err)
	}

	userLoaders := loaders.NewLoaders(users)
	source := userLoaders.WrapSource(mongosvc.NewReportSource(users, documents, submissions))
	fetcher := reporting.NewFetcher(source, lg)

	deps := &handlers.Deps{
		Cfg:           cfg,
		Users:         users,
		Documents:     documents,
		Submissions:   submissions,
		Activity:      activity,
		Notifications: notifications,
		Cache:         cache,
		Artifacts:     artifacts,
		Fetcher:       fetcher,
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTDuration)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: false,
		AllowedHeaders:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
	})

	router := newRouter(deps, jwtManager, lg)

	lg.Infow("starting server", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, c.Handler(router)); err != nil {
		lg.Fatalw("server error", "error", err)
	}
}
