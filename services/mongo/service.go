package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type MongoService struct {
	db *mongo.Database
	lg *zap.SugaredLogger
}

func New(db *mongo.Database, lg *zap.SugaredLogger) *MongoService {
	return &MongoService{db: db, lg: lg}
}

func (s *MongoService) GetDatabase() *mongo.Database {
	return s.db
}

func (s *MongoService) GetCollection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *MongoService) Logger() *zap.SugaredLogger {
	return s.lg
}
