// File: database/repository/session/session_mongo.go
package sessionRepo

import (
	"context"
	"time"

	"tripplanner/config"
	"tripplanner/database"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSessionRepo implements SessionRepository backed by MongoDB.
type MongoSessionRepo struct {
	coll *mongo.Collection
}

func NewMongoSessionRepo() *MongoSessionRepo {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("sessions")
	return &MongoSessionRepo{coll: coll}
}

func newContext(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}
