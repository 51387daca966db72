package db

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoConnection struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// NewConnectionMongo connects and pings the primary, retrying with
// exponential backoff until MAX_ELAPSED_CONNECT.
func NewConnectionMongo(uri, database string) (*MongoConnection, error) {
	var client *mongo.Client
	err := backoff.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			return err
		}
		if err := c.Ping(ctx, readpref.Primary()); err != nil {
			c.Disconnect(context.Background())
			return err
		}
		client = c
		return nil
	}, newBackOff())
	if err != nil {
		return nil, err
	}
	return &MongoConnection{
		Client: client,
		DB:     client.Database(database),
	}, nil
}

func (m *MongoConnection) Disconnect(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}
