package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	mdb "daily-news/internal/infra/adapter/persistence/mongodb"
)

// MongoConfig describes how to reach the document store.
type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	MaxPoolSize    uint64
}

// Mongo is the process-wide document store handle. It is created once in main
// and handed to the repositories; Close must be called on shutdown.
type Mongo struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// ConnectMongo dials the cluster, verifies it with a ping and returns the handle.
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*Mongo, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("connect mongo: MONGODB_URI not set")
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 10 * time.Second
	}
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	slog.Info("database connection established successfully",
		slog.String("driver", "mongo"),
		slog.String("database", cfg.Database))
	return &Mongo{Client: client, DB: client.Database(cfg.Database)}, nil
}

// Ping reports whether the primary is reachable. Used by the readiness check.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes the repositories rely on. The unique email
// index backs the duplicate-email detection in the users repository.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(mdb.UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	}); err != nil {
		return fmt.Errorf("ensure indexes: users: %w", err)
	}

	if _, err := db.Collection(mdb.ArticlesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "timesVisited", Value: -1}}, Options: options.Index().SetName("times_visited_desc")},
		{Keys: bson.D{{Key: "authorEmail", Value: 1}}, Options: options.Index().SetName("author_email")},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "tags", Value: 1}}, Options: options.Index().SetName("status_tags")},
	}); err != nil {
		return fmt.Errorf("ensure indexes: articles: %w", err)
	}
	return nil
}
