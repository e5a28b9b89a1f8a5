// Package mongodb implements the persistence contracts on top of the MongoDB
// driver. The client is an explicitly passed, lifetime-scoped handle; nothing
// in this package holds global connection state.
package mongodb

import (
	"context"
	"fmt"

	"shopapi/config"
	"shopapi/infrastructure/persistence/retry"
	"shopapi/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Connect establishes and pings a MongoDB client.
func Connect(ctx context.Context, cfg *config.DatabaseConfig) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer pingCancel()
	err = retry.ExecuteWithRetry(pingCtx, retry.DefaultConfig, func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("connected to mongodb", zap.String("database", cfg.Database))
	return client, nil
}

// Transactor runs a function inside a MongoDB transaction. It backs the
// optional atomic fulfillment mode.
type Transactor struct {
	client *mongo.Client
}

// NewTransactor creates a Transactor bound to the given client.
func NewTransactor(client *mongo.Client) *Transactor {
	return &Transactor{client: client}
}

// WithinTransaction executes fn in a session transaction. The context passed
// to fn carries the session; repository calls made with it join the
// transaction.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := t.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
