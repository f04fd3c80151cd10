package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/monishsatpuri/blogcms/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// EnsureIndexes creates the unique indexes both stores rely on. Safe to call
// on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := NewPostRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("post indexes: %w", err)
	}
	if err := NewContactRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("contact indexes: %w", err)
	}
	return nil
}

// Pinger reports MongoDB reachability for readiness checks.
type Pinger struct {
	db *mongo.Database
}

func NewPinger(db *mongo.Database) *Pinger {
	return &Pinger{db: db}
}

func (p *Pinger) Ping(ctx context.Context) error {
	return p.db.Client().Ping(ctx, readpref.Primary())
}

// mapError converts driver errors into the domain taxonomy.
func mapError(op string, err error) error {
	switch {
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, domain.ErrConstraintViolation)
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	default:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrStorageUnavailable, err)
	}
}
