package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnState is the lifecycle state of a MongoProvider.
type ConnState int

const (
	StateUninitialized ConnState = iota
	StateConnecting
	StateReady
	StateFailed
)

func (s ConnState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateConnecting:
		return "connecting"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("ConnState(%d)", int(s))
	}
}

// DefaultConnectTimeout bounds a single connect-and-ping attempt.
const DefaultConnectTimeout = 10 * time.Second

// ErrNotConnected is returned when a connect attempt fails.
var ErrNotConnected = errors.New("mongodb client not connected")

// ConnectFunc opens and verifies a client for uri.
type ConnectFunc func(ctx context.Context, uri string) (*mongo.Client, error)

// DefaultConnect connects to uri and pings the primary. The client is
// disconnected again if the ping fails.
func DefaultConnect(ctx context.Context, uri string) (*mongo.Client, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongodb URI cannot be empty")
	}

	opts := options.Client().
		ApplyURI(uri).
		SetRetryWrites(true).
		SetMaxPoolSize(50)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongodb client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return client, nil
}

// connectAttempt is one in-flight connect shared by every caller that asks
// for the client while it runs.
type connectAttempt struct {
	done   chan struct{}
	client *mongo.Client
	err    error
}

// MongoProvider hands out a single lazily connected client for the process.
// The first Client call connects; concurrent callers wait on that attempt.
// A failed attempt leaves the provider in StateFailed and the next call
// connects again.
type MongoProvider struct {
	uri            string
	dbName         string
	connect        ConnectFunc
	connectTimeout time.Duration
	logger         *slog.Logger

	mu      sync.Mutex
	state   ConnState
	client  *mongo.Client
	pending *connectAttempt
	lastErr error
}

// ProviderOption configures a MongoProvider.
type ProviderOption func(*MongoProvider)

// WithConnectFunc replaces the function used to open clients.
func WithConnectFunc(fn ConnectFunc) ProviderOption {
	return func(p *MongoProvider) { p.connect = fn }
}

// WithConnectTimeout overrides DefaultConnectTimeout.
func WithConnectTimeout(d time.Duration) ProviderOption {
	return func(p *MongoProvider) { p.connectTimeout = d }
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(logger *slog.Logger) ProviderOption {
	return func(p *MongoProvider) { p.logger = logger }
}

// NewMongoProvider creates a provider for database dbName at uri. Nothing is
// dialled until the first Client call.
func NewMongoProvider(uri, dbName string, opts ...ProviderOption) *MongoProvider {
	p := &MongoProvider{
		uri:            uri,
		dbName:         dbName,
		connect:        DefaultConnect,
		connectTimeout: DefaultConnectTimeout,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the current lifecycle state.
func (p *MongoProvider) State() ConnState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// LastError returns the error of the most recent failed attempt.
func (p *MongoProvider) LastError() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}

// DatabaseName returns the configured database name.
func (p *MongoProvider) DatabaseName() string {
	return p.dbName
}

// Client returns the connected client, connecting first if needed.
// Cancelling ctx stops the wait but not an attempt other callers share.
func (p *MongoProvider) Client(ctx context.Context) (*mongo.Client, error) {
	p.mu.Lock()
	switch p.state {
	case StateReady:
		client := p.client
		p.mu.Unlock()
		return client, nil
	case StateConnecting:
		attempt := p.pending
		p.mu.Unlock()
		return p.wait(ctx, attempt)
	}

	attempt := &connectAttempt{done: make(chan struct{})}
	p.pending = attempt
	p.state = StateConnecting
	p.mu.Unlock()

	go p.run(context.WithoutCancel(ctx), attempt)
	return p.wait(ctx, attempt)
}

func (p *MongoProvider) run(ctx context.Context, attempt *connectAttempt) {
	ctx, cancel := context.WithTimeout(ctx, p.connectTimeout)
	defer cancel()

	client, err := p.connect(ctx, p.uri)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = nil
	if err != nil {
		p.state = StateFailed
		p.lastErr = err
		attempt.err = fmt.Errorf("%w: %w", ErrNotConnected, err)
		p.logger.Error("MongoDB connection failed", slog.String("error", err.Error()))
	} else {
		p.state = StateReady
		p.client = client
		p.lastErr = nil
		attempt.client = client
		p.logger.Info("Successfully connected to MongoDB.", slog.String("database", p.dbName))
	}
	close(attempt.done)
}

func (p *MongoProvider) wait(ctx context.Context, attempt *connectAttempt) (*mongo.Client, error) {
	select {
	case <-attempt.done:
		return attempt.client, attempt.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Database returns the configured database.
func (p *MongoProvider) Database(ctx context.Context) (*mongo.Database, error) {
	client, err := p.Client(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(p.dbName), nil
}

// Collection returns a collection of the configured database.
func (p *MongoProvider) Collection(ctx context.Context, name string) (*mongo.Collection, error) {
	db, err := p.Database(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// Disconnect closes a ready client and returns the provider to
// StateUninitialized. It is a no-op in any other state.
func (p *MongoProvider) Disconnect(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != StateReady {
		return nil
	}
	client := p.client
	p.client = nil
	p.state = StateUninitialized
	if err := client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect mongodb client: %w", err)
	}
	p.logger.Info("MongoDB client disconnected.")
	return nil
}
