package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"meetslot/config"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
	connectTimeoutSeconds     = 5
)

var ErrNotConnected = errors.New("postgres connection is not established")

const (
	poolRead  = "read"
	poolWrite = "write"

	reconnectInitialInterval = 2 * time.Second
	reconnectMaxInterval     = time.Minute
)

// Connector opens one pool by name ("read" or "write") in a single attempt.
type Connector func(name string) (*sqlx.DB, error)

type Connection struct {
	mu          sync.RWMutex
	read        *sqlx.DB
	write       *sqlx.DB
	connect     Connector
	backOff     backoff.BackOff
	nextAttempt time.Time
	now         func() time.Time
}

// New connects both pools. A pool that never came up is retried lazily from Ready,
// so the caller can serve from another slot store meanwhile instead of crashing.
func New(config *config.Config) *Connection {
	conn := NewWithConnector(func(name string) (*sqlx.DB, error) {
		return sqlx.Connect("postgres", poolDSN(*config, name))
	}, newReconnectBackOff())

	conn.read = CreatePostgresReadConn(*config)
	conn.write = CreatePostgresWriteConn(*config)

	if !conn.connected() {
		conn.nextAttempt = conn.now().Add(conn.backOff.NextBackOff())
	}

	return conn
}

// NewWithConnector builds a connection that opens its pools on first use and keeps
// retrying, spaced by retry, until both are up.
func NewWithConnector(connect Connector, retry backoff.BackOff) *Connection {
	return &Connection{
		connect: connect,
		backOff: retry,
		now:     time.Now,
	}
}

// NewWithDB wraps already opened pools.
func NewWithDB(read, write *sqlx.DB) *Connection {
	return &Connection{
		read:    read,
		write:   write,
		backOff: newReconnectBackOff(),
		now:     time.Now,
	}
}

func newReconnectBackOff() backoff.BackOff {
	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = reconnectInitialInterval
	retry.MaxInterval = reconnectMaxInterval

	return retry
}

func (c *Connection) connected() bool {
	return c.read != nil && c.write != nil
}

// Ready reports whether both pools are established, reconnecting when the
// backoff allows it.
func (c *Connection) Ready() bool {
	if c == nil {
		return false
	}

	c.mu.RLock()
	ready := c.connected()
	c.mu.RUnlock()

	if ready {
		return true
	}

	return c.reconnect()
}

func (c *Connection) reconnect() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected() {
		return true
	}

	if c.connect == nil || c.now().Before(c.nextAttempt) {
		return false
	}

	for _, pool := range []struct {
		name string
		db   **sqlx.DB
	}{{poolRead, &c.read}, {poolWrite, &c.write}} {
		if *pool.db != nil {
			continue
		}

		db, err := c.connect(pool.name)
		if err != nil {
			delay := c.backOff.NextBackOff()
			c.nextAttempt = c.now().Add(delay)

			log.Warn().Err(err).Str("name", pool.name).Dur("retryIn", delay).Msg("Database still unreachable")

			return false
		}

		configurePool(db)
		*pool.db = db
	}

	c.backOff.Reset()
	log.Info().Msg("Reconnected to database")

	return true
}

// Reader returns the read pool, nil until Ready reports true.
func (c *Connection) Reader() *sqlx.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.read
}

// Writer returns the write pool, nil until Ready reports true.
func (c *Connection) Writer() *sqlx.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.write
}

// Ping checks the write pool, which is the one reservations depend on.
func (c *Connection) Ping(ctx context.Context) error {
	if !c.Ready() {
		return ErrNotConnected
	}

	if err := c.Writer().PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping postgres: %w", err)
	}

	return nil
}

func (c *Connection) Close() {
	if c == nil {
		return
	}

	for _, db := range []*sqlx.DB{c.Reader(), c.Writer()} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close postgres pool")
		}
	}
}

func configurePool(db *sqlx.DB) {
	db.SetMaxIdleConns(postgresMaxIdleConnection)
	db.SetMaxOpenConns(postgresMaxOpenConnection)
	db.SetConnMaxLifetime(postgresConnMaxLifetime)
}

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(poolWrite, poolDSN(config, poolWrite),
		config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	return CreatePostgresConnection(poolRead, poolDSN(config, poolRead),
		config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
}

func poolDSN(config config.Config, name string) string {
	target := config.DB.Postgres.Read
	if name == poolWrite {
		target = config.DB.Postgres.Write
	}

	return DSN(
		target.Username,
		target.Password,
		target.Host,
		target.Port,
		getDBName(config, target.Name),
		target.SSLMode,
	)
}

// DSN builds a lib/pq connection URL.
func DSN(username, password, host, port, dbName, sslMode string) string {
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s&connect_timeout=%d",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
		connectTimeoutSeconds,
	)
}

// CreatePostgresConnection creates a database connection, retrying maxRetry times.
func CreatePostgresConnection(name, descriptor string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Msg("Connected to database")
			configurePool(sqlDB)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
