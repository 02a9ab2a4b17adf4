package sqldb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace-service/src/pkg/log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/viper"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

var ErrNotConnected = errors.New("database is not connected")

type DBInterface interface {
	GetDB() (*sqlx.DB, error)
	Timeout() time.Duration
	Close() error
}

type Database struct {
	db      *sqlx.DB
	timeout time.Duration
}

// New wraps an already opened handle; tests use it with sqlmock.
func New(db *sqlx.DB, timeout time.Duration) *Database {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Database{db: db, timeout: timeout}
}

func InitConnection(v *viper.Viper, logger log.Log) (DBInterface, error) {
	driver := v.GetString("database.driver")
	if driver == "" {
		driver = DriverMySQL
	}
	if driver != DriverMySQL && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Open(driver, v.GetString("database.dsn"))
	if err != nil {
		return nil, err
	}

	idle := v.GetInt("database.pool.idle")
	if idle == 0 {
		idle = 5
	}
	maxOpen := v.GetInt("database.pool.max")
	if maxOpen == 0 {
		maxOpen = 25
	}
	lifetime := v.GetInt("database.pool.lifetime")
	if lifetime == 0 {
		lifetime = 300
	}
	db.SetMaxIdleConns(idle)
	db.SetMaxOpenConns(maxOpen)
	db.SetConnMaxLifetime(time.Duration(lifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("database", fmt.Sprintf("connected using %s driver", driver), "InitConnection", "")
	return New(db, time.Duration(v.GetInt("database.timeout"))*time.Second), nil
}

func (d *Database) GetDB() (*sqlx.DB, error) {
	if d == nil || d.db == nil {
		return nil, ErrNotConnected
	}
	return d.db, nil
}

func (d *Database) Timeout() time.Duration {
	return d.timeout
}

func (d *Database) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

// Queryer is satisfied by both *sqlx.DB and *sqlx.Tx.
type Queryer interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// InsertReturningID runs an INSERT written with '?' placeholders and returns the new id.
// Postgres has no LastInsertId, so the statement gets a RETURNING clause there.
func InsertReturningID(ctx context.Context, q Queryer, query string, args ...interface{}) (int64, error) {
	if q.DriverName() == DriverPostgres {
		var id int64
		err := q.QueryRowxContext(ctx, q.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}
	res, err := q.ExecContext(ctx, q.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
