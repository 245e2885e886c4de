package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"time"

	"tie/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName                = "postgres"
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection holds the reservation store's read and write pools.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name     string
	username string
	password string
	host     string
	port     string
	dbName   string
	sslMode  string
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read: connect(endpoint{
			name:     "read",
			username: pg.Read.Username,
			password: pg.Read.Password,
			host:     pg.Read.Host,
			port:     pg.Read.Port,
			dbName:   pg.Prefix + pg.Read.Name,
			sslMode:  pg.Read.SSLMode,
		}, pg.MaxRetry, pg.RetryWaitTime),
		Write: connect(endpoint{
			name:     "write",
			username: pg.Write.Username,
			password: pg.Write.Password,
			host:     pg.Write.Host,
			port:     pg.Write.Port,
			dbName:   pg.Prefix + pg.Write.Name,
			sslMode:  pg.Write.SSLMode,
		}, pg.MaxRetry, pg.RetryWaitTime),
	}
}

// NewFromDB wraps an existing handle for both pools.
func NewFromDB(db *sqlx.DB) *Connection {
	return &Connection{Read: db, Write: db}
}

// DSN renders the connection URL used by both the pool and the migrator.
func DSN(username, password, host, port, dbName, sslMode string) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

func connect(ep endpoint, maxRetry, waitTime int) *sqlx.DB {
	descriptor := DSN(ep.username, ep.password, ep.host, ep.port, ep.dbName, ep.sslMode)

	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect(driverName, descriptor)
		if err == nil {
			log.
				Info().
				Str("name", ep.name).
				Str("host", ep.host).
				Str("port", ep.port).
				Str("dbName", ep.dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", ep.name).
			Str("host", ep.host).
			Str("dbName", ep.dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	log.Fatal().Str("name", ep.name).Msg("Giving up connecting to database")

	return nil
}
