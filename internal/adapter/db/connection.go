package db

import (
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/Shrinila/productify-backend/internal/config"
)

// ConnectDB opens and pings the MySQL pool described by the config. The
// caller owns the returned handle and closes it at shutdown.
func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	pool, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, err
	}

	pool.SetMaxOpenConns(conf.DbMaxOpenConns)
	pool.SetConnMaxLifetime(5 * time.Minute)

	return pool, nil
}
