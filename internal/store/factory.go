package store

import (
	"database/sql"
	"fmt"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mindtree/internal/config"
)

// Open builds the DocumentStore selected by cfg.Store.Backend. The returned
// close func releases database handles and is a no-op for file and memory.
func Open(cfg *config.Config) (DocumentStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Backend {
	case "memory":
		return NewMemoryStore(), noop, nil
	case "file", "":
		return NewFileStore(cfg.Store.Path), noop, nil
	}

	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, nil, err
	}
	s, err := NewSQLStore(dialector)
	if err != nil {
		return nil, nil, fmt.Errorf("%s store: %w", cfg.Store.Backend, err)
	}
	return s, s.Close, nil
}

func dialectorFor(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.Store.Backend {
	case "postgres":
		return postgres.Open(cfg.Store.DSN), nil
	case "sqlite":
		return sqlite.Open(cfg.Store.DSN), nil
	case "mysql":
		if cfg.Store.DSN != "" {
			return mysql.Open(cfg.Store.DSN), nil
		}
		return mysqlDialector(cfg.Database)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func mysqlDialector(db config.DatabaseConfig) (gorm.Dialector, error) {
	cfg := gomysql.NewConfig()
	cfg.User = db.User
	cfg.Passwd = db.Password
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", db.Host, db.Port)
	cfg.DBName = db.Name
	cfg.ParseTime = true

	connector, err := gomysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("create connector: %w", err)
	}
	sqlDB := sql.OpenDB(connector)
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return mysql.New(mysql.Config{Conn: sqlDB}), nil
}
