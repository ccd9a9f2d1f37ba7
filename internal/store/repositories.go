package store

import (
	"context"

	"github.com/hashclash/storage/internal/config"
	"github.com/hashclash/storage/internal/logger"
)

// Repositories bundles all repository implementations sharing one database
// connection.
type Repositories struct {
	UserRepository     UserRepository
	TextRepository     TextRepository
	TempCodeRepository TempCodeRepository

	db *DB
}

// NewRepositories connects to PostgreSQL using cfg and constructs all
// repositories on top of the shared connection.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		log.Err(err).Msg("connection to database failed")
		return nil, err
	}

	return &Repositories{
		UserRepository:     NewUserRepository(db, log),
		TextRepository:     NewTextRepository(db, log),
		TempCodeRepository: NewTempCodeRepository(db, log),
		db:                 db,
	}, nil
}

// DB exposes the underlying connection, primarily so that callers can run
// migrations against it.
func (r *Repositories) DB() *DB {
	return r.db
}

// Close releases the underlying database connection.
func (r *Repositories) Close() error {
	return r.db.Close()
}
