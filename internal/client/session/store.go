package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/visionai/console/internal/client/repositories/storage"
	"github.com/visionai/console/internal/dbx"
)

// CredentialStore is what the Manager needs from durable storage.
type CredentialStore interface {
	Load(ctx context.Context) (Credential, error)
	Save(ctx context.Context, c Credential) error
	Clear(ctx context.Context) error
}

// Store is the SQLite-backed CredentialStore.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load returns the persisted credential. Missing keys read as empty fields.
func (s *Store) Load(ctx context.Context) (Credential, error) {
	repo := storage.NewSQLiteRepository(s.db)

	token, _, err := repo.Get(ctx, KeyToken)
	if err != nil {
		return Credential{}, fmt.Errorf("load token: %w", err)
	}
	username, _, err := repo.Get(ctx, KeyUsername)
	if err != nil {
		return Credential{}, fmt.Errorf("load username: %w", err)
	}
	return Credential{Token: token, Username: username}, nil
}

// Save writes both fields in one transaction. An empty field removes its key.
func (s *Store) Save(ctx context.Context, c Credential) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := putOrDelete(ctx, repo, KeyToken, c.Token); err != nil {
			return err
		}
		return putOrDelete(ctx, repo, KeyUsername, c.Username)
	})
}

// Clear removes both keys and leaves any other stored keys alone.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := storage.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, KeyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, KeyUsername)
	})
}

func putOrDelete(ctx context.Context, repo storage.Repository, key, value string) error {
	if value == "" {
		return repo.Delete(ctx, key)
	}
	return repo.Set(ctx, key, value)
}
