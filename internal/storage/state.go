package storage

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/tuneboxed/sessionstore/internal/dbx"
	"github.com/tuneboxed/sessionstore/internal/logging"
	"github.com/tuneboxed/sessionstore/internal/models"
)

// Keys of the durable key-value area. The layout is part of the contract:
// "users" holds the serialized registered set, "currentUser" holds the
// serialized active account and is present iff a session is active.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
)

// StateStore is the JSON codec over the key-value repository. It owns the
// durable representation of accounts and the session pointer; the session
// store owns the in-memory state and is the sole caller.
//
// Malformed stored values are treated as absent, but are logged so a wiped
// state is distinguishable from a fresh install in the diagnostics.
type StateStore struct {
	db  *sql.DB
	log logging.Logger
}

func NewStateStore(db *sql.DB, log logging.Logger) *StateStore {
	return &StateStore{db: db, log: log}
}

// LoadUsers returns the registered set, or an empty slice if the key is
// absent or its value does not decode.
func (s *StateStore) LoadUsers(ctx context.Context) ([]*models.UserAccount, error) {
	data, err := NewKVRepository(s.db).Get(ctx, KeyUsers)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var users []*models.UserAccount
	if err := json.Unmarshal(data, &users); err != nil {
		s.log.Warn(ctx, "stored user set is corrupt, starting empty", "key", KeyUsers, "error", err)
		return nil, nil
	}
	return users, nil
}

// LoadCurrent returns the persisted session pointer, or nil if no session
// was saved or the value does not decode.
func (s *StateStore) LoadCurrent(ctx context.Context) (*models.UserAccount, error) {
	data, err := NewKVRepository(s.db).Get(ctx, KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var user models.UserAccount
	if err := json.Unmarshal(data, &user); err != nil {
		s.log.Warn(ctx, "stored session pointer is corrupt, treating as signed out", "key", KeyCurrentUser, "error", err)
		return nil, nil
	}
	return &user, nil
}

// SaveAll writes the registered set and the session pointer in a single
// transaction. A nil current removes the session pointer.
func (s *StateStore) SaveAll(ctx context.Context, users []*models.UserAccount, current *models.UserAccount) error {
	usersData, err := json.Marshal(users)
	if err != nil {
		return err
	}

	var currentData []byte
	if current != nil {
		currentData, err = json.Marshal(current)
		if err != nil {
			return err
		}
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewKVRepository(tx)
		if err := repo.Set(ctx, KeyUsers, usersData); err != nil {
			return err
		}
		if currentData == nil {
			return repo.Delete(ctx, KeyCurrentUser)
		}
		return repo.Set(ctx, KeyCurrentUser, currentData)
	})
}

// SaveCurrent persists only the session pointer. Used by login, which does
// not change the registered set.
func (s *StateStore) SaveCurrent(ctx context.Context, current *models.UserAccount) error {
	data, err := json.Marshal(current)
	if err != nil {
		return err
	}
	return NewKVRepository(s.db).Set(ctx, KeyCurrentUser, data)
}

// DeleteCurrent removes the session pointer. Deleting an absent key is not
// an error, which keeps logout idempotent.
func (s *StateStore) DeleteCurrent(ctx context.Context) error {
	return NewKVRepository(s.db).Delete(ctx, KeyCurrentUser)
}

// Reset wipes both keys. Used when the store is configured to start fresh
// on every launch.
func (s *StateStore) Reset(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewKVRepository(tx)
		if err := repo.Delete(ctx, KeyUsers); err != nil {
			return err
		}
		return repo.Delete(ctx, KeyCurrentUser)
	})
}
