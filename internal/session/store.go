// Package session implements the account and session lifecycle: registration,
// login/logout, profile mutation, and the uniqueness invariants over the
// registered set. Durability is delegated to a storage backend; the store is
// the sole owner and mutator of the in-memory state.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tuneboxed/sessionstore/internal/common"
	"github.com/tuneboxed/sessionstore/internal/logging"
	"github.com/tuneboxed/sessionstore/internal/models"
	"github.com/tuneboxed/sessionstore/internal/validation"
)

// Storage is the durable backend the store persists to. Implemented by
// storage.StateStore; tests substitute fakes.
type Storage interface {
	LoadUsers(ctx context.Context) ([]*models.UserAccount, error)
	LoadCurrent(ctx context.Context) (*models.UserAccount, error)
	SaveAll(ctx context.Context, users []*models.UserAccount, current *models.UserAccount) error
	SaveCurrent(ctx context.Context, current *models.UserAccount) error
	DeleteCurrent(ctx context.Context) error
	Reset(ctx context.Context) error
}

// Store manages registered accounts and the single active session.
//
// All mutating operations persist first and only then swap the in-memory
// state, so a storage failure never leaves memory ahead of disk. A RWMutex
// keeps mutations serialized; reads may run concurrently with each other.
type Store struct {
	mu      sync.RWMutex
	storage Storage
	log     logging.Logger

	users   []*models.UserAccount
	current *models.UserAccount
}

// NewStore constructs a Store bound to the given storage backend. Call Load
// before using it.
func NewStore(storage Storage, log logging.Logger) *Store {
	return &Store{storage: storage, log: log}
}

// Load re-derives the in-memory state from storage. With resetOnLaunch set,
// the persisted state is wiped instead and the store starts empty.
func (s *Store) Load(ctx context.Context, resetOnLaunch bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if resetOnLaunch {
		if err := s.storage.Reset(ctx); err != nil {
			return s.persistenceError(ctx, "reset", err)
		}
		s.users = nil
		s.current = nil
		return nil
	}

	users, err := s.storage.LoadUsers(ctx)
	if err != nil {
		return s.persistenceError(ctx, "load users", err)
	}
	current, err := s.storage.LoadCurrent(ctx)
	if err != nil {
		return s.persistenceError(ctx, "load session", err)
	}
	if current != nil && !containsID(users, current.ID) {
		// The session pointer refers to an account that is not in the
		// registered set (e.g. the users value was corrupt). Keeping it
		// would let mutations persist an orphaned account, so sign out.
		s.log.Warn(ctx, "saved session does not match any registered account, signing out", "username", current.Username)
		current = nil
	}

	s.users = users
	s.current = current
	if current != nil {
		s.log.Info(ctx, "session restored", "username", current.Username)
	}
	return nil
}

// Register validates the inputs, enforces username/email uniqueness
// (case-insensitive), creates the account, and signs it in. The registered
// set and the session pointer are persisted atomically before the in-memory
// state is updated.
func (s *Store) Register(ctx context.Context, username, email, password, confirmPassword string) (*models.UserAccount, error) {
	if err := validation.Registration(username, email, password, confirmPassword); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) || strings.EqualFold(u.Email, email) {
			return nil, common.ErrAlreadyExists
		}
	}

	account := &models.UserAccount{
		ID:        uuid.NewString(),
		Username:  username,
		Email:     email,
		Password:  password,
		CreatedAt: time.Now(),
	}

	users := append(s.snapshotUsers(), account)
	if err := s.storage.SaveAll(ctx, users, account); err != nil {
		return nil, s.persistenceError(ctx, "register", err)
	}

	s.users = users
	s.current = account
	s.log.Info(ctx, "account registered", "username", username)
	return account.Clone(), nil
}

// Login authenticates by case-insensitive username and exact password and,
// on success, makes the account the active session.
func (s *Store) Login(ctx context.Context, username, password string) (*models.UserAccount, error) {
	if err := validation.Login(username, password); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var account *models.UserAccount
	for _, u := range s.users {
		if strings.EqualFold(u.Username, username) && u.Password == password {
			account = u
			break
		}
	}
	if account == nil {
		return nil, common.ErrInvalidCredentials
	}

	if err := s.storage.SaveCurrent(ctx, account); err != nil {
		return nil, s.persistenceError(ctx, "login", err)
	}

	s.current = account
	s.log.Info(ctx, "signed in", "username", account.Username)
	return account.Clone(), nil
}

// Logout clears the active session and removes the persisted session
// pointer. Calling it while signed out is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}

	if err := s.storage.DeleteCurrent(ctx); err != nil {
		return s.persistenceError(ctx, "logout", err)
	}

	s.log.Info(ctx, "signed out", "username", s.current.Username)
	s.current = nil
	return nil
}

// UpdateProfile overwrites the provided non-empty profile fields on the
// current account. Empty arguments leave the corresponding field unchanged;
// there is no way to clear a field through this operation.
func (s *Store) UpdateProfile(ctx context.Context, firstName, lastName, bio string) error {
	return s.mutateCurrent(ctx, "update profile", func(u *models.UserAccount) error {
		if firstName != "" {
			u.FirstName = firstName
		}
		if lastName != "" {
			u.LastName = lastName
		}
		if bio != "" {
			u.Bio = bio
		}
		return nil
	})
}

// UpdateUsername renames the current account, re-checking length and
// uniqueness against all other accounts.
func (s *Store) UpdateUsername(ctx context.Context, newUsername string) error {
	return s.mutateCurrent(ctx, "update username", func(u *models.UserAccount) error {
		if err := validation.Username(newUsername); err != nil {
			return err
		}
		for _, other := range s.users {
			if other.ID != u.ID && strings.EqualFold(other.Username, newUsername) {
				return common.ErrAlreadyExists
			}
		}
		u.Username = newUsername
		return nil
	})
}

// Verify marks the current account as verified.
func (s *Store) Verify(ctx context.Context) error {
	return s.mutateCurrent(ctx, "verify", func(u *models.UserAccount) error {
		u.IsVerified = true
		return nil
	})
}

// UpdateFollowerCount sets the follower counter on the current account.
// The counters are plain values; no follow graph backs them.
func (s *Store) UpdateFollowerCount(ctx context.Context, n int) error {
	return s.mutateCurrent(ctx, "update followers", func(u *models.UserAccount) error {
		u.Followers = n
		return nil
	})
}

// UpdateFollowingCount sets the following counter on the current account.
func (s *Store) UpdateFollowingCount(ctx context.Context, n int) error {
	return s.mutateCurrent(ctx, "update following", func(u *models.UserAccount) error {
		u.Following = n
		return nil
	})
}

// Current returns a copy of the signed-in account, or nil when signed out.
func (s *Store) Current() *models.UserAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// SignedIn reports whether a session is active.
func (s *Store) SignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Accounts returns a copy of the full registered set, for administrative
// listing. Empty when nothing is registered.
func (s *Store) Accounts() []*models.UserAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.UserAccount, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.Clone())
	}
	return out
}

// mutateCurrent applies fn to a copy of the current account, persists the
// updated registered set and session pointer atomically, and only then
// commits the change to memory. fn runs under the write lock and may read
// s.users for invariant checks.
func (s *Store) mutateCurrent(ctx context.Context, op string, fn func(u *models.UserAccount) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return common.ErrNotAuthenticated
	}

	updated := s.current.Clone()
	if err := fn(updated); err != nil {
		return err
	}

	users := s.snapshotUsers()
	for i, u := range users {
		if u.ID == updated.ID {
			users[i] = updated
			break
		}
	}

	if err := s.storage.SaveAll(ctx, users, updated); err != nil {
		return s.persistenceError(ctx, op, err)
	}

	s.users = users
	s.current = updated
	return nil
}

func containsID(users []*models.UserAccount, id string) bool {
	for _, u := range users {
		if u.ID == id {
			return true
		}
	}
	return false
}

// snapshotUsers returns a shallow copy of the registered-set slice, so a
// failed persist never leaves a half-applied append or replace behind.
func (s *Store) snapshotUsers() []*models.UserAccount {
	users := make([]*models.UserAccount, len(s.users))
	copy(users, s.users)
	return users
}

func (s *Store) persistenceError(ctx context.Context, op string, err error) error {
	s.log.Error(ctx, "storage operation failed", "op", op, "error", err)
	return fmt.Errorf("%w: %s: %w", common.ErrPersistence, op, err)
}
