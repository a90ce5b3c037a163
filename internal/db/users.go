package db

import (
	"context"
	"time"

	"github.com/ldmoreira/fuellog/internal/apperr"
	"github.com/ldmoreira/fuellog/internal/models"
)

// storedUser is the persisted shape of a user. It exists because
// models.User hides the password hash from JSON responses, while the store
// must keep it.
type storedUser struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"passwordHash"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
}

func (u storedUser) toModel() models.User {
	return models.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		LastLogin:    u.LastLogin,
	}
}

// UserStore persists owner accounts through the record store under a single
// key.
type UserStore struct {
	Store RecordStore
}

// NewUserStore returns a UserStore backed by store.
func NewUserStore(store RecordStore) *UserStore {
	return &UserStore{Store: store}
}

func (s *UserStore) load(ctx context.Context) ([]storedUser, error) {
	var users []storedUser
	if _, err := s.Store.Get(ctx, UsersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// InsertUser mints a fresh id for the user, appends it and persists the
// list. The id is guaranteed greater than every stored id, so accounts
// created within the same millisecond never collide.
func (s *UserStore) InsertUser(ctx context.Context, user models.User) (*models.User, error) {
	users, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	var lastID int64
	for _, u := range users {
		if n := models.NumericID(u.ID); n > lastID {
			lastID = n
		}
	}
	user.ID = models.NewTimeID(lastID)
	users = append(users, storedUser{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt,
		LastLogin:    user.LastLogin,
	})
	if err := s.Store.Set(ctx, UsersKey, users); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindUserByUsername returns the user with the given username.
func (s *UserStore) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Username == username {
			m := u.toModel()
			return &m, nil
		}
	}
	return nil, apperr.NewNotFound("user", username)
}

// FindUserByID returns the user with the given id.
func (s *UserStore) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	users, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.ID == id {
			m := u.toModel()
			return &m, nil
		}
	}
	return nil, apperr.NewNotFound("user", id)
}

// UpdateLastLogin stamps the user's last login time and persists the list.
func (s *UserStore) UpdateLastLogin(ctx context.Context, id string) error {
	users, err := s.load(ctx)
	if err != nil {
		return err
	}
	now := time.Now()
	for i := range users {
		if users[i].ID == id {
			users[i].LastLogin = &now
			return s.Store.Set(ctx, UsersKey, users)
		}
	}
	return apperr.NewNotFound("user", id)
}
