package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"userbase/internal/models"
)

// MemoryStore is an in-memory implementation of UserStore. It backs the
// tests so the auth service and the handlers can run without a MongoDB
// instance.
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[int64]models.User
	nextID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[int64]models.User)}
}

func (s *MemoryStore) Insert(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Same constraint the email_unique index enforces in Mongo.
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return fmt.Errorf("duplicate key: email %q already exists", user.Email)
		}
	}

	s.nextID++
	user.ID = s.nextID

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) FindByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) FindByIDAndToken(_ context.Context, id int64, refreshToken string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok || user.RefreshToken != refreshToken {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) FindAll(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	return users, nil
}

func (s *MemoryStore) UpdateProfile(_ context.Context, id int64, update ProfileUpdate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return false, nil
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Gender != nil {
		user.Gender = *update.Gender
	}
	if update.PhoneNo != nil {
		user.PhoneNo = *update.PhoneNo
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.DOB != nil {
		user.DOB = *update.DOB
	}
	if update.Address != nil {
		user.Address = *update.Address
	}
	user.UpdatedAt = time.Now()

	s.users[id] = user
	return true, nil
}

func (s *MemoryStore) SetSession(_ context.Context, id int64, refreshToken string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return false, nil
	}

	user.RefreshToken = refreshToken
	user.IsLogin = true
	user.UpdatedAt = time.Now()
	s.users[id] = user
	return true, nil
}

func (s *MemoryStore) RotateSession(_ context.Context, id int64, current, next string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok || user.RefreshToken != current {
		return false, nil
	}

	user.RefreshToken = next
	user.IsLogin = true
	user.UpdatedAt = time.Now()
	s.users[id] = user
	return true, nil
}

func (s *MemoryStore) ClearSession(_ context.Context, id int64, current string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok || user.RefreshToken != current {
		return false, nil
	}

	user.RefreshToken = ""
	user.IsLogin = false
	user.UpdatedAt = time.Now()
	s.users[id] = user
	return true, nil
}

func (s *MemoryStore) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}
