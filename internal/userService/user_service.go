package user

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"car-auction/internal/auctionerrors"
	model "car-auction/internal/models"
	"car-auction/utils"
)

// UserService is a concurrency-safe in-memory user registry.
type UserService struct {
	users sync.Map // key: userID -> value: model.User
	ids   *utils.Sequence
}

// NewUserService creates a registry drawing user ids from the given sequence.
func NewUserService(ids *utils.Sequence) *UserService {
	return &UserService{ids: ids}
}

// AddUser registers a user under a freshly assigned id.
func (s *UserService) AddUser(name string) (model.User, error) {
	if strings.TrimSpace(name) == "" {
		return model.User{}, fmt.Errorf("add user: name must not be empty")
	}
	u := model.User{ID: s.ids.Next(), Name: name}
	s.users.Store(u.ID, u)
	return u, nil
}

// GetUserByID returns the user or ErrUserNotFound.
func (s *UserService) GetUserByID(userID int) (model.User, error) {
	v, ok := s.users.Load(userID)
	if !ok {
		return model.User{}, fmt.Errorf("user %d: %w", userID, auctionerrors.ErrUserNotFound)
	}
	return v.(model.User), nil
}

// GetUserByName returns the first user whose name contains the given text,
// case-insensitively.
func (s *UserService) GetUserByName(name string) (model.User, error) {
	var found model.User
	ok := false
	s.users.Range(func(_, v any) bool {
		u := v.(model.User)
		if strings.Contains(strings.ToLower(u.Name), strings.ToLower(name)) {
			if !ok || u.ID < found.ID {
				found = u
				ok = true
			}
		}
		return true
	})
	if !ok {
		return model.User{}, fmt.Errorf("user %q: %w", name, auctionerrors.ErrUserNotFound)
	}
	return found, nil
}

// ListUsers returns all registered users ordered by id.
func (s *UserService) ListUsers() []model.User {
	users := []model.User{}
	s.users.Range(func(_, v any) bool {
		users = append(users, v.(model.User))
		return true
	})
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}
