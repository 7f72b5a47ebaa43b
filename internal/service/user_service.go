package service

import "pokehub/backend/internal/models"

// UserService is the user directory: lookups, substring search and
// profile updates.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.users.Get(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// Search matches the query case-insensitively against firstname,
// lastname and email.
func (s *UserService) Search(query string) ([]models.User, error) {
	if query == "" {
		return nil, ErrValidation
	}
	return s.users.Search(query)
}

// Update replaces the user's profile fields. Field presence and email
// shape are validated at the request boundary.
func (s *UserService) Update(id uint, firstname, lastname, email string) (*models.User, error) {
	user, err := s.users.Get(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	user.Firstname = firstname
	user.Lastname = lastname
	user.Email = email
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
