package service

import (
	"strings"

	"pokehub/backend/internal/mail"
	"pokehub/backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration, login and password recovery.
// Token issuance itself lives in pkg/jwt; this service only resolves
// credentials to a user.
type AuthService struct {
	users  UserStore
	mailer mail.Sender
}

func NewAuthService(users UserStore, mailer mail.Sender) *AuthService {
	return &AuthService{users: users, mailer: mailer}
}

// Register creates a new account with a bcrypt password hash.
func (s *AuthService) Register(firstname, lastname, email, password string) (*models.User, error) {
	existing, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Firstname:    firstname,
		Lastname:     lastname,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login resolves email/password credentials to the user.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ForgotPassword replaces the account password with a generated
// one-time password and mails it to the user.
func (s *AuthService) ForgotPassword(email string) error {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	oneTime := strings.Split(uuid.NewString(), "-")[0]
	hash, err := bcrypt.GenerateFromPassword([]byte(oneTime), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hash)
	if err := s.users.Update(user); err != nil {
		return err
	}

	return s.mailer.Send(user.Email, "Your new password", "Your new password is: "+oneTime)
}
