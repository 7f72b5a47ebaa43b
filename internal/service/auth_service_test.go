package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	users := newMemUserStore()
	mailer := &recordMailer{}
	svc := NewAuthService(users, mailer)

	user, err := svc.Register("Lajos", "Kovács", "lajos@example.com", "password123")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "password123", user.PasswordHash)

	t.Run("DuplicateEmail", func(t *testing.T) {
		_, err := svc.Register("Other", "Person", "lajos@example.com", "password123")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("LoginSuccess", func(t *testing.T) {
		loggedIn, err := svc.Login("lajos@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, user.ID, loggedIn.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, err := svc.Login("lajos@example.com", "nope")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, err := svc.Login("nobody@example.com", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	users := newMemUserStore()
	mailer := &recordMailer{}
	svc := NewAuthService(users, mailer)

	user, err := svc.Register("Lajos", "Kovács", "lajos@example.com", "password123")
	require.NoError(t, err)
	oldHash := user.PasswordHash

	require.NoError(t, svc.ForgotPassword("lajos@example.com"))

	require.Len(t, mailer.mails, 1)
	assert.Equal(t, "lajos@example.com", mailer.mails[0].to)

	stored, err := users.Get(user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, oldHash, stored.PasswordHash)

	// The mailed one-time password matches the stored hash.
	oneTime := mailer.mails[0].body[len("Your new password is: "):]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(oneTime)))

	t.Run("UnknownEmail", func(t *testing.T) {
		err := svc.ForgotPassword("nobody@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
