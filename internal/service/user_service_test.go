package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Search(t *testing.T) {
	users := newMemUserStore()
	svc := NewUserService(users)

	users.add("Lajos", "Kovács", "lajos.kovacs@example.com")
	users.add("Kelemen", "Tenkes", "tenkes.kelemen@example.com")

	t.Run("MatchesLastname", func(t *testing.T) {
		found, err := svc.Search("kov")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Kovács", found[0].Lastname)
	})

	t.Run("MatchesEmail", func(t *testing.T) {
		found, err := svc.Search("tenkes.kel")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Kelemen", found[0].Firstname)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		found, err := svc.Search("LAJOS")
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("NoMatch", func(t *testing.T) {
		found, err := svc.Search("zzz")
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("EmptyQuery", func(t *testing.T) {
		_, err := svc.Search("")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestUserService_Update(t *testing.T) {
	users := newMemUserStore()
	svc := NewUserService(users)
	id := users.add("Lajos", "Kovács", "lajos.kovacs@example.com")

	updated, err := svc.Update(id, "Lajos", "Nagy", "lajos.nagy@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Nagy", updated.Lastname)
	assert.Equal(t, "lajos.nagy@example.com", updated.Email)

	stored, err := users.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Nagy", stored.Lastname)

	_, err = svc.Update(999, "a", "b", "c@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_Get(t *testing.T) {
	users := newMemUserStore()
	svc := NewUserService(users)
	id := users.add("Lajos", "Kovács", "lajos.kovacs@example.com")

	user, err := svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Lajos Kovács", user.FullName())

	_, err = svc.Get(999)
	assert.ErrorIs(t, err, ErrNotFound)
}
