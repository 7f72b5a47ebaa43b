package service

import (
	"testing"

	"pokehub/backend/internal/models"
	"pokehub/backend/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pokeFixture struct {
	store      *memPokeStore
	users      *memUserStore
	devices    *memDeviceStore
	friends    *memFriendshipStore
	dispatcher *recordDispatcher
	svc        *PokeService
}

func newPokeFixture() *pokeFixture {
	f := &pokeFixture{
		store:      newMemPokeStore(),
		users:      newMemUserStore(),
		devices:    newMemDeviceStore(),
		friends:    newMemFriendshipStore(),
		dispatcher: &recordDispatcher{},
	}
	f.svc = NewPokeService(f.store, f.users, f.devices, f.friends, f.dispatcher)
	return f
}

func TestPokeService_PrototypeOwnership(t *testing.T) {
	f := newPokeFixture()
	owner := f.users.add("Alice", "Arnold", "alice@example.com")
	other := f.users.add("Bob", "Barker", "bob@example.com")

	prototype, err := f.svc.CreatePrototype(owner, "Lunch", "Coming to lunch?")
	require.NoError(t, err)

	t.Run("UpdateByOther", func(t *testing.T) {
		_, err := f.svc.UpdatePrototype(prototype.ID, other, "x", "y")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("DeleteByOther", func(t *testing.T) {
		err := f.svc.DeletePrototype(prototype.ID, other)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("UpdateByOwner", func(t *testing.T) {
		updated, err := f.svc.UpdatePrototype(prototype.ID, owner, "Coffee", "Coffee break?")
		require.NoError(t, err)
		assert.Equal(t, "Coffee", updated.Name)
		assert.Equal(t, "Coffee break?", updated.Message)
	})

	t.Run("DeleteByOwner", func(t *testing.T) {
		require.NoError(t, f.svc.DeletePrototype(prototype.ID, owner))
		_, err := f.svc.GetPrototype(prototype.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPokeService_SendPoke(t *testing.T) {
	f := newPokeFixture()
	sender := f.users.add("Alice", "Arnold", "alice@example.com")
	target := f.users.add("Bob", "Barker", "bob@example.com")

	prototype, err := f.svc.CreatePrototype(sender, "Lunch", "Coming to lunch?")
	require.NoError(t, err)

	t.Run("NoDeviceToken", func(t *testing.T) {
		_, err := f.svc.SendPoke(prototype.ID, sender, target)
		assert.ErrorIs(t, err, ErrNoDeviceToken)
		// Delivery capability is checked before persistence.
		assert.Empty(t, f.store.pokes)
	})

	require.NoError(t, f.devices.Create(&models.DeviceToken{UserID: target, Token: "dev-1"}))
	require.NoError(t, f.devices.Create(&models.DeviceToken{UserID: target, Token: "dev-2"}))

	t.Run("Success", func(t *testing.T) {
		poke, err := f.svc.SendPoke(prototype.ID, sender, target)
		require.NoError(t, err)
		assert.Equal(t, "", poke.Response)
		assert.Equal(t, sender, poke.OwnerID)
		assert.Equal(t, target, poke.TargetID)

		sent := f.dispatcher.sent()
		require.Len(t, sent, 1)
		assert.Equal(t, "Lunch", sent[0].Title)
		assert.Equal(t, "Coming to lunch?", sent[0].Body)
		require.Len(t, sent[0].Devices, 2)
		assert.Equal(t, notify.TypePoke, sent[0].Devices[0].Metadata["notification_type"])
		assert.Equal(t, "1", sent[0].Devices[0].Metadata["prototype_id"])
	})

	t.Run("UnknownPrototype", func(t *testing.T) {
		_, err := f.svc.SendPoke(999, sender, target)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("UnknownTarget", func(t *testing.T) {
		_, err := f.svc.SendPoke(prototype.ID, sender, 999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPokeService_ListPokes(t *testing.T) {
	f := newPokeFixture()
	alice := f.users.add("Alice", "Arnold", "alice@example.com")
	bob := f.users.add("Bob", "Barker", "bob@example.com")

	t.Run("NotFriends", func(t *testing.T) {
		_, err := f.svc.ListPokes(alice, bob)
		assert.ErrorIs(t, err, ErrNotFriends)
	})

	f.friends.addFriendRow(alice, bob)
	f.friends.addFriendRow(bob, alice)

	require.NoError(t, f.store.CreatePoke(&models.Poke{PrototypeID: 1, OwnerID: alice, TargetID: bob}))
	require.NoError(t, f.store.CreatePoke(&models.Poke{PrototypeID: 1, OwnerID: bob, TargetID: alice}))

	t.Run("BothDirections", func(t *testing.T) {
		pokes, err := f.svc.ListPokes(alice, bob)
		require.NoError(t, err)
		assert.Len(t, pokes, 2)
	})
}

func TestPokeService_Respond(t *testing.T) {
	f := newPokeFixture()
	sender := f.users.add("Alice", "Arnold", "alice@example.com")
	target := f.users.add("Bob", "Barker", "bob@example.com")
	require.NoError(t, f.devices.Create(&models.DeviceToken{UserID: sender, Token: "alice-dev"}))

	poke := &models.Poke{PrototypeID: 1, OwnerID: sender, TargetID: target}
	require.NoError(t, f.store.CreatePoke(poke))

	t.Run("NotTarget", func(t *testing.T) {
		_, err := f.svc.Respond(poke.ID, sender, "sure")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("EmptyResponse", func(t *testing.T) {
		_, err := f.svc.Respond(poke.ID, target, "")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Success", func(t *testing.T) {
		updated, err := f.svc.Respond(poke.ID, target, "On my way")
		require.NoError(t, err)
		assert.Equal(t, "On my way", updated.Response)

		// Sender is notified on their own devices.
		sent := f.dispatcher.sent()
		require.Len(t, sent, 1)
		assert.Equal(t, "New response for your poke", sent[0].Title)
		require.Len(t, sent[0].Devices, 1)
		assert.Equal(t, "alice-dev", sent[0].Devices[0].Token)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := f.svc.Respond(999, target, "hello")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPokeService_FixedResponses(t *testing.T) {
	f := newPokeFixture()
	sender := f.users.add("Alice", "Arnold", "alice@example.com")
	target := f.users.add("Bob", "Barker", "bob@example.com")

	yes := &models.Poke{PrototypeID: 1, OwnerID: sender, TargetID: target}
	require.NoError(t, f.store.CreatePoke(yes))
	no := &models.Poke{PrototypeID: 1, OwnerID: sender, TargetID: target}
	require.NoError(t, f.store.CreatePoke(no))

	updated, err := f.svc.RespondYes(yes.ID, target)
	require.NoError(t, err)
	assert.Equal(t, "Yes", updated.Response)

	updated, err = f.svc.RespondNo(no.ID, target)
	require.NoError(t, err)
	assert.Equal(t, "No", updated.Response)

	// Fixed responses do not notify the sender.
	assert.Empty(t, f.dispatcher.sent())
}
