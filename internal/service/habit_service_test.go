package service

import (
	"testing"

	"pokehub/backend/internal/models"
	"pokehub/backend/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type habitFixture struct {
	store      *memHabitStore
	friends    *memFriendshipStore
	devices    *memDeviceStore
	dispatcher *recordDispatcher
	svc        *HabitService
}

func newHabitFixture() *habitFixture {
	f := &habitFixture{
		store:      newMemHabitStore(),
		friends:    newMemFriendshipStore(),
		devices:    newMemDeviceStore(),
		dispatcher: &recordDispatcher{},
	}
	f.svc = NewHabitService(f.store, f.friends, f.devices, f.dispatcher)
	return f
}

func TestHabitService_Create_DayMask(t *testing.T) {
	tests := []struct {
		name    string
		day     string
		wantErr bool
	}{
		{name: "AllDays", day: "1111111", wantErr: false},
		{name: "Weekdays", day: "0111110", wantErr: false},
		{name: "NoDays", day: "0000000", wantErr: false},
		{name: "TooShort", day: "010101", wantErr: true},
		{name: "TooLong", day: "01010101", wantErr: true},
		{name: "BadChars", day: "01x1010", wantErr: true},
		{name: "Empty", day: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHabitFixture()
			habit, err := f.svc.Create(1, "warning", "Smoke", "Don't smoke!", tt.day, "04:23:10")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 0, habit.Rejected)
			assert.Equal(t, tt.day, habit.Day)
		})
	}
}

func TestHabitService_Create_RequiredFields(t *testing.T) {
	f := newHabitFixture()

	_, err := f.svc.Create(1, "", "Smoke", "desc", "1111111", "04:23:10")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.Create(1, "warning", "Smoke", "desc", "1111111", "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestHabitService_Reject_Escalation(t *testing.T) {
	f := newHabitFixture()
	owner := uint(1)

	// Two friends: one with two devices, one with one.
	f.friends.addFriendRow(owner, 2)
	f.friends.addFriendRow(2, owner)
	f.friends.addFriendRow(owner, 3)
	f.friends.addFriendRow(3, owner)
	require.NoError(t, f.devices.Create(&models.DeviceToken{UserID: 2, Token: "f2-a"}))
	require.NoError(t, f.devices.Create(&models.DeviceToken{UserID: 2, Token: "f2-b"}))
	require.NoError(t, f.devices.Create(&models.DeviceToken{UserID: 3, Token: "f3-a"}))

	habit, err := f.svc.Create(owner, "warning", "Smoke", "Don't smoke!", "1111111", "08:00:00")
	require.NoError(t, err)

	// Two rejections stay quiet.
	for i := 1; i <= 2; i++ {
		habit, err = f.svc.Reject(habit.ID, owner)
		require.NoError(t, err)
		assert.Equal(t, i, habit.Rejected)
	}
	assert.Empty(t, f.dispatcher.sent())

	// Third rejection crosses the threshold: one notification covering
	// every friend device.
	habit, err = f.svc.Reject(habit.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, 3, habit.Rejected)

	sent := f.dispatcher.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "Habit snooze warning", sent[0].Title)
	assert.Len(t, sent[0].Devices, 3)
	assert.Equal(t, notify.TypeHabitSnooze, sent[0].Devices[0].Metadata["notification_type"])

	// The counter does not reset, so the next rejection re-fires.
	habit, err = f.svc.Reject(habit.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, 4, habit.Rejected)
	assert.Len(t, f.dispatcher.sent(), 2)
}

func TestHabitService_Reject_Ownership(t *testing.T) {
	f := newHabitFixture()
	habit, err := f.svc.Create(1, "warning", "Smoke", "desc", "1111111", "08:00:00")
	require.NoError(t, err)

	_, err = f.svc.Reject(habit.ID, 2)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.Reject(999, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHabitService_Done_ResetsCounter(t *testing.T) {
	f := newHabitFixture()
	habit, err := f.svc.Create(1, "warning", "Smoke", "desc", "1111111", "08:00:00")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		habit, err = f.svc.Reject(habit.ID, 1)
		require.NoError(t, err)
	}
	assert.Equal(t, 5, habit.Rejected)

	habit, err = f.svc.Done(habit.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, habit.Rejected)

	_, err = f.svc.Done(habit.ID, 2)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestHabitService_List(t *testing.T) {
	f := newHabitFixture()
	_, err := f.svc.Create(1, "warning", "Smoke", "desc", "1111111", "08:00:00")
	require.NoError(t, err)
	_, err = f.svc.Create(2, "message", "Water", "desc", "1010101", "10:00:00")
	require.NoError(t, err)

	habits, err := f.svc.List(1)
	require.NoError(t, err)
	assert.Len(t, habits, 1)
	assert.Equal(t, "Smoke", habits[0].Name)
}
