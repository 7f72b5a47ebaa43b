package service

import (
	"regexp"
	"strconv"

	"pokehub/backend/internal/models"
	"pokehub/backend/internal/notify"
	"pokehub/backend/pkg/logger"
)

var dayMaskPattern = regexp.MustCompile(`^[01]{7}$`)

// HabitService manages recurring reminders and the snooze escalation
// that tattles on the owner to their friends.
type HabitService struct {
	store      HabitStore
	friends    FriendshipStore
	devices    DeviceTokenStore
	dispatcher notify.Dispatcher
}

func NewHabitService(store HabitStore, friends FriendshipStore, devices DeviceTokenStore, dispatcher notify.Dispatcher) *HabitService {
	return &HabitService{
		store:      store,
		friends:    friends,
		devices:    devices,
		dispatcher: dispatcher,
	}
}

func (s *HabitService) List(ownerID uint) ([]models.Habit, error) {
	return s.store.ListByOwner(ownerID)
}

// Create validates and persists a new habit. Day must be exactly seven
// characters of 0/1, one flag per weekday.
func (s *HabitService) Create(ownerID uint, habitType, name, description, day, hour string) (*models.Habit, error) {
	if habitType == "" || name == "" || description == "" || hour == "" {
		return nil, ErrValidation
	}
	if !dayMaskPattern.MatchString(day) {
		return nil, ErrValidation
	}

	habit := &models.Habit{
		Type:        habitType,
		Name:        name,
		Description: description,
		Day:         day,
		Hour:        hour,
		Rejected:    0,
		OwnerID:     ownerID,
	}
	if err := s.store.Create(habit); err != nil {
		return nil, err
	}
	return habit, nil
}

// Reject increments the snooze counter. Once the counter reaches the
// threshold every friend of the owner gets a warning push, and because
// the counter only resets on Done, each further rejection fires it
// again.
func (s *HabitService) Reject(habitID, actingUserID uint) (*models.Habit, error) {
	habit, err := s.store.Get(habitID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, ErrNotFound
	}
	if habit.OwnerID != actingUserID {
		return nil, ErrForbidden
	}

	habit.Rejected++
	if err := s.store.Update(habit); err != nil {
		return nil, err
	}

	if habit.Rejected >= models.SnoozeThreshold {
		s.warnFriends(habit.OwnerID)
	}

	return habit, nil
}

// Done marks the habit completed, resetting the snooze counter.
func (s *HabitService) Done(habitID, actingUserID uint) (*models.Habit, error) {
	habit, err := s.store.Get(habitID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, ErrNotFound
	}
	if habit.OwnerID != actingUserID {
		return nil, ErrForbidden
	}

	habit.Rejected = 0
	if err := s.store.Update(habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *HabitService) warnFriends(ownerID uint) {
	friends, err := s.friends.ListFriends(ownerID)
	if err != nil {
		logger.Warn("friend lookup failed for snooze warning", "error", err, "owner", ownerID)
		return
	}

	n := notify.Notification{
		Title: "Habit snooze warning",
		Body:  "Hi! Your friend snoozed a habit 3 times! Check them out and poke!",
	}
	for _, friend := range friends {
		tokens, err := s.devices.ListByUser(friend.FriendID)
		if err != nil {
			logger.Warn("device token lookup failed", "error", err, "user", friend.FriendID)
			continue
		}
		for _, t := range tokens {
			n.Devices = append(n.Devices, notify.Device{
				Token: t.Token,
				Metadata: map[string]string{
					"friend_id":         strconv.FormatUint(uint64(ownerID), 10),
					"notification_type": notify.TypeHabitSnooze,
				},
			})
		}
	}
	if len(n.Devices) > 0 {
		s.dispatcher.Dispatch(n)
	}
}
