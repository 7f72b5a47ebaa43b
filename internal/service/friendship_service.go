package service

import (
	"fmt"
	"strconv"

	"pokehub/backend/internal/mail"
	"pokehub/backend/internal/models"
	"pokehub/backend/internal/notify"
	"pokehub/backend/pkg/logger"
)

// FriendshipService owns the friend-request lifecycle and the
// symmetric friendship it materializes.
type FriendshipService struct {
	users      UserStore
	store      FriendshipStore
	devices    DeviceTokenStore
	dispatcher notify.Dispatcher
	mailer     mail.Sender
}

func NewFriendshipService(users UserStore, store FriendshipStore, devices DeviceTokenStore, dispatcher notify.Dispatcher, mailer mail.Sender) *FriendshipService {
	return &FriendshipService{
		users:      users,
		store:      store,
		devices:    devices,
		dispatcher: dispatcher,
		mailer:     mailer,
	}
}

// SendRequest creates a pending request from requester to target and
// notifies the target. Notification and mail failures never roll the
// request back.
func (s *FriendshipService) SendRequest(requesterID, targetID uint) error {
	if requesterID == targetID {
		return fmt.Errorf("%w: cannot send a friend request to yourself", ErrValidation)
	}

	target, err := s.users.Get(targetID)
	if err != nil {
		return err
	}
	if target == nil {
		return ErrNotFound
	}

	existing, err := s.store.FindPendingRequest(requesterID, targetID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrDuplicateRequest
	}

	reciprocal, err := s.store.FindPendingRequest(targetID, requesterID)
	if err != nil {
		return err
	}
	if reciprocal != nil {
		return ErrReciprocalPending
	}

	requester, err := s.users.Get(requesterID)
	if err != nil {
		return err
	}
	if requester == nil {
		return ErrNotFound
	}

	request := &models.FriendRequest{
		OwnerID:  requesterID,
		TargetID: targetID,
		Status:   false,
	}
	if err := s.store.CreateRequest(request); err != nil {
		return err
	}

	if err := s.mailer.Send(target.Email, "New Friend Request", "You have a new Friend Request from "+requester.FullName()); err != nil {
		logger.Warn("friend request mail failed", "error", err, "target", target.ID)
	}

	tokens, err := s.devices.ListByUser(targetID)
	if err != nil {
		logger.Warn("device token lookup failed", "error", err, "target", targetID)
		return nil
	}

	n := notify.Notification{
		Title: "New Friend Request",
		Body:  "You have a new Friend Request from " + requester.FullName(),
	}
	for _, t := range tokens {
		n.Devices = append(n.Devices, notify.Device{
			Token: t.Token,
			Metadata: map[string]string{
				"friend_request_id": strconv.FormatUint(uint64(request.ID), 10),
				"user_id":           strconv.FormatUint(uint64(requesterID), 10),
				"notification_type": notify.TypeFriendRequest,
			},
		})
	}
	if len(n.Devices) > 0 {
		s.dispatcher.Dispatch(n)
	}

	return nil
}

// AcceptRequest turns a pending request into a friendship. Both friend
// rows and the request deletion commit together or not at all. Only
// the request's target may accept.
func (s *FriendshipService) AcceptRequest(requestID, actingUserID uint) error {
	request, err := s.store.GetRequest(requestID)
	if err != nil {
		return err
	}
	if request == nil {
		return ErrNotFound
	}
	if request.TargetID != actingUserID {
		return ErrForbidden
	}

	return s.store.AcceptRequest(request)
}

// DeclineRequest deletes a pending request with no further effect.
// Only the request's target may decline.
func (s *FriendshipService) DeclineRequest(requestID, actingUserID uint) error {
	request, err := s.store.GetRequest(requestID)
	if err != nil {
		return err
	}
	if request == nil {
		return ErrNotFound
	}
	if request.TargetID != actingUserID {
		return ErrForbidden
	}

	return s.store.DeleteRequest(requestID)
}

// ListIncoming returns the pending requests targeting the user, with
// the requesting user attached.
func (s *FriendshipService) ListIncoming(userID uint) ([]models.FriendRequest, error) {
	return s.store.ListIncomingRequests(userID)
}

// ListFriends returns the user's friendships with the counterpart user
// attached.
func (s *FriendshipService) ListFriends(userID uint) ([]models.Friend, error) {
	return s.store.ListFriends(userID)
}

// Unfriend removes both rows of the friendship pair.
func (s *FriendshipService) Unfriend(userID, friendID uint) error {
	friends, err := s.store.AreFriends(userID, friendID)
	if err != nil {
		return err
	}
	if !friends {
		return ErrNotFound
	}

	return s.store.DeleteFriendship(userID, friendID)
}
