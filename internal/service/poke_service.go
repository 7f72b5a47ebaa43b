package service

import (
	"strconv"

	"pokehub/backend/internal/models"
	"pokehub/backend/internal/notify"
	"pokehub/backend/pkg/logger"
)

// PokeService covers poke prototypes (reusable templates) and the
// pokes sent from them.
type PokeService struct {
	store      PokeStore
	users      UserStore
	devices    DeviceTokenStore
	friends    FriendshipStore
	dispatcher notify.Dispatcher
}

func NewPokeService(store PokeStore, users UserStore, devices DeviceTokenStore, friends FriendshipStore, dispatcher notify.Dispatcher) *PokeService {
	return &PokeService{
		store:      store,
		users:      users,
		devices:    devices,
		friends:    friends,
		dispatcher: dispatcher,
	}
}

func (s *PokeService) ListPrototypes(ownerID uint) ([]models.PokePrototype, error) {
	return s.store.ListPrototypes(ownerID)
}

func (s *PokeService) CreatePrototype(ownerID uint, name, message string) (*models.PokePrototype, error) {
	prototype := &models.PokePrototype{
		Name:    name,
		Message: message,
		OwnerID: ownerID,
	}
	if err := s.store.CreatePrototype(prototype); err != nil {
		return nil, err
	}
	return prototype, nil
}

func (s *PokeService) GetPrototype(id uint) (*models.PokePrototype, error) {
	prototype, err := s.store.GetPrototype(id)
	if err != nil {
		return nil, err
	}
	if prototype == nil {
		return nil, ErrNotFound
	}
	return prototype, nil
}

// UpdatePrototype replaces name and message. Only the owner may
// update.
func (s *PokeService) UpdatePrototype(id, actingUserID uint, name, message string) (*models.PokePrototype, error) {
	prototype, err := s.store.GetPrototype(id)
	if err != nil {
		return nil, err
	}
	if prototype == nil {
		return nil, ErrNotFound
	}
	if prototype.OwnerID != actingUserID {
		return nil, ErrForbidden
	}

	prototype.Name = name
	prototype.Message = message
	if err := s.store.UpdatePrototype(prototype); err != nil {
		return nil, err
	}
	return prototype, nil
}

// DeletePrototype removes the template. Only the owner may delete.
func (s *PokeService) DeletePrototype(id, actingUserID uint) error {
	prototype, err := s.store.GetPrototype(id)
	if err != nil {
		return err
	}
	if prototype == nil {
		return ErrNotFound
	}
	if prototype.OwnerID != actingUserID {
		return ErrForbidden
	}

	return s.store.DeletePrototype(id)
}

// SendPoke persists a poke from the prototype and pushes it to every
// device of the target. Delivery capability is checked first: a target
// with no registered device gets no poke record at all.
func (s *PokeService) SendPoke(prototypeID, senderID, targetID uint) (*models.Poke, error) {
	prototype, err := s.store.GetPrototype(prototypeID)
	if err != nil {
		return nil, err
	}
	if prototype == nil {
		return nil, ErrNotFound
	}

	target, err := s.users.Get(targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrNotFound
	}

	tokens, err := s.devices.ListByUser(targetID)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, ErrNoDeviceToken
	}

	poke := &models.Poke{
		PrototypeID: prototypeID,
		OwnerID:     senderID,
		TargetID:    targetID,
		Response:    "",
	}
	if err := s.store.CreatePoke(poke); err != nil {
		return nil, err
	}

	n := notify.Notification{
		Title: prototype.Name,
		Body:  prototype.Message,
	}
	for _, t := range tokens {
		n.Devices = append(n.Devices, notify.Device{
			Token: t.Token,
			Metadata: map[string]string{
				"prototype_id":      strconv.FormatUint(uint64(prototypeID), 10),
				"friend_id":         strconv.FormatUint(uint64(senderID), 10),
				"notification_type": notify.TypePoke,
			},
		})
	}
	s.dispatcher.Dispatch(n)

	return poke, nil
}

// ListPokes returns the poke history between the user and a friend,
// both directions, oldest first. The two must actually be friends.
func (s *PokeService) ListPokes(userID, friendID uint) ([]models.Poke, error) {
	friends, err := s.friends.AreFriends(userID, friendID)
	if err != nil {
		return nil, err
	}
	if !friends {
		return nil, ErrNotFriends
	}

	return s.store.ListPokesBetween(userID, friendID)
}

// Respond sets the poke's response text and notifies the original
// sender. Only the poke's target may respond.
func (s *PokeService) Respond(pokeID, actingUserID uint, response string) (*models.Poke, error) {
	if response == "" {
		return nil, ErrValidation
	}

	poke, err := s.respond(pokeID, actingUserID, response)
	if err != nil {
		return nil, err
	}

	responder, err := s.users.Get(actingUserID)
	if err != nil || responder == nil {
		logger.Warn("responder lookup failed for poke notification", "poke", pokeID)
		return poke, nil
	}

	tokens, err := s.devices.ListByUser(poke.OwnerID)
	if err != nil {
		logger.Warn("device token lookup failed", "error", err, "target", poke.OwnerID)
		return poke, nil
	}

	n := notify.Notification{
		Title: "New response for your poke",
		Body:  responder.FullName() + " responded for your poke with: " + response,
	}
	for _, t := range tokens {
		n.Devices = append(n.Devices, notify.Device{
			Token: t.Token,
			Metadata: map[string]string{
				"friend_id":         strconv.FormatUint(uint64(actingUserID), 10),
				"notification_type": notify.TypePoke,
			},
		})
	}
	if len(n.Devices) > 0 {
		s.dispatcher.Dispatch(n)
	}

	return poke, nil
}

// RespondYes records a fixed affirmative response.
func (s *PokeService) RespondYes(pokeID, actingUserID uint) (*models.Poke, error) {
	return s.respond(pokeID, actingUserID, "Yes")
}

// RespondNo records a fixed negative response.
func (s *PokeService) RespondNo(pokeID, actingUserID uint) (*models.Poke, error) {
	return s.respond(pokeID, actingUserID, "No")
}

func (s *PokeService) respond(pokeID, actingUserID uint, response string) (*models.Poke, error) {
	poke, err := s.store.GetPoke(pokeID)
	if err != nil {
		return nil, err
	}
	if poke == nil {
		return nil, ErrNotFound
	}
	if poke.TargetID != actingUserID {
		return nil, ErrForbidden
	}

	poke.Response = response
	if err := s.store.UpdatePoke(poke); err != nil {
		return nil, err
	}
	return poke, nil
}
