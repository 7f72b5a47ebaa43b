package service

import "pokehub/backend/internal/models"

// Store interfaces the services depend on. The gorm implementations
// live in internal/repository; tests substitute in-memory fakes.
// Lookups return (nil, nil) when the record does not exist.

type UserStore interface {
	Get(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Search(query string) ([]models.User, error)
}

type DeviceTokenStore interface {
	Exists(userID uint, token string) (bool, error)
	Create(token *models.DeviceToken) error
	ListByUser(userID uint) ([]models.DeviceToken, error)
}

type FriendshipStore interface {
	GetRequest(id uint) (*models.FriendRequest, error)
	FindPendingRequest(ownerID, targetID uint) (*models.FriendRequest, error)
	CreateRequest(request *models.FriendRequest) error
	DeleteRequest(id uint) error
	ListIncomingRequests(targetID uint) ([]models.FriendRequest, error)

	// AcceptRequest creates both friend rows and deletes the request
	// in one transaction.
	AcceptRequest(request *models.FriendRequest) error

	ListFriends(userID uint) ([]models.Friend, error)
	AreFriends(userID, friendID uint) (bool, error)

	// DeleteFriendship removes both rows of the pair in one
	// transaction.
	DeleteFriendship(userID, friendID uint) error
}

type PokeStore interface {
	GetPrototype(id uint) (*models.PokePrototype, error)
	ListPrototypes(ownerID uint) ([]models.PokePrototype, error)
	CreatePrototype(prototype *models.PokePrototype) error
	UpdatePrototype(prototype *models.PokePrototype) error
	DeletePrototype(id uint) error

	GetPoke(id uint) (*models.Poke, error)
	CreatePoke(poke *models.Poke) error
	UpdatePoke(poke *models.Poke) error

	// ListPokesBetween returns pokes in both directions between the
	// two users, oldest first.
	ListPokesBetween(userID, friendID uint) ([]models.Poke, error)
}

type HabitStore interface {
	Get(id uint) (*models.Habit, error)
	ListByOwner(ownerID uint) ([]models.Habit, error)
	Create(habit *models.Habit) error
	Update(habit *models.Habit) error
}
