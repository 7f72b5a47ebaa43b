package service

import (
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	"pokehub/backend/internal/models"
	"pokehub/backend/internal/notify"
	"pokehub/backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// In-memory store fakes backing the service tests.

type memUserStore struct {
	users  map[uint]models.User
	nextID uint
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uint]models.User), nextID: 1}
}

func (s *memUserStore) Get(id uint) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (s *memUserStore) GetByEmail(email string) (*models.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (s *memUserStore) Create(user *models.User) error {
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStore) Update(user *models.User) error {
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStore) Search(query string) ([]models.User, error) {
	q := strings.ToLower(query)
	var matches []models.User
	for _, user := range s.users {
		if strings.Contains(strings.ToLower(user.Firstname), q) ||
			strings.Contains(strings.ToLower(user.Lastname), q) ||
			strings.Contains(strings.ToLower(user.Email), q) {
			matches = append(matches, user)
		}
	}
	return matches, nil
}

func (s *memUserStore) add(firstname, lastname, email string) uint {
	user := &models.User{Firstname: firstname, Lastname: lastname, Email: email}
	_ = s.Create(user)
	return user.ID
}

type memDeviceStore struct {
	tokens []models.DeviceToken
	nextID uint
}

func newMemDeviceStore() *memDeviceStore {
	return &memDeviceStore{nextID: 1}
}

func (s *memDeviceStore) Exists(userID uint, token string) (bool, error) {
	for _, t := range s.tokens {
		if t.UserID == userID && t.Token == token {
			return true, nil
		}
	}
	return false, nil
}

func (s *memDeviceStore) Create(token *models.DeviceToken) error {
	token.ID = s.nextID
	s.nextID++
	s.tokens = append(s.tokens, *token)
	return nil
}

func (s *memDeviceStore) ListByUser(userID uint) ([]models.DeviceToken, error) {
	var out []models.DeviceToken
	for _, t := range s.tokens {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

type memFriendshipStore struct {
	requests  map[uint]models.FriendRequest
	friends   []models.Friend
	nextReqID uint
	nextID    uint

	acceptErr error // forces AcceptRequest to fail without side effects
}

func newMemFriendshipStore() *memFriendshipStore {
	return &memFriendshipStore{requests: make(map[uint]models.FriendRequest), nextReqID: 1, nextID: 1}
}

func (s *memFriendshipStore) GetRequest(id uint) (*models.FriendRequest, error) {
	request, ok := s.requests[id]
	if !ok {
		return nil, nil
	}
	return &request, nil
}

func (s *memFriendshipStore) FindPendingRequest(ownerID, targetID uint) (*models.FriendRequest, error) {
	for _, request := range s.requests {
		if request.OwnerID == ownerID && request.TargetID == targetID {
			r := request
			return &r, nil
		}
	}
	return nil, nil
}

func (s *memFriendshipStore) CreateRequest(request *models.FriendRequest) error {
	request.ID = s.nextReqID
	s.nextReqID++
	s.requests[request.ID] = *request
	return nil
}

func (s *memFriendshipStore) DeleteRequest(id uint) error {
	delete(s.requests, id)
	return nil
}

func (s *memFriendshipStore) ListIncomingRequests(targetID uint) ([]models.FriendRequest, error) {
	var out []models.FriendRequest
	for _, request := range s.requests {
		if request.TargetID == targetID {
			out = append(out, request)
		}
	}
	return out, nil
}

func (s *memFriendshipStore) AcceptRequest(request *models.FriendRequest) error {
	if s.acceptErr != nil {
		return s.acceptErr
	}
	s.addFriendRow(request.OwnerID, request.TargetID)
	s.addFriendRow(request.TargetID, request.OwnerID)
	delete(s.requests, request.ID)
	return nil
}

func (s *memFriendshipStore) ListFriends(userID uint) ([]models.Friend, error) {
	var out []models.Friend
	for _, friend := range s.friends {
		if friend.UserID == userID {
			out = append(out, friend)
		}
	}
	return out, nil
}

func (s *memFriendshipStore) AreFriends(userID, friendID uint) (bool, error) {
	for _, friend := range s.friends {
		if friend.UserID == userID && friend.FriendID == friendID {
			return true, nil
		}
	}
	return false, nil
}

func (s *memFriendshipStore) DeleteFriendship(userID, friendID uint) error {
	kept := s.friends[:0]
	for _, friend := range s.friends {
		if (friend.UserID == userID && friend.FriendID == friendID) ||
			(friend.UserID == friendID && friend.FriendID == userID) {
			continue
		}
		kept = append(kept, friend)
	}
	s.friends = kept
	return nil
}

func (s *memFriendshipStore) addFriendRow(userID, friendID uint) {
	friend := models.Friend{UserID: userID, FriendID: friendID}
	friend.ID = s.nextID
	s.nextID++
	s.friends = append(s.friends, friend)
}

type memPokeStore struct {
	prototypes map[uint]models.PokePrototype
	pokes      map[uint]models.Poke
	nextProtID uint
	nextPokeID uint
}

func newMemPokeStore() *memPokeStore {
	return &memPokeStore{
		prototypes: make(map[uint]models.PokePrototype),
		pokes:      make(map[uint]models.Poke),
		nextProtID: 1,
		nextPokeID: 1,
	}
}

func (s *memPokeStore) GetPrototype(id uint) (*models.PokePrototype, error) {
	prototype, ok := s.prototypes[id]
	if !ok {
		return nil, nil
	}
	return &prototype, nil
}

func (s *memPokeStore) ListPrototypes(ownerID uint) ([]models.PokePrototype, error) {
	var out []models.PokePrototype
	for _, prototype := range s.prototypes {
		if prototype.OwnerID == ownerID {
			out = append(out, prototype)
		}
	}
	return out, nil
}

func (s *memPokeStore) CreatePrototype(prototype *models.PokePrototype) error {
	prototype.ID = s.nextProtID
	s.nextProtID++
	s.prototypes[prototype.ID] = *prototype
	return nil
}

func (s *memPokeStore) UpdatePrototype(prototype *models.PokePrototype) error {
	s.prototypes[prototype.ID] = *prototype
	return nil
}

func (s *memPokeStore) DeletePrototype(id uint) error {
	delete(s.prototypes, id)
	return nil
}

func (s *memPokeStore) GetPoke(id uint) (*models.Poke, error) {
	poke, ok := s.pokes[id]
	if !ok {
		return nil, nil
	}
	return &poke, nil
}

func (s *memPokeStore) CreatePoke(poke *models.Poke) error {
	poke.ID = s.nextPokeID
	s.nextPokeID++
	s.pokes[poke.ID] = *poke
	return nil
}

func (s *memPokeStore) UpdatePoke(poke *models.Poke) error {
	s.pokes[poke.ID] = *poke
	return nil
}

func (s *memPokeStore) ListPokesBetween(userID, friendID uint) ([]models.Poke, error) {
	var out []models.Poke
	for _, poke := range s.pokes {
		if (poke.OwnerID == userID && poke.TargetID == friendID) ||
			(poke.OwnerID == friendID && poke.TargetID == userID) {
			out = append(out, poke)
		}
	}
	return out, nil
}

type memHabitStore struct {
	habits map[uint]models.Habit
	nextID uint
}

func newMemHabitStore() *memHabitStore {
	return &memHabitStore{habits: make(map[uint]models.Habit), nextID: 1}
}

func (s *memHabitStore) Get(id uint) (*models.Habit, error) {
	habit, ok := s.habits[id]
	if !ok {
		return nil, nil
	}
	return &habit, nil
}

func (s *memHabitStore) ListByOwner(ownerID uint) ([]models.Habit, error) {
	var out []models.Habit
	for _, habit := range s.habits {
		if habit.OwnerID == ownerID {
			out = append(out, habit)
		}
	}
	return out, nil
}

func (s *memHabitStore) Create(habit *models.Habit) error {
	habit.ID = s.nextID
	s.nextID++
	s.habits[habit.ID] = *habit
	return nil
}

func (s *memHabitStore) Update(habit *models.Habit) error {
	s.habits[habit.ID] = *habit
	return nil
}

// recordDispatcher captures dispatched notifications for assertions.
type recordDispatcher struct {
	mu            sync.Mutex
	notifications []notify.Notification
}

func (d *recordDispatcher) Dispatch(n notify.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notifications = append(d.notifications, n)
}

func (d *recordDispatcher) sent() []notify.Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]notify.Notification(nil), d.notifications...)
}

// recordMailer captures outgoing mail for assertions.
type recordMailer struct {
	mails []sentMail
	err   error
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (m *recordMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.mails = append(m.mails, sentMail{to: to, subject: subject, body: body})
	return nil
}

var errStore = errors.New("store failure")
