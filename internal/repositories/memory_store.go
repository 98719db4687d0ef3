package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mpetrovic-dev/usermgmt/internal/models"
)

// MemoryStore is an in-memory Store used in tests. It mirrors the storage
// collaborator's contract: unique indexes on username/email/api key are
// enforced on insert, deleting a user cascades to its clients, and updates
// stamp DateModified. Transactions run without rollback.
type MemoryStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]models.User
	clients map[uuid.UUID]models.Client

	// When set, every operation on the corresponding repository fails
	// with the given error.
	UsersErr   error
	ClientsErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[uuid.UUID]models.User),
		clients: make(map[uuid.UUID]models.Client),
	}
}

func (s *MemoryStore) Users() UserRepository {
	return &memoryUserRepo{store: s}
}

func (s *MemoryStore) Clients() ClientRepository {
	return &memoryClientRepo{store: s}
}

func (s *MemoryStore) Transact(ctx context.Context, fn func(Store) error) error {
	return fn(s)
}

// UserCount reports the number of stored users.
func (s *MemoryStore) UserCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// ClientCount reports the number of stored API-key grants.
func (s *MemoryStore) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

type memoryUserRepo struct {
	store *MemoryStore
}

func (r *memoryUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if r.store.UsersErr != nil {
		return nil, r.store.UsersErr
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if user, ok := r.store.users[id]; ok {
		u := user
		return &u, nil
	}
	return nil, nil
}

func (r *memoryUserRepo) FindByUserName(ctx context.Context, userName string) (*models.User, error) {
	if r.store.UsersErr != nil {
		return nil, r.store.UsersErr
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.UserName == userName {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) Insert(ctx context.Context, user *models.User) error {
	if r.store.UsersErr != nil {
		return r.store.UsersErr
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if existing.UserName == user.UserName {
			return &models.DuplicateUserNameError{UserName: user.UserName}
		}
		if existing.Email == user.Email {
			return &models.DuplicateEmailError{Email: user.Email}
		}
	}
	r.store.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepo) Update(ctx context.Context, user *models.User) error {
	if r.store.UsersErr != nil {
		return r.store.UsersErr
	}
	now := time.Now()
	user.DateModified = &now
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepo) Delete(ctx context.Context, user *models.User) error {
	if r.store.UsersErr != nil {
		return r.store.UsersErr
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.users, user.ID)
	for id, client := range r.store.clients {
		if client.UserID == user.ID {
			delete(r.store.clients, id)
		}
	}
	return nil
}

func (r *memoryUserRepo) UserNameExists(ctx context.Context, userName string, excludeID uuid.UUID) (bool, error) {
	if r.store.UsersErr != nil {
		return false, r.store.UsersErr
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.UserName == userName && user.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryUserRepo) EmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	if r.store.UsersErr != nil {
		return false, r.store.UsersErr
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Email == email && user.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type memoryClientRepo struct {
	store *MemoryStore
}

func (r *memoryClientRepo) Insert(ctx context.Context, client *models.Client) error {
	if r.store.ClientsErr != nil {
		return r.store.ClientsErr
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.clients[client.ID] = *client
	return nil
}

func (r *memoryClientRepo) FindByAPIKey(ctx context.Context, apiKey string) (*models.Client, error) {
	if r.store.ClientsErr != nil {
		return nil, r.store.ClientsErr
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, client := range r.store.clients {
		if client.APIKey == apiKey {
			c := client
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memoryClientRepo) FindAPIKeyByUserID(ctx context.Context, userID uuid.UUID) (string, error) {
	if r.store.ClientsErr != nil {
		return "", r.store.ClientsErr
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, client := range r.store.clients {
		if client.UserID == userID {
			return client.APIKey, nil
		}
	}
	return "", nil
}
