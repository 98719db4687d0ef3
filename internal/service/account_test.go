package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mpetrovic-dev/usermgmt/internal/auth"
	"github.com/mpetrovic-dev/usermgmt/internal/models"
	"github.com/mpetrovic-dev/usermgmt/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAccountService(t *testing.T, store repositories.Store) *AccountService {
	t.Helper()
	return NewAccountService(store, auth.NewPasswordHasher(bcrypt.MinCost), auth.NewAPIKeyIssuer(), zap.NewNop())
}

func validCreateRequest() CreateUserRequest {
	return CreateUserRequest{
		UserName:     "alice",
		Password:     "Secret1!",
		FirstName:    "Alice",
		LastName:     "Smith",
		Email:        "a@x.com",
		MobileNumber: "+381 64 123-4567",
		Language:     "en",
		Culture:      "en-US",
	}
}

func TestAddUser(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newAccountService(t, store)

	user, err := svc.AddUser(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "alice", user.UserName)
	assert.Nil(t, user.DateModified)

	// the plaintext never reaches storage
	assert.NotEqual(t, "Secret1!", user.PasswordHash)
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	assert.True(t, hasher.VerifyPassword("Secret1!", user.PasswordHash))

	assert.Equal(t, 1, store.UserCount())
	assert.Equal(t, 1, store.ClientCount())

	apiKey, err := store.Clients().FindAPIKeyByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, apiKey)
}

func TestAddUser_DuplicateUserName(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newAccountService(t, store)

	_, err := svc.AddUser(context.Background(), validCreateRequest())
	require.NoError(t, err)

	req := validCreateRequest()
	req.Email = "other@x.com"
	_, err = svc.AddUser(context.Background(), req)

	var dup *models.DuplicateUserNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "alice", dup.UserName)
	assert.Contains(t, err.Error(), "alice")

	// rejected before any write
	assert.Equal(t, 1, store.UserCount())
	assert.Equal(t, 1, store.ClientCount())
}

func TestAddUser_DuplicateEmail(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newAccountService(t, store)

	_, err := svc.AddUser(context.Background(), validCreateRequest())
	require.NoError(t, err)

	req := validCreateRequest()
	req.UserName = "bob"
	_, err = svc.AddUser(context.Background(), req)

	var dup *models.DuplicateEmailError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "a@x.com", dup.Email)

	assert.Equal(t, 1, store.UserCount())
	assert.Equal(t, 1, store.ClientCount())
}

func TestAddUser_StorageFailure(t *testing.T) {
	store := repositories.NewMemoryStore()
	store.UsersErr = errors.New("connection reset")
	svc := newAccountService(t, store)

	_, err := svc.AddUser(context.Background(), validCreateRequest())
	require.Error(t, err)

	var dup *models.DuplicateUserNameError
	assert.False(t, errors.As(err, &dup))
}

func TestGetUserByID(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newAccountService(t, store)

	created, err := svc.AddUser(context.Background(), validCreateRequest())
	require.NoError(t, err)

	user, err := svc.GetUserByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestGetUserByID_NotFound(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newAccountService(t, store)

	id := uuid.New()
	_, err := svc.GetUserByID(context.Background(), id)

	var notFound *models.UserNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, id, notFound.ID)
	assert.Contains(t, err.Error(), id.String())
}

func TestUpdateUser(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newAccountService(t, store)

	created, err := svc.AddUser(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// keeping your own username and email must not count as taken
	updated, err := svc.UpdateUser(context.Background(), created.ID, UpdateUserRequest{
		UserName:  "alice",
		FirstName: "Alicia",
		LastName:  "Smith",
		Email:     "a@x.com",
		Language:  "sr",
		Culture:   "sr-RS",
	})
	require.NoError(t, err)

	assert.Equal(t, "Alicia", updated.FirstName)
	assert.Equal(t, "sr", updated.Language)
	assert.NotNil(t, updated.DateModified)
}

func TestUpdateUser_NeverChangesUserNameOrPassword(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newAccountService(t, store)

	created, err := svc.AddUser(context.Background(), validCreateRequest())
	require.NoError(t, err)
	originalHash := created.PasswordHash

	updated, err := svc.UpdateUser(context.Background(), created.ID, UpdateUserRequest{
		UserName:  "somebody-else",
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "a@x.com",
		Language:  "en",
		Culture:   "en-US",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", updated.UserName)
	assert.Equal(t, originalHash, updated.PasswordHash)
}

func TestUpdateUser_UserNameOwnedByOther(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newAccountService(t, store)

	_, err := svc.AddUser(context.Background(), validCreateRequest())
	require.NoError(t, err)

	bobReq := validCreateRequest()
	bobReq.UserName = "bob"
	bobReq.Email = "b@x.com"
	bob, err := svc.AddUser(context.Background(), bobReq)
	require.NoError(t, err)

	_, err = svc.UpdateUser(context.Background(), bob.ID, UpdateUserRequest{
		UserName:  "alice",
		FirstName: "Bob",
		LastName:  "Jones",
		Email:     "b@x.com",
		Language:  "en",
		Culture:   "en-US",
	})

	var dup *models.DuplicateUserNameError
	require.ErrorAs(t, err, &dup)
}

func TestUpdateUser_EmailOwnedByOther(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newAccountService(t, store)

	_, err := svc.AddUser(context.Background(), validCreateRequest())
	require.NoError(t, err)

	bobReq := validCreateRequest()
	bobReq.UserName = "bob"
	bobReq.Email = "b@x.com"
	bob, err := svc.AddUser(context.Background(), bobReq)
	require.NoError(t, err)

	_, err = svc.UpdateUser(context.Background(), bob.ID, UpdateUserRequest{
		UserName:  "bob",
		FirstName: "Bob",
		LastName:  "Jones",
		Email:     "a@x.com",
		Language:  "en",
		Culture:   "en-US",
	})

	var dup *models.DuplicateEmailError
	require.ErrorAs(t, err, &dup)
}

func TestUpdateUser_NotFound(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newAccountService(t, store)

	_, err := svc.UpdateUser(context.Background(), uuid.New(), UpdateUserRequest{
		UserName:  "ghost",
		FirstName: "Gho",
		LastName:  "Stly",
		Email:     "g@x.com",
		Language:  "en",
		Culture:   "en-US",
	})

	var notFound *models.UserNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDeleteUser_CascadesToClient(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newAccountService(t, store)

	created, err := svc.AddUser(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.Equal(t, 1, store.ClientCount())

	require.NoError(t, svc.DeleteUser(context.Background(), created.ID))

	assert.Equal(t, 0, store.UserCount())
	assert.Equal(t, 0, store.ClientCount())

	apiKey, err := store.Clients().FindAPIKeyByUserID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, apiKey)
}

func TestDeleteUser_NotFound(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newAccountService(t, store)

	err := svc.DeleteUser(context.Background(), uuid.New())

	var notFound *models.UserNotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestAuthenticateUser(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newAccountService(t, store)

	created, err := svc.AddUser(context.Background(), validCreateRequest())
	require.NoError(t, err)

	apiKey, err := svc.AuthenticateUser(context.Background(), "alice", "Secret1!")
	require.NoError(t, err)
	assert.NotEmpty(t, apiKey)

	stored, err := store.Clients().FindAPIKeyByUserID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, stored, apiKey)
}

func TestAuthenticateUser_IndistinguishableFailures(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newAccountService(t, store)

	_, err := svc.AddUser(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, unknownErr := svc.AuthenticateUser(context.Background(), "nobody", "Secret1!")
	_, wrongErr := svc.AuthenticateUser(context.Background(), "alice", "WrongPassword1!")

	require.ErrorIs(t, unknownErr, models.ErrAuthenticationFailed)
	require.ErrorIs(t, wrongErr, models.ErrAuthenticationFailed)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthenticateUser_MissingAPIKey(t *testing.T) {
	store := repositories.NewMemoryStore()
	svc := newAccountService(t, store)

	// an account persisted without its key grant is inconsistent data
	hasher := auth.NewPasswordHasher(bcrypt.MinCost)
	hash, err := hasher.HashPassword("Secret1!")
	require.NoError(t, err)
	user := &models.User{
		ID:           uuid.New(),
		UserName:     "keyless",
		PasswordHash: hash,
		FirstName:    "Key",
		LastName:     "Less",
		Email:        "k@x.com",
		Language:     "en",
		Culture:      "en-US",
	}
	require.NoError(t, store.Users().Insert(context.Background(), user))

	_, err = svc.AuthenticateUser(context.Background(), "keyless", "Secret1!")
	require.ErrorIs(t, err, models.ErrMissingAPIKey)
}
