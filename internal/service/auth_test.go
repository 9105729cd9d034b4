package service

import (
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lifelog/lifelog-service/internal/config"
	"github.com/lifelog/lifelog-service/internal/errs"
	"github.com/lifelog/lifelog-service/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeStore implements only the Store methods a test exercises; the embedded
// interface panics on anything unexpected.
type fakeStore struct {
	Store

	nextID int64
	users  []*models.User

	createErr error
	findErr   error
}

func (f *fakeStore) CreateUser(u *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return errs.ErrDuplicateAccount
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	cpy := *u
	f.users = append(f.users, &cpy)
	return nil
}

func (f *fakeStore) FindUserByLogin(login string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Username == login || u.Email == login {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, errs.ErrNotFound
}

func newTestService(store Store) *Service {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	cfg := &config.Config{JWTSecret: "test-secret", BcryptCost: bcrypt.MinCost}
	return NewService(store, log, cfg)
}

func subjectOf(t *testing.T, tokenString, secret string) string {
	t.Helper()
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	return claims.Subject
}

func TestRegisterSuccess(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	user, token, err := svc.Register("alice", "alice@x.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "alice@x.com", user.Email)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))

	assert.Equal(t, strconv.FormatInt(user.ID, 10), subjectOf(t, token, "test-secret"))
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(&fakeStore{})

	cases := []struct{ username, email, password string }{
		{"", "a@x.com", "pw"},
		{"a", "", "pw"},
		{"a", "a@x.com", ""},
		{"   ", "a@x.com", "pw"},
	}
	for _, c := range cases {
		_, _, err := svc.Register(c.username, c.email, c.password)
		assert.ErrorIs(t, err, errs.ErrValidation)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	_, _, err := svc.Register("alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	// same username, different email
	_, _, err = svc.Register("alice", "other@x.com", "secret2")
	assert.ErrorIs(t, err, errs.ErrDuplicateAccount)

	// same email, different username
	_, _, err = svc.Register("bob", "alice@x.com", "secret2")
	assert.ErrorIs(t, err, errs.ErrDuplicateAccount)
}

func TestLoginByUsernameAndEmail(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	registered, _, err := svc.Register("alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	for _, login := range []string{"alice", "alice@x.com"} {
		user, token, err := svc.Login(login, "secret1")
		require.NoError(t, err, "login %q", login)
		assert.Equal(t, registered.ID, user.ID)
		assert.Equal(t, strconv.FormatInt(registered.ID, 10), subjectOf(t, token, "test-secret"))
	}
}

func TestLoginFailuresAreUniform(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	_, _, err := svc.Register("alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	_, _, wrongPass := svc.Login("alice", "wrongpass")
	_, _, unknown := svc.Login("nobody", "secret1")

	// unknown account and wrong password must be indistinguishable
	assert.ErrorIs(t, wrongPass, errs.ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, errs.ErrInvalidCredentials)
	assert.Equal(t, wrongPass, unknown)
}

func TestLoginStoreFailurePropagates(t *testing.T) {
	store := &fakeStore{findErr: assert.AnError}
	svc := newTestService(store)

	_, _, err := svc.Login("alice", "secret1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestIssuedTokenExpiry(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	_, token, err := svc.Register("alice", "alice@x.com", "secret1")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)

	expected := time.Now().Add(TokenTTL)
	assert.WithinDuration(t, expected, claims.ExpiresAt.Time, time.Minute)
}
