package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lifelog/lifelog-service/internal/config"
	"github.com/lifelog/lifelog-service/internal/errs"
	"github.com/lifelog/lifelog-service/internal/models"
	"github.com/lifelog/lifelog-service/internal/repository"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is the fixed validity window of issued session tokens.
const TokenTTL = 24 * time.Hour

// UserStore persists accounts.
type UserStore interface {
	CreateUser(user *models.User) error
	FindUserByLogin(login string) (*models.User, error)
	FindUserByID(id int64) (*models.User, error)
}

// TrackerStore persists the owned resources. Every read and write is scoped
// to the owning user id.
type TrackerStore interface {
	CreateJournalEntry(entry *models.JournalEntry) error
	ListJournalEntries(userID int64) ([]models.JournalEntry, error)
	UpdateJournalEntry(entry *models.JournalEntry) error
	DeleteJournalEntry(id, userID int64) error

	CreateMoodLog(m *models.MoodLog) error
	ListMoodLogs(userID int64, from, to string) ([]models.MoodLog, error)
	DeleteMoodLog(id, userID int64) error

	CreateHabit(h *models.Habit) error
	ListHabits(userID int64) ([]models.Habit, error)
	CompleteHabit(id, userID int64, day string) (*models.Habit, error)
	DeleteHabit(id, userID int64) error

	CreateTodo(t *models.Todo) error
	ListTodos(userID int64) ([]models.Todo, error)
	UpdateTodo(t *models.Todo) error
	DeleteTodo(id, userID int64) error

	CreateWorkout(w *models.Workout) error
	ListWorkouts(userID int64, from, to string) ([]models.Workout, error)
	DeleteWorkout(id, userID int64) error

	CreateMeal(m *models.Meal) error
	ListMeals(userID int64, from, to string) ([]models.Meal, error)
	DeleteMeal(id, userID int64) error

	CreateEvent(e *models.Event) error
	ListEvents(userID int64, from, to time.Time) ([]models.Event, error)
	UpdateEvent(e *models.Event) error
	DeleteEvent(id, userID int64) error

	CreateNote(n *models.Note) error
	ListNotes(userID int64) ([]models.Note, error)
	UpdateNote(n *models.Note) error
	DeleteNote(id, userID int64) error

	CreateBook(b *models.Book) error
	ListBooks(userID int64) ([]models.Book, error)
	UpdateBook(b *models.Book) error
	DeleteBook(id, userID int64) error

	ListQuotes() ([]models.Quote, error)
}

// Store is everything the service needs from the repository.
type Store interface {
	UserStore
	TrackerStore
}

var _ Store = (*repository.Repository)(nil)

// Service handles business logic
type Service struct {
	repo   Store
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service
func NewService(repo Store, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, log: log, config: cfg}
}

// Register creates a new user with a hashed password and returns the user
// together with a fresh session token.
func (s *Service) Register(username, email, password string) (*models.User, string, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, "", errs.ErrValidation
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.config.BcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.WithField("user_id", user.ID).Info("user registered")
	return user, token, nil
}

// Login authenticates by username or email and returns the user together
// with a fresh session token. Unknown accounts and wrong passwords fail
// identically so callers cannot probe which accounts exist.
func (s *Service) Login(login, password string) (*models.User, string, error) {
	if login == "" || password == "" {
		return nil, "", errs.ErrInvalidCredentials
	}

	user, err := s.repo.FindUserByLogin(login)
	if err == errs.ErrNotFound {
		return nil, "", errs.ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errs.ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.WithField("user_id", user.ID).Info("user logged in")
	return user, token, nil
}

// CurrentUser returns the account resolved from the session token.
func (s *Service) CurrentUser(userID int64) (*models.User, error) {
	return s.repo.FindUserByID(userID)
}

// issueToken creates a signed HS256 JWT with the user id as subject.
func (s *Service) issueToken(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}
