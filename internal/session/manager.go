// Package session keeps the signed-in students and the portal state each of them sees.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/viewstate"
	"student-portal-svc/pkg/logger"
)

// TokenKey is the cookie holding the session token
const TokenKey = "student_portal_token"

var (
	ErrInvalidCredentials = errors.New("invalid student id or password")
	ErrInvalidToken       = errors.New("invalid session token")
	ErrSessionExpired     = errors.New("session expired")
)

// Claims is the payload of a session token
type Claims struct {
	StudentID string `json:"student_id"`
	jwt.RegisteredClaims
}

// Session is one signed-in student
type Session struct {
	ID        string
	Token     string
	Student   models.Student
	Portal    *viewstate.Portal
	ExpiresAt time.Time
}

// PortalFactory mounts a fresh portal for a student who just signed in
type PortalFactory func(student models.Student) *viewstate.Portal

// Config holds the token settings
type Config struct {
	Secret string
	TTL    time.Duration
}

// Manager issues tokens and keeps the live sessions in memory
type Manager struct {
	students  repository.StudentRepository
	secret    []byte
	ttl       time.Duration
	newPortal PortalFactory
	clock     func() time.Time
	logger    *logger.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a new Manager
func NewManager(students repository.StudentRepository, cfg Config, newPortal PortalFactory, logger *logger.Logger) *Manager {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Manager{
		students:  students,
		secret:    []byte(cfg.Secret),
		ttl:       ttl,
		newPortal: newPortal,
		clock:     time.Now,
		logger:    logger,
		sessions:  make(map[string]*Session),
	}
}

// SetClock replaces the time source, used by tests
func (m *Manager) SetClock(clock func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clock = clock
}

func (m *Manager) now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.clock()
}

// Login checks the password and opens a session with its own portal
func (m *Manager) Login(studentID, password string) (*Session, error) {
	student, err := m.students.GetStudentByID(studentID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			m.logger.WithField("student_id", studentID).Warn("Login for unknown student")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(student.PasswordHash, []byte(password)); err != nil {
		m.logger.WithField("student_id", studentID).Warn("Login with wrong password")
		return nil, ErrInvalidCredentials
	}

	now := m.now()
	id := uuid.New().String()
	expiresAt := now.Add(m.ttl)
	claims := Claims{
		StudentID: student.StudentID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   student.StudentID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	s := &Session{
		ID:        id,
		Token:     token,
		Student:   *student,
		Portal:    m.newPortal(*student),
		ExpiresAt: expiresAt,
	}

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	m.logger.WithFields(map[string]interface{}{
		"student_id": student.StudentID,
		"session_id": id,
	}).Info("Student signed in")

	return s, nil
}

// Authenticate resolves a token to its live session
func (m *Manager) Authenticate(token string) (*Session, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	now := m.now()
	m.mu.Lock()
	s, ok := m.sessions[claims.ID]
	m.mu.Unlock()

	if !ok {
		return nil, ErrInvalidToken
	}
	if !now.Before(s.ExpiresAt) {
		return nil, ErrSessionExpired
	}
	return s, nil
}

// Logout closes the session behind token
func (m *Manager) Logout(token string) error {
	s, err := m.Authenticate(token)
	if err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.sessions, s.ID)
	m.mu.Unlock()

	s.Portal.Close()
	m.logger.WithField("session_id", s.ID).Info("Student signed out")
	return nil
}

// Sweep closes every expired session and returns how many were closed
func (m *Manager) Sweep() int {
	now := m.now()

	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if !now.Before(s.ExpiresAt) {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.Portal.Close()
	}
	if len(expired) > 0 {
		m.logger.WithField("count", len(expired)).Info("Expired sessions swept")
	}
	return len(expired)
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close ends every session
func (m *Manager) Close() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Session)
	m.mu.Unlock()

	for _, s := range sessions {
		s.Portal.Close()
	}
}
