package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/transport"
	"student-portal-svc/internal/viewstate"
	"student-portal-svc/pkg/logger"
)

var fixedNow = time.Date(2024, time.October, 1, 9, 0, 0, 0, time.UTC)

func newTestManager(t *testing.T) (*Manager, *time.Time) {
	t.Helper()

	log := logger.NewNopLogger()
	store, err := repository.NewSeededStore(fixedNow)
	require.NoError(t, err)
	svc := viewstate.NewServices(store, transport.NewInstant(log), func() time.Time { return fixedNow }, "http://portal.test", log)

	m := NewManager(store.Students, Config{Secret: "test-secret", TTL: time.Hour}, func(s models.Student) *viewstate.Portal {
		return viewstate.NewPortal(svc, s, repository.CurrentSemester, log)
	}, log)

	now := fixedNow
	m.SetClock(func() time.Time { return now })
	return m, &now
}

func TestLoginIssuesToken(t *testing.T) {
	m, _ := newTestManager(t)

	s, err := m.Login("SV2021001", repository.DefaultPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, s.Token)
	assert.Equal(t, "Nguyễn Văn An", s.Student.FullName)
	assert.Equal(t, fixedNow.Add(time.Hour), s.ExpiresAt)
	require.NotNil(t, s.Portal)
	assert.Equal(t, 1, m.Len())

	got, err := m.Authenticate(s.Token)
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.Login("SV2021001", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = m.Login("SV9999999", repository.DefaultPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 0, m.Len())
}

func TestAuthenticateRejectsForeignTokens(t *testing.T) {
	m, _ := newTestManager(t)
	s, err := m.Login("SV2021001", repository.DefaultPassword)
	require.NoError(t, err)

	_, err = m.Authenticate(s.Token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		StudentID:        "SV2021001",
		RegisteredClaims: jwt.RegisteredClaims{ID: s.ID, ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Hour))},
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)
	_, err = m.Authenticate(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Authenticate("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutEndsSession(t *testing.T) {
	m, _ := newTestManager(t)
	s, err := m.Login("SV2021002", repository.DefaultPassword)
	require.NoError(t, err)

	require.NoError(t, m.Logout(s.Token))
	assert.Equal(t, 0, m.Len())

	_, err = m.Authenticate(s.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, m.Logout(s.Token), ErrInvalidToken)
}

func TestExpiredSessionsAreSwept(t *testing.T) {
	m, now := newTestManager(t)
	first, err := m.Login("SV2021001", repository.DefaultPassword)
	require.NoError(t, err)

	*now = fixedNow.Add(30 * time.Minute)
	second, err := m.Login("SV2021002", repository.DefaultPassword)
	require.NoError(t, err)

	*now = fixedNow.Add(61 * time.Minute)
	_, err = m.Authenticate(first.Token)
	assert.ErrorIs(t, err, ErrSessionExpired)

	assert.Equal(t, 1, m.Sweep())
	assert.Equal(t, 1, m.Len())

	_, err = m.Authenticate(second.Token)
	assert.NoError(t, err)
	assert.Equal(t, 0, m.Sweep())
}
