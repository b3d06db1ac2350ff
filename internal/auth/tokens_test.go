package auth

import (
	"testing"
	"time"

	"github.com/explorex/reservations/internal/domain"
	"github.com/stretchr/testify/assert"
)

func testUser() *domain.User {
	return &domain.User{ID: 7, Username: "alice", Email: "alice@example.com"}
}

func TestManager_IssueAndVerifyAccess(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret")

	pair, err := m.Issue(testUser())
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)

	claims, err := m.VerifyAccess(pair.Access)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestManager_AccessTokenExpires(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret")

	issued := time.Now()
	m.now = func() time.Time { return issued }

	pair, err := m.Issue(testUser())
	assert.NoError(t, err)

	m.now = func() time.Time { return issued.Add(59 * time.Minute) }
	_, err = m.VerifyAccess(pair.Access)
	assert.NoError(t, err)

	m.now = func() time.Time { return issued.Add(61 * time.Minute) }
	_, err = m.VerifyAccess(pair.Access)
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestManager_VerifyAccessFailures(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret")
	other := NewManager("different-secret", "refresh-secret")

	pair, err := m.Issue(testUser())
	assert.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{"empty token", ""},
		{"malformed token", "not.a.jwt"},
		{"wrong signature", mustIssue(t, other).Access},
		{"refresh token used as access", pair.Refresh},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.VerifyAccess(tc.token)
			assert.ErrorIs(t, err, domain.ErrAuthFailed)
		})
	}
}

func TestManager_Refresh(t *testing.T) {
	m := NewManager("access-secret", "refresh-secret")

	pair, err := m.Issue(testUser())
	assert.NoError(t, err)

	access, err := m.Refresh(pair.Refresh)
	assert.NoError(t, err)

	claims, err := m.VerifyAccess(access)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)

	// An access token is never a valid refresh credential.
	_, err = m.Refresh(pair.Access)
	assert.ErrorIs(t, err, domain.ErrAuthFailed)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "secret124"))
}

func mustIssue(t *testing.T, m *Manager) TokenPair {
	t.Helper()
	pair, err := m.Issue(testUser())
	assert.NoError(t, err)
	return pair
}
