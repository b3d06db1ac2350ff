package auth

import (
	"time"

	"github.com/explorex/reservations/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTTL  = time.Hour
	RefreshTTL = 7 * 24 * time.Hour
)

// Claims is the payload carried by both token kinds.
type Claims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	Access  string `json:"accessToken"`
	Refresh string `json:"refreshToken"`
}

// Manager signs and verifies the two token kinds. Access and refresh
// tokens use separate secrets, so one can never stand in for the other.
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewManager(accessSecret, refreshSecret string) *Manager {
	return &Manager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     AccessTTL,
		refreshTTL:    RefreshTTL,
		now:           time.Now,
	}
}

func (m *Manager) AccessTTL() time.Duration  { return m.accessTTL }
func (m *Manager) RefreshTTL() time.Duration { return m.refreshTTL }

// Issue mints an access/refresh pair for an authenticated user.
func (m *Manager) Issue(user *domain.User) (TokenPair, error) {
	access, err := m.sign(user, m.accessSecret, m.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := m.sign(user, m.refreshSecret, m.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// VerifyAccess validates an access token. Missing, malformed, expired and
// wrongly signed tokens all collapse to ErrAuthFailed.
func (m *Manager) VerifyAccess(token string) (*Claims, error) {
	return m.verify(token, m.accessSecret)
}

// Refresh validates a refresh token and mints a new short-lived access
// token for the same subject.
func (m *Manager) Refresh(refreshToken string) (string, error) {
	claims, err := m.verify(refreshToken, m.refreshSecret)
	if err != nil {
		return "", err
	}
	user := &domain.User{ID: claims.UserID, Username: claims.Username, Email: claims.Email}
	return m.sign(user, m.accessSecret, m.accessTTL)
}

func (m *Manager) sign(user *domain.User, secret []byte, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (m *Manager) verify(token string, secret []byte) (*Claims, error) {
	if token == "" {
		return nil, domain.ErrAuthFailed
	}
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrAuthFailed
	}
	return &claims, nil
}
