package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

type TokenManager struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewTokenManager(accessSecret, refreshSecret, issuer string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		issuer:        issuer,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// Claims ties an access/refresh pair together through SessionID so a logout
// can revoke both at once.
type Claims struct {
	UserID    string `json:"uid"`
	Username  string `json:"usr"`
	SessionID string `json:"sid"`
	Type      string `json:"typ"`
	jwt.RegisteredClaims
}

type Pair struct {
	Access           string
	Refresh          string
	SessionID        string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

func (tm *TokenManager) AccessTTL() time.Duration { return tm.accessTTL }

// GeneratePair issues an access and a refresh token for a new session.
func (tm *TokenManager) GeneratePair(userID, username string) (Pair, error) {
	sid := uuid.NewString()

	access, accessExp, err := tm.sign(TypeAccess, userID, username, sid)
	if err != nil {
		return Pair{}, err
	}
	refresh, refreshExp, err := tm.sign(TypeRefresh, userID, username, sid)
	if err != nil {
		return Pair{}, err
	}
	return Pair{
		Access:           access,
		Refresh:          refresh,
		SessionID:        sid,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// NewAccess issues a fresh access token inside the session of a refresh token.
func (tm *TokenManager) NewAccess(refresh *Claims) (string, time.Time, error) {
	return tm.sign(TypeAccess, refresh.UserID, refresh.Username, refresh.SessionID)
}

func (tm *TokenManager) ParseAccess(token string) (*Claims, error) {
	return tm.parse(token, TypeAccess, tm.accessSecret)
}

func (tm *TokenManager) ParseRefresh(token string) (*Claims, error) {
	return tm.parse(token, TypeRefresh, tm.refreshSecret)
}

func (tm *TokenManager) sign(typ, userID, username, sid string) (string, time.Time, error) {
	secret, ttl := tm.accessSecret, tm.accessTTL
	if typ == TypeRefresh {
		secret, ttl = tm.refreshSecret, tm.refreshTTL
	}

	now := tm.now()
	exp := now.Add(ttl)
	claims := Claims{
		UserID:    userID,
		Username:  username,
		SessionID: sid,
		Type:      typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tm.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign %s token: %w", typ, err)
	}
	return signed, exp, nil
}

func (tm *TokenManager) parse(token, typ string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tm.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Type != typ || claims.SessionID == "" || claims.Username == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
