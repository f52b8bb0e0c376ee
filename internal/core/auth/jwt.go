package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

type Claims struct {
	UID       string `json:"uid"`
	Staff     bool   `json:"staff"`
	Superuser bool   `json:"superuser"`
	Type      string `json:"typ"` // "access" or "refresh"
	jwt.RegisteredClaims
}

type JWTer struct {
	Secret     []byte
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// IssuePair 签发 access + refresh（refresh 不轮换）
func (j *JWTer) IssuePair(uid string, staff, superuser bool) (access, refresh string, err error) {
	if access, err = j.issue(uid, staff, superuser, TokenAccess, j.AccessTTL); err != nil {
		return "", "", err
	}
	if refresh, err = j.issue(uid, staff, superuser, TokenRefresh, j.RefreshTTL); err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (j *JWTer) IssueAccess(uid string, staff, superuser bool) (string, error) {
	return j.issue(uid, staff, superuser, TokenAccess, j.AccessTTL)
}

func (j *JWTer) issue(uid string, staff, superuser bool, typ string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UID:       uid,
		Staff:     staff,
		Superuser: superuser,
		Type:      typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// Parse 校验签名、签发者和过期时间，并要求 token 类型匹配
func (j *JWTer) Parse(tokenStr, wantType string) (*Claims, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected alg")
		}
		return j.Secret, nil
	}, jwt.WithIssuer(j.Issuer), jwt.WithLeeway(60*time.Second))

	if err != nil {
		return nil, err
	}
	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, errors.New("invalid token")
	}
	if c.Type != wantType {
		return nil, errors.New("wrong token type")
	}
	return c, nil
}
