package auth

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nurpe/rentals-service/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims is the access token payload issued by the identity service.
type Claims struct {
	UserID   int64  `json:"user_id"`
	Role     string `json:"role"`
	DriverID *int64 `json:"driver_id,omitempty"`
	jwt.RegisteredClaims
}

type Parser struct {
	secret []byte
}

func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

func (p *Parser) Parse(token string) (model.Principal, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return model.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID := claims.UserID
	if userID == 0 && claims.Subject != "" {
		if id, convErr := strconv.ParseInt(claims.Subject, 10, 64); convErr == nil {
			userID = id
		}
	}
	if userID == 0 {
		return model.Principal{}, fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}

	role := model.Role(claims.Role)
	switch role {
	case model.RoleAdmin:
	case model.RoleDriver:
		if claims.DriverID == nil {
			return model.Principal{}, fmt.Errorf("%w: driver token without driver_id", ErrInvalidToken)
		}
	default:
		return model.Principal{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, claims.Role)
	}

	return model.Principal{
		UserID:   userID,
		Role:     role,
		DriverID: claims.DriverID,
	}, nil
}
