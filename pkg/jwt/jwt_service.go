package jwt

import (
	"RecipeHub/domain"
	"RecipeHub/internal/utils"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	PurposeVerifyEmail   = "verify"
	PurposeResetPassword = "reset"

	VerifyEmailTTL   = 24 * time.Hour
	ResetPasswordTTL = 30 * time.Minute
)

type (
	JWTService interface {
		GenerateLinkToken(userID uint, purpose string, nonce string, duration time.Duration) (string, error)
		ValidateLinkToken(token string, purpose string) (*LinkClaims, error)
	}

	// LinkClaims are carried by the tokens embedded in emailed links.
	LinkClaims struct {
		Purpose string `json:"purpose"`
		Nonce   string `json:"nonce,omitempty"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return NewJWTServiceWithSecret(getSecretKey())
}

func NewJWTServiceWithSecret(secret string) JWTService {
	return &jwtService{
		secretKey: secret,
		issuer:    "RECIPEHUB",
	}
}

func (j *jwtService) GenerateLinkToken(userID uint, purpose string, nonce string, duration time.Duration) (string, error) {
	now := time.Now()
	claims := LinkClaims{
		Purpose: purpose,
		Nonce:   nonce,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateLinkToken(token string, purpose string) (*LinkClaims, error) {
	t_Token, err := jwt.ParseWithClaims(token, &LinkClaims{}, j.parseToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*LinkClaims)
	if !ok || claims.Issuer != j.issuer {
		return nil, domain.ErrTokenInvalid
	}
	if claims.Purpose != purpose {
		return nil, domain.ErrInvalidTokenPurpose
	}
	return claims, nil
}

// UserID returns the subject of the token as a user id.
func (c *LinkClaims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, domain.ErrTokenInvalid
	}
	return uint(id), nil
}
