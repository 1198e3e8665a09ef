package jwt

import (
	"FoodTracker-Backend/domain"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const deviceTokenTTL = 30 * 24 * time.Hour

type (
	JWTService interface {
		GenerateTokenDevice(deviceID string) (string, error)
		ValidateTokenDevice(token string) (*jwt.Token, error)
		GetDeviceIDByToken(token string) (string, string, error)
	}

	jwtDeviceClaim struct {
		DeviceID string `json:"device_id"`
		Role     string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		ttl       time.Duration
		now       func() time.Time
	}
)

func NewJWTService(secretKey string) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    "FOODTRACKER",
		ttl:       deviceTokenTTL,
		now:       time.Now,
	}
}

// GenerateTokenDevice issues a token for an anonymous device. Meal history is keyed on
// the device id carried in the claims.
func (j *jwtService) GenerateTokenDevice(deviceID string) (string, error) {
	now := j.now()
	claims := jwtDeviceClaim{
		deviceID,
		domain.RoleDevice,
		jwt.RegisteredClaims{
			Subject:   deviceID,
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
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

func (j *jwtService) ValidateTokenDevice(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtDeviceClaim{}, j.parseToken)
}

func (j *jwtService) GetDeviceIDByToken(token string) (string, string, error) {
	t_Token, err := j.ValidateTokenDevice(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*jwtDeviceClaim)
	if !ok || claims.DeviceID == "" || claims.Issuer != j.issuer {
		return "", "", domain.ErrTokenInvalid
	}
	return claims.DeviceID, claims.Role, nil
}
