package crypto

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gitlab.com/bhajan-roster.net/internal/config"
	"gitlab.com/bhajan-roster.net/internal/core/ports/primary"
	"gitlab.com/bhajan-roster.net/internal/domain"
	"gitlab.com/bhajan-roster.net/internal/static/errs"
)

var _ primary.ShareTokenService = (*JWTServiceImpl)(nil)

const shareIssuer = "bhajan-roster"

// shareClaims are the HS256 claims of a planner share link.
type shareClaims struct {
	SessionDate string `json:"session_date"`
	jwt.RegisteredClaims
}

type JWTServiceImpl struct {
	HMACSecretKey string
	TTL           time.Duration
	now           func() time.Time
}

func NewJWTService(shareConfig *config.ShareConfig) *JWTServiceImpl {
	return &JWTServiceImpl{
		HMACSecretKey: shareConfig.Secret,
		TTL:           shareConfig.TokenTTL,
		now:           time.Now,
	}
}

// GenerateShareToken signs a read-only token for one session date.
func (j *JWTServiceImpl) GenerateShareToken(ctx context.Context, date domain.SessionDate) (string, time.Time, error) {
	if j.HMACSecretKey == "" {
		return "", time.Time{}, fmt.Errorf("%w: no signing secret configured", errs.ErrGeneratingToken)
	}
	now := j.now()
	expiresAt := now.Add(j.TTL).UTC().Truncate(time.Second)
	claims := shareClaims{
		SessionDate: date.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    shareIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(j.HMACSecretKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", errs.ErrGeneratingToken, err)
	}
	return signed, expiresAt, nil
}

// VerifyShareToken checks signature, issuer and expiry and returns the session it grants.
func (j *JWTServiceImpl) VerifyShareToken(ctx context.Context, token string) (primary.ShareClaims, error) {
	var claims shareClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(j.HMACSecretKey), nil
	},
		jwt.WithIssuer(shareIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil || !parsed.Valid {
		return primary.ShareClaims{}, fmt.Errorf("%w: %v", errs.ErrInvalidShareToken, err)
	}

	date, err := domain.ParseSessionDate(claims.SessionDate)
	if err != nil {
		return primary.ShareClaims{}, fmt.Errorf("%w: %v", errs.ErrInvalidShareToken, err)
	}
	return primary.ShareClaims{
		SessionDate: date,
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}
