package primary

import (
	"context"
	"time"

	"gitlab.com/bhajan-roster.net/internal/domain"
)

// ShareClaims is what a planner share link grants: read access to one session.
type ShareClaims struct {
	SessionDate domain.SessionDate
	ExpiresAt   time.Time
}

type ShareTokenService interface {
	GenerateShareToken(ctx context.Context, date domain.SessionDate) (string, time.Time, error)
	VerifyShareToken(ctx context.Context, token string) (ShareClaims, error)
}
