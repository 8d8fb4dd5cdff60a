package services

import (
	"context"
	"slices"

	"github.com/joshuarp/image-derivative-api/internal/domain/vo"
	sharedjwt "github.com/joshuarp/image-derivative-api/internal/shared/jwt"
)

// ClaimsAccessHook lets authenticated admins read private derivatives. An
// empty Roles accepts any valid token.
type ClaimsAccessHook struct {
	Roles []string
}

var _ AccessHook = ClaimsAccessHook{}

func (h ClaimsAccessHook) CheckAccess(ctx context.Context, _ string) (map[string]string, error) {
	claims, ok := sharedjwt.GetClaims(ctx)
	if !ok {
		return nil, vo.ErrAccessDenied
	}
	if len(h.Roles) > 0 && !slices.Contains(h.Roles, claims.Role) {
		return nil, vo.ErrAccessDenied
	}
	return map[string]string{"Cache-Control": "private, no-cache"}, nil
}
