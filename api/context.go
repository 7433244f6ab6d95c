package api

import (
	"context"

	"github.com/devfolio/dashboard-backend/auth"
)

type keyType string

const principalKey keyType = "principal"

// ctxWithPrincipal adds the authenticated principal to the context
func ctxWithPrincipal(ctx context.Context, p *auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// ctxGetPrincipal retrieves the authenticated principal, nil when absent
func ctxGetPrincipal(ctx context.Context) *auth.Principal {
	if p, ok := ctx.Value(principalKey).(*auth.Principal); ok {
		return p
	}
	return nil
}
