package handler

import (
	"context"

	"adlot.app/inventory/internal/http/middleware"
	"adlot.app/inventory/internal/store"
)

// scopeFrom derives the data-access scope from the request identity.
// Guests (possible only when authentication is disabled) get an unscoped
// view of all rows.
func scopeFrom(ctx context.Context) store.Scope {
	identity := middleware.IdentityFrom(ctx)
	if identity == nil {
		return store.Scope{}
	}
	return store.ScopeFor(identity.UserID)
}
