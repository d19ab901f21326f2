package ports

import (
	"context"
	"errors"

	"maintenance/internal/core/domain/services"
)

// ErrUnauthorizedOverride is returned when an actor requests a release
// override they are not entitled to.
var ErrUnauthorizedOverride = errors.New("actor is not authorized to override release prerequisites")

// OverridePolicy decides whether an actor may bypass release prerequisites.
// The returned grant says which prerequisites the actor may waive; the
// technician requirement is never grantable and is not part of the contract.
type OverridePolicy interface {
	// Authorize validates an override request and returns the resulting
	// grant, or ErrUnauthorizedOverride.
	Authorize(ctx context.Context, actor, reason string) (*services.OverrideGrant, error)
}
