package services

import (
	"context"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/ports"
	"foodbridge/internal/pkg/errs"
)

// AccessPolicy is a domain service that decides whether an actor may
// perform a protected operation.
//
// Business rules:
//   - An actor may always operate on their own records
//   - Governance-approved actors may operate on anyone's records
//   - Profile creation is reserved for governance-approved actors
//   - Anonymous actors are always rejected
//   - When the governance oracle cannot be reached the policy fails
//     closed and the actor is rejected
//
// Example usage:
//
//	policy := services.NewAccessPolicy(governanceClient)
//	if err := policy.AuthorizeSelfOrGovernance(ctx, actor, donorID); err != nil {
//	    // actor is neither the donor nor governance approved
//	    return err
//	}
type AccessPolicy struct {
	governance ports.GovernanceAuthority
}

// NewAccessPolicy creates an AccessPolicy consulting the given governance
// authority.
func NewAccessPolicy(governance ports.GovernanceAuthority) AccessPolicy {
	return AccessPolicy{governance: governance}
}

// AuthorizeSelfOrGovernance permits the operation when the actor is the
// subject themselves or is governance approved.
func (p AccessPolicy) AuthorizeSelfOrGovernance(ctx context.Context, actor kernel.Identity, subject kernel.ID) error {
	if actor.IsAnonymous() {
		return errs.NewUnauthorizedError(actor)
	}

	if actor.Is(subject) {
		return nil
	}

	return p.AuthorizeGovernance(ctx, actor)
}

// AuthorizeGovernance permits the operation only when the actor is
// governance approved.
func (p AccessPolicy) AuthorizeGovernance(ctx context.Context, actor kernel.Identity) error {
	if actor.IsAnonymous() {
		return errs.NewUnauthorizedError(actor)
	}

	approved, err := p.governance.IsApproved(ctx, actor)
	if err != nil {
		return errs.NewUnauthorizedErrorWithCause(actor, err)
	}
	if !approved {
		return errs.NewUnauthorizedError(actor)
	}

	return nil
}
