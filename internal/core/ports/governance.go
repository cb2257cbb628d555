package ports

import (
	"context"

	"foodbridge/internal/core/domain/model/kernel"
)

// GovernanceAuthority answers whether an actor has been approved by the
// governance oracle. Any transport or oracle failure must surface as an
// error so callers can fail closed rather than guess.
type GovernanceAuthority interface {
	IsApproved(ctx context.Context, actor kernel.Identity) (bool, error)
}
