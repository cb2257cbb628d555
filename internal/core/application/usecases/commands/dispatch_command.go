package commands

import (
	"errors"

	"foodbridge/internal/pkg/guard"
)

var ErrDispatchCommandIsNotConstructed = errors.New(
	"DispatchCommand must be created via NewDispatchCommand constructor",
)

// DispatchCommand represents one run of the automatic dispatcher. It
// carries no data; the handler reads everything it needs from the store.
// The command is issued by the system itself, not by an actor.
type DispatchCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchCommand creates a command for one dispatcher run.
func NewDispatchCommand() (DispatchCommand, error) {
	return DispatchCommand{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchCommand) Validate() error {
	return c.guard.Validate(ErrDispatchCommandIsNotConstructed)
}
