package session

import (
	"context"
	"fmt"
)

// Action is a staged write.
type Action interface {
	Execute(ctx context.Context) error

	// Rollback undoes a successful Execute when a later action fails.
	Rollback(ctx context.Context) error

	// Description names the action in logs and errors.
	Description() string
}

// funcAction adapts closures to Action.
type funcAction struct {
	description string
	execute     func(ctx context.Context) error
	rollback    func(ctx context.Context) error
}

// NewAction builds an Action from closures. rollback may be nil for writes
// that cannot be undone.
func NewAction(description string, execute, rollback func(ctx context.Context) error) Action {
	return &funcAction{description: description, execute: execute, rollback: rollback}
}

func (a *funcAction) Execute(ctx context.Context) error { return a.execute(ctx) }

func (a *funcAction) Rollback(ctx context.Context) error {
	if a.rollback == nil {
		return nil
	}

	return a.rollback(ctx)
}

func (a *funcAction) Description() string { return a.description }

// AddAction stages action for Commit.
func (s *Session) AddAction(action Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.committed {
		return ErrAlreadyCommitted
	}

	s.actions = append(s.actions, action)

	return nil
}

// Committed reports whether Commit has completed successfully.
func (s *Session) Committed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.committed
}

// Commit runs the staged actions in order. When one fails, the actions that
// already ran are rolled back in reverse order and the failure is returned.
// Rollback errors are joined onto it.
func (s *Session) Commit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.committed {
		return ErrAlreadyCommitted
	}

	var executed []Action

	for _, action := range s.actions {
		if err := action.Execute(ctx); err != nil {
			failure := fmt.Errorf("action %q failed: %w", action.Description(), err)

			for i := len(executed) - 1; i >= 0; i-- {
				if rbErr := executed[i].Rollback(ctx); rbErr != nil {
					failure = fmt.Errorf("%w; rollback %q: %w", failure, executed[i].Description(), rbErr)
				}
			}

			return failure
		}

		executed = append(executed, action)
	}

	s.committed = true

	return nil
}

// Actions returns a copy of the staged actions.
func (s *Session) Actions() []Action {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Action, len(s.actions))
	copy(out, s.actions)

	return out
}
