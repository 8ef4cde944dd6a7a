package domain

// Action enumerates every operation the authorization policy rules on.
// Adding a role or an action is a compile-time-checked change: Decide
// switches exhaustively over this set.
type Action int

const (
	ActionListUsers Action = iota
	ActionViewUser
	ActionCreateUser
	ActionUpdateUser
	ActionUpdateOwnProfile
	ActionChangeOwnPassword
	ActionDeleteUser
	ActionViewAudit
	ActionSeedUsers
)

func (a Action) String() string {
	switch a {
	case ActionListUsers:
		return "list-users"
	case ActionViewUser:
		return "view-user"
	case ActionCreateUser:
		return "create-user"
	case ActionUpdateUser:
		return "update-user"
	case ActionUpdateOwnProfile:
		return "update-own-profile"
	case ActionChangeOwnPassword:
		return "change-own-password"
	case ActionDeleteUser:
		return "delete-user"
	case ActionViewAudit:
		return "view-audit"
	case ActionSeedUsers:
		return "seed-users"
	}
	return "unknown"
}

// Decision is the outcome of a policy evaluation.
type Decision struct {
	Allowed bool
	Reason  string
	err     error
}

// Err returns nil when the decision allows the action, or the classifying
// error when it denies it.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return d.err
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(err error) Decision {
	return Decision{Reason: err.Error(), err: err}
}

// Decide evaluates whether actor may perform action. target is the affected
// user for targeted actions and may be nil otherwise. adminCount is the
// current number of admin accounts; it is consulted only for ActionDeleteUser.
// The function is pure: no storage access, no side effects. Callers must
// evaluate it before any repository mutation.
func Decide(actor *User, action Action, target *User, adminCount int64) Decision {
	if actor == nil {
		return deny(ErrNotAuthorized)
	}

	switch action {
	case ActionViewUser, ActionViewAudit:
		// Any authenticated actor; the current scope does not restrict
		// viewing to self.
		return allow()

	case ActionUpdateOwnProfile, ActionChangeOwnPassword:
		if target != nil && target.ID != actor.ID {
			return deny(&NotAuthorizedError{Role: actor.Role})
		}
		return allow()

	case ActionListUsers, ActionCreateUser, ActionUpdateUser, ActionSeedUsers:
		if !actor.IsAdmin() {
			return deny(&NotAuthorizedError{Role: actor.Role})
		}
		return allow()

	case ActionDeleteUser:
		if !actor.IsAdmin() {
			return deny(&NotAuthorizedError{Role: actor.Role})
		}
		// Self-deletion is checked before the last-admin guard and applies
		// regardless of role.
		if target != nil && target.ID == actor.ID {
			return deny(ErrSelfDeletion)
		}
		if target != nil && target.IsAdmin() && adminCount <= 1 {
			return deny(ErrLastAdmin)
		}
		return allow()
	}

	return deny(ErrNotAuthorized)
}
