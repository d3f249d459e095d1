package domain

// Principal is the authenticated identity behind a request, derived from a
// verified token. The zero value is the anonymous principal.
type Principal struct {
	ID       string
	UserName string
	Email    string
	Role     string
}

// Authenticated reports whether the principal carries a verified identity.
func (p Principal) Authenticated() bool {
	return p.ID != ""
}

// Operation identifies a protected action for the authorization policy.
type Operation int

const (
	// OpRead covers single and list reads; always allowed, sensitive fields
	// are filtered by the access layer, not the policy.
	OpRead Operation = iota
	// OpRegister creates a user account; open to anonymous callers.
	OpRegister
	// OpCreateCat creates a cat owned by the acting principal.
	OpCreateCat
	// OpSelfUpdate and OpSelfDelete act on the principal's own user record;
	// the target is derived from the token, so no ownership check applies.
	OpSelfUpdate
	OpSelfDelete
	// OpCatUpdate and OpCatDelete are the owner routes for cats.
	OpCatUpdate
	OpCatDelete
	// OpCatTransfer and OpCatAdminDelete are the admin routes; gated on role
	// alone, never on ownership.
	OpCatTransfer
	OpCatAdminDelete
)

// Authorize decides whether principal p may perform op on the resource owned
// by ownerID (empty for operations without a target). It returns nil on
// allow, ErrUnauthorized when authentication is missing, and ErrForbidden
// when the authenticated principal fails the rule. First matching rule wins.
func Authorize(p Principal, op Operation, ownerID string) error {
	switch op {
	case OpRead, OpRegister:
		return nil
	case OpCreateCat, OpSelfUpdate, OpSelfDelete:
		if !p.Authenticated() {
			return ErrUnauthorized
		}
		return nil
	case OpCatUpdate, OpCatDelete:
		if !p.Authenticated() {
			return ErrUnauthorized
		}
		if p.ID != ownerID {
			return ErrForbidden
		}
		return nil
	case OpCatTransfer, OpCatAdminDelete:
		if !p.Authenticated() {
			return ErrUnauthorized
		}
		if p.Role != RoleAdmin {
			return ErrForbidden
		}
		return nil
	}
	return ErrForbidden
}
