package domain

import (
	"errors"
	"testing"
)

func TestAuthorize_ReadAlwaysAllowed(t *testing.T) {
	if err := Authorize(Principal{}, OpRead, "someone"); err != nil {
		t.Fatalf("anonymous read denied: %v", err)
	}
	if err := Authorize(Principal{}, OpRegister, ""); err != nil {
		t.Fatalf("anonymous register denied: %v", err)
	}
}

func TestAuthorize_RequiresAuthentication(t *testing.T) {
	ops := []Operation{OpCreateCat, OpSelfUpdate, OpSelfDelete, OpCatUpdate, OpCatDelete, OpCatTransfer, OpCatAdminDelete}
	for _, op := range ops {
		if err := Authorize(Principal{}, op, "u1"); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("op %d: expected ErrUnauthorized for anonymous, got %v", op, err)
		}
	}
}

func TestAuthorize_OwnerRoutes(t *testing.T) {
	owner := Principal{ID: "u1", Role: RoleUser}
	other := Principal{ID: "u2", Role: RoleUser}

	for _, op := range []Operation{OpCatUpdate, OpCatDelete} {
		if err := Authorize(owner, op, "u1"); err != nil {
			t.Fatalf("op %d: owner denied: %v", op, err)
		}
		if err := Authorize(other, op, "u1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("op %d: expected ErrForbidden for non-owner, got %v", op, err)
		}
	}
}

func TestAuthorize_NonAdminCannotUseAdminRoutes(t *testing.T) {
	// Even the cat's own owner may not use the admin routes.
	owner := Principal{ID: "u1", Role: RoleUser}
	for _, op := range []Operation{OpCatTransfer, OpCatAdminDelete} {
		if err := Authorize(owner, op, "u1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("op %d: expected ErrForbidden for role user, got %v", op, err)
		}
	}
}

func TestAuthorize_AdminRoutesIgnoreOwnership(t *testing.T) {
	admin := Principal{ID: "a1", Role: RoleAdmin}
	for _, op := range []Operation{OpCatTransfer, OpCatAdminDelete} {
		if err := Authorize(admin, op, "someone-else"); err != nil {
			t.Fatalf("op %d: admin denied: %v", op, err)
		}
	}
}
