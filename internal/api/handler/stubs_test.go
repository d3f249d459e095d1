package handler

import (
	"context"
	"io"

	"github.com/whiskerworks/cat-registry/internal/core/domain"
	"github.com/whiskerworks/cat-registry/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

type stubUserService struct {
	getFn    func(ctx context.Context, id string) (*domain.UserProfile, error)
	listFn   func(ctx context.Context) ([]domain.UserProfile, error)
	updateFn func(ctx context.Context, principal domain.Principal, input ports.UpdateUserInput) (*domain.UserProfile, error)
	deleteFn func(ctx context.Context, principal domain.Principal) (*domain.UserProfile, error)
}

func (s *stubUserService) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	return s.getFn(ctx, id)
}

func (s *stubUserService) List(ctx context.Context) ([]domain.UserProfile, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) UpdateCurrent(ctx context.Context, principal domain.Principal, input ports.UpdateUserInput) (*domain.UserProfile, error) {
	return s.updateFn(ctx, principal, input)
}

func (s *stubUserService) DeleteCurrent(ctx context.Context, principal domain.Principal) (*domain.UserProfile, error) {
	return s.deleteFn(ctx, principal)
}

type stubCatService struct {
	getFn       func(ctx context.Context, id string) (*domain.Cat, error)
	listFn      func(ctx context.Context) ([]*domain.Cat, error)
	listOwnFn   func(ctx context.Context, principal domain.Principal) ([]*domain.Cat, error)
	boundsFn    func(ctx context.Context, topRight, bottomLeft string) ([]*domain.Cat, error)
	createFn    func(ctx context.Context, principal domain.Principal, input ports.CreateCatInput) (*domain.Cat, error)
	updateOwnFn func(ctx context.Context, principal domain.Principal, id string, input ports.UpdateCatInput) (*domain.Cat, error)
	deleteOwnFn func(ctx context.Context, principal domain.Principal, id string) (*domain.Cat, error)
	transferFn  func(ctx context.Context, principal domain.Principal, id, newOwnerID string) (*domain.Cat, error)
	deleteAnyFn func(ctx context.Context, principal domain.Principal, id string) (*domain.Cat, error)
}

func (s *stubCatService) GetByID(ctx context.Context, id string) (*domain.Cat, error) {
	return s.getFn(ctx, id)
}

func (s *stubCatService) List(ctx context.Context) ([]*domain.Cat, error) {
	return s.listFn(ctx)
}

func (s *stubCatService) ListByOwner(ctx context.Context, principal domain.Principal) ([]*domain.Cat, error) {
	return s.listOwnFn(ctx, principal)
}

func (s *stubCatService) FindWithinBounds(ctx context.Context, topRight, bottomLeft string) ([]*domain.Cat, error) {
	return s.boundsFn(ctx, topRight, bottomLeft)
}

func (s *stubCatService) Create(ctx context.Context, principal domain.Principal, input ports.CreateCatInput) (*domain.Cat, error) {
	return s.createFn(ctx, principal, input)
}

func (s *stubCatService) UpdateOwn(ctx context.Context, principal domain.Principal, id string, input ports.UpdateCatInput) (*domain.Cat, error) {
	return s.updateOwnFn(ctx, principal, id, input)
}

func (s *stubCatService) DeleteOwn(ctx context.Context, principal domain.Principal, id string) (*domain.Cat, error) {
	return s.deleteOwnFn(ctx, principal, id)
}

func (s *stubCatService) Transfer(ctx context.Context, principal domain.Principal, id, newOwnerID string) (*domain.Cat, error) {
	return s.transferFn(ctx, principal, id, newOwnerID)
}

func (s *stubCatService) DeleteAny(ctx context.Context, principal domain.Principal, id string) (*domain.Cat, error) {
	return s.deleteAnyFn(ctx, principal, id)
}

type stubFileStore struct {
	savedName string
	saved     []byte
	removed   []string
}

func (s *stubFileStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	s.savedName = originalName
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.saved = data
	return "stored.jpg", nil
}

func (s *stubFileStore) Remove(ctx context.Context, name string) error {
	s.removed = append(s.removed, name)
	return nil
}
