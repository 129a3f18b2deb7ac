package service

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"

	"billun/internal/cache"
	"billun/internal/model"
	"billun/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int64), args.Error(1)
}

// MockMaterielRepository is a mock implementation of MaterielRepository.
// WithTransaction runs the callback against the mock itself.
type MockMaterielRepository struct {
	mock.Mock
}

func (m *MockMaterielRepository) Create(ctx context.Context, materiel *model.Materiel) error {
	args := m.Called(ctx, materiel)
	if args.Error(0) == nil {
		materiel.ID = 1
	}
	return args.Error(0)
}

func (m *MockMaterielRepository) Update(ctx context.Context, materiel *model.Materiel) error {
	args := m.Called(ctx, materiel)
	return args.Error(0)
}

func (m *MockMaterielRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMaterielRepository) FindByID(ctx context.Context, id uint) (*model.Materiel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Materiel), args.Error(1)
}

func (m *MockMaterielRepository) FindByIdentifiant(ctx context.Context, identifiant string) (*model.Materiel, error) {
	args := m.Called(ctx, identifiant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Materiel), args.Error(1)
}

func (m *MockMaterielRepository) Exists(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMaterielRepository) List(ctx context.Context) ([]model.Materiel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Materiel), args.Error(1)
}

func (m *MockMaterielRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMaterielRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.MaterielRepository) error) error {
	return fn(ctx, m)
}

// MockAnomalieRepository is a mock implementation of AnomalieRepository.
type MockAnomalieRepository struct {
	mock.Mock
}

func (m *MockAnomalieRepository) Create(ctx context.Context, anomalie *model.Anomalie) error {
	args := m.Called(ctx, anomalie)
	return args.Error(0)
}

func (m *MockAnomalieRepository) Update(ctx context.Context, anomalie *model.Anomalie) error {
	args := m.Called(ctx, anomalie)
	return args.Error(0)
}

func (m *MockAnomalieRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAnomalieRepository) FindByID(ctx context.Context, id uint) (*model.Anomalie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Anomalie), args.Error(1)
}

func (m *MockAnomalieRepository) List(ctx context.Context) ([]model.Anomalie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Anomalie), args.Error(1)
}

func (m *MockAnomalieRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSender is a mock implementation of mailer.Sender.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendTempPassword(ctx context.Context, to, password string) error {
	args := m.Called(ctx, to, password)
	return args.Error(0)
}

func (m *MockSender) SendAPKLink(ctx context.Context, to, link string) error {
	args := m.Called(ctx, to, link)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }

func intPtr(i int) *int { return &i }

// newTestCache returns a cache client backed by an in-process redis server.
func newTestCache(t *testing.T) (*cache.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := cache.NewFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}
