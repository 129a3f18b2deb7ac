package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "billun/internal/errors"
	"billun/internal/model"
	"billun/internal/optional"
)

func validMaterielInput() MaterielInput {
	return MaterielInput{
		Identifiant:  strPtr("MAT-001"),
		Plaque:       strPtr("AB-123-CD"),
		TypeMateriel: strPtr("camion"),
	}
}

func TestMaterielService_CreateMateriel(t *testing.T) {
	tests := []struct {
		name          string
		input         func() MaterielInput
		setupMock     func(*MockMaterielRepository, *MockUserRepository)
		expectedError error
		blankFields   []string
	}{
		{
			name:  "defaults applied",
			input: validMaterielInput,
			setupMock: func(m *MockMaterielRepository, _ *MockUserRepository) {
				m.On("FindByIdentifiant", mock.Anything, "MAT-001").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.MatchedBy(func(mat *model.Materiel) bool {
					return mat.Statut == model.StatutDisponible && mat.Kilometrage == 0
				})).Return(nil)
			},
		},
		{
			name: "with responsable",
			input: func() MaterielInput {
				in := validMaterielInput()
				in.ResponsableID = optional.Some[uint](3)
				in.Kilometrage = intPtr(120000)
				return in
			},
			setupMock: func(m *MockMaterielRepository, u *MockUserRepository) {
				u.On("FindByID", mock.Anything, uint(3)).Return(&model.User{ID: 3}, nil)
				m.On("FindByIdentifiant", mock.Anything, "MAT-001").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Materiel")).Return(nil)
			},
		},
		{
			name:  "duplicate identifiant",
			input: validMaterielInput,
			setupMock: func(m *MockMaterielRepository, _ *MockUserRepository) {
				m.On("FindByIdentifiant", mock.Anything, "MAT-001").Return(&model.Materiel{ID: 9, Identifiant: "MAT-001"}, nil)
			},
			expectedError: apperrors.ErrIdentifiantTaken,
		},
		{
			name: "blank required fields",
			input: func() MaterielInput {
				return MaterielInput{Identifiant: strPtr("   "), Plaque: strPtr(""), TypeMateriel: strPtr("camion")}
			},
			setupMock:   func(*MockMaterielRepository, *MockUserRepository) {},
			blankFields: []string{"identifiant", "plaque"},
		},
		{
			name: "unknown responsable",
			input: func() MaterielInput {
				in := validMaterielInput()
				in.ResponsableID = optional.Some[uint](42)
				return in
			},
			setupMock: func(_ *MockMaterielRepository, u *MockUserRepository) {
				u.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUnknownResponsable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMaterielRepository)
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockRepo, mockUsers)

			service := NewMaterielService(mockRepo, mockUsers, NewChangeTracker(nil))
			materiel, err := service.CreateMateriel(context.Background(), tt.input())

			switch {
			case len(tt.blankFields) > 0:
				var verr *apperrors.ValidationError
				require.ErrorAs(t, err, &verr)
				for _, f := range tt.blankFields {
					assert.Contains(t, verr.Fields, f)
				}
				mockRepo.AssertNotCalled(t, "FindByIdentifiant", mock.Anything, mock.Anything)
			case tt.expectedError != nil:
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, materiel)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			default:
				require.NoError(t, err)
				assert.NotZero(t, materiel.ID)
				assert.Equal(t, "MAT-001", materiel.Identifiant)
			}

			mockRepo.AssertExpectations(t)
			mockUsers.AssertExpectations(t)
		})
	}
}

func TestMaterielService_CreateMateriel_PersistenceFailure(t *testing.T) {
	mockRepo := new(MockMaterielRepository)
	mockRepo.On("FindByIdentifiant", mock.Anything, "MAT-001").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Materiel")).Return(errors.New("disk full"))

	service := NewMaterielService(mockRepo, new(MockUserRepository), NewChangeTracker(nil))
	_, err := service.CreateMateriel(context.Background(), validMaterielInput())

	require.Error(t, err)
	assert.Equal(t, 500, apperrors.MapErrorToHTTP(err).StatusCode)
}

func TestMaterielService_UpdateMateriel(t *testing.T) {
	inspection := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	existing := func() *model.Materiel {
		return &model.Materiel{
			ID: 1, Identifiant: "MAT-001", Plaque: "AB-123-CD", TypeMateriel: "camion",
			Statut: model.StatutDisponible, Kilometrage: 1000, DateControleTechnique: &inspection,
		}
	}

	t.Run("statut only", func(t *testing.T) {
		mockRepo := new(MockMaterielRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(existing(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Materiel")).Return(nil)

		service := NewMaterielService(mockRepo, new(MockUserRepository), NewChangeTracker(nil))
		updated, err := service.UpdateMateriel(context.Background(), 1, MaterielInput{Statut: strPtr("en maintenance")})

		require.NoError(t, err)
		want := existing()
		want.Statut = "en maintenance"
		assert.Equal(t, want, updated)
	})

	t.Run("identifiant taken by another record", func(t *testing.T) {
		mockRepo := new(MockMaterielRepository)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(existing(), nil)
		mockRepo.On("FindByIdentifiant", mock.Anything, "MAT-002").Return(&model.Materiel{ID: 2, Identifiant: "MAT-002"}, nil)

		service := NewMaterielService(mockRepo, new(MockUserRepository), NewChangeTracker(nil))
		_, err := service.UpdateMateriel(context.Background(), 1, MaterielInput{Identifiant: strPtr("MAT-002")})

		assert.ErrorIs(t, err, apperrors.ErrIdentifiantTaken)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("blank plaque rejected", func(t *testing.T) {
		mockRepo := new(MockMaterielRepository)
		service := NewMaterielService(mockRepo, new(MockUserRepository), NewChangeTracker(nil))

		_, err := service.UpdateMateriel(context.Background(), 1, MaterielInput{Plaque: strPtr(" ")})

		var verr *apperrors.ValidationError
		assert.ErrorAs(t, err, &verr)
		mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo := new(MockMaterielRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(nil, gorm.ErrRecordNotFound)

		service := NewMaterielService(mockRepo, new(MockUserRepository), NewChangeTracker(nil))
		_, err := service.UpdateMateriel(context.Background(), 5, MaterielInput{Statut: strPtr("x")})

		assert.ErrorIs(t, err, apperrors.ErrMaterielNotFound)
	})
}

func TestMaterielService_DeleteMateriel(t *testing.T) {
	mockRepo := new(MockMaterielRepository)
	mockRepo.On("Delete", mock.Anything, uint(1)).Return(nil)
	mockRepo.On("Delete", mock.Anything, uint(2)).Return(gorm.ErrRecordNotFound)

	service := NewMaterielService(mockRepo, new(MockUserRepository), NewChangeTracker(nil))

	assert.NoError(t, service.DeleteMateriel(context.Background(), 1))
	assert.ErrorIs(t, service.DeleteMateriel(context.Background(), 2), apperrors.ErrMaterielNotFound)
}

func TestChangeTracker_LastUpdateWithoutCache(t *testing.T) {
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	tracker := NewChangeTracker(nil)
	tracker.now = func() time.Time { return fixed }

	tracker.Touch(context.Background())
	assert.Equal(t, fixed, tracker.LastUpdate(context.Background()))

	var nilTracker *ChangeTracker
	assert.WithinDuration(t, time.Now(), nilTracker.LastUpdate(context.Background()), time.Second)
}
