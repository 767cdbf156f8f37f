package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/domain/model"
	apperrors "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/errors"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/mocks"
	mockauth "github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/mocks/auth"
	"github.com/ahsan-sami-turzo/BagBank-Admin-Panel-Frontend/internal/mocks/catalog"
)

var creds = &mockauth.StaticCredentials{Value: "token"}

func TestSupplierService_DeleteThenReload(t *testing.T) {
	api := catalog.NewSuppliers()
	api.Seed(
		model.Supplier{ID: "41", Name: "Dhaka Leather", SupplierType: model.SupplierFactory},
		model.Supplier{ID: "42", Name: "Acme Wholesale", SupplierType: model.SupplierWholesaler},
	)
	svc := NewSupplierService(SupplierServiceOptions{API: api})
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, creds, "42"))
	res, err := svc.List(ctx, creds, model.SupplierFilter{})
	require.NoError(t, err)

	assert.Equal(t, []string{"delete 42", "list"}, api.Calls())
	assert.Equal(t, 1, res.Total)
	for _, s := range res.Items {
		assert.NotEqual(t, model.ID("42"), s.ID)
	}
}

func TestSupplierService_ValidationSkipsNetwork(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockResourceAPI[model.Supplier, model.SupplierInput](ctrl)
	svc := NewSupplierService(SupplierServiceOptions{API: api})

	_, err := svc.Create(context.Background(), creds, model.SupplierInput{Name: "   ", Email: "not-an-email"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	fields := apperrors.GetFields(err)
	assert.Equal(t, "Name is required", fields["name"])
	assert.Equal(t, "Invalid email", fields["email"])
}

func TestSupplierService_CreateNormalizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockResourceAPI[model.Supplier, model.SupplierInput](ctrl)
	api.EXPECT().
		Create(gomock.Any(), creds, model.SupplierInput{Name: "Acme", SupplierType: model.SupplierWholesaler, IsActive: true}).
		Return(model.Supplier{ID: "7", Name: "Acme"}, nil)

	svc := NewSupplierService(SupplierServiceOptions{API: api})
	got, err := svc.Create(context.Background(), creds, model.SupplierInput{Name: "  Acme ", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, model.ID("7"), got.ID)
}

func TestSupplierService_FailureClassification(t *testing.T) {
	remoteDown := apperrors.Wrap(errors.New("connection refused"), apperrors.ErrCodeUnavailable, "The BagBank API is unreachable.")
	expired := apperrors.AuthorizationExpired(errors.New("401"))
	conflict := apperrors.FromStatus(409, "Supplier name already exists")

	tests := []struct {
		name     string
		run      func(*SupplierService) error
		remote   error
		wantCode apperrors.ErrorCode
		wantMsg  string
	}{
		{
			name: "list unavailable",
			run: func(s *SupplierService) error {
				_, err := s.List(context.Background(), creds, model.SupplierFilter{})
				return err
			},
			remote:   remoteDown,
			wantCode: apperrors.ErrCodeLoadFailed,
			wantMsg:  "Failed to load suppliers",
		},
		{
			name: "list expired passes through",
			run: func(s *SupplierService) error {
				_, err := s.List(context.Background(), creds, model.SupplierFilter{})
				return err
			},
			remote:   expired,
			wantCode: apperrors.ErrCodeAuthorizationExpired,
		},
		{
			name: "update conflict keeps detail",
			run: func(s *SupplierService) error {
				_, err := s.Update(context.Background(), creds, "3", model.SupplierInput{Name: "Acme"})
				return err
			},
			remote:   conflict,
			wantCode: apperrors.ErrCodeSaveFailed,
			wantMsg:  "Save failed: Supplier name already exists",
		},
		{
			name: "delete unavailable",
			run: func(s *SupplierService) error {
				return s.Delete(context.Background(), creds, "3")
			},
			remote:   remoteDown,
			wantCode: apperrors.ErrCodeDeleteFailed,
			wantMsg:  "Delete failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := catalog.NewSuppliers()
			api.Seed(model.Supplier{ID: "3", Name: "Old"})
			api.Err = tt.remote
			svc := NewSupplierService(SupplierServiceOptions{API: api})

			err := tt.run(svc)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.GetCode(err))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, apperrors.UserMessage(err, ""))
			}
		})
	}
}

func TestSupplierService_GetNotFoundPassesThrough(t *testing.T) {
	svc := NewSupplierService(SupplierServiceOptions{API: catalog.NewSuppliers()})

	_, err := svc.Get(context.Background(), creds, "99")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.Get(context.Background(), creds, "")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAttributeService_RoutesByType(t *testing.T) {
	attrs := catalog.NewAttributeCatalog()
	svc := NewAttributeService(AttributeServiceOptions{API: attrs})
	ctx := context.Background()

	created, err := svc.Create(ctx, creds, model.AttributeColors, model.AttributeInput{Name: " Red ", Hex: "#ff0000", IsActive: true})
	require.NoError(t, err)
	assert.Equal(t, "Red", created.Name)

	colors, err := svc.List(ctx, creds, model.AttributeColors, model.AttributeFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, colors.Total)

	brands, err := svc.List(ctx, creds, model.AttributeBrands, model.AttributeFilter{})
	require.NoError(t, err)
	assert.Zero(t, brands.Total)

	_, err = svc.List(ctx, creds, "sizes", model.AttributeFilter{})
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.Create(ctx, creds, model.AttributeBrands, model.AttributeInput{})
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, attrs.Memory(model.AttributeBrands).Calls())
}

func TestAttributeService_ListFailure(t *testing.T) {
	attrs := catalog.NewAttributeCatalog()
	attrs.Memory(model.AttributeStyles).Err = apperrors.FromStatus(500, "")
	svc := NewAttributeService(AttributeServiceOptions{API: attrs})

	_, err := svc.List(context.Background(), creds, model.AttributeStyles, model.AttributeFilter{})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeLoadFailed, apperrors.GetCode(err))
	assert.Equal(t, MsgLoadFailed, apperrors.UserMessage(err, ""))
}
