package settings_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"spendwise/internal/settings"
	"spendwise/internal/settings/mocks"
)

func TestDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().Get(ctx, settings.KeyLanguage).Return("", false, nil)
	repo.EXPECT().Get(ctx, settings.KeyTheme).Return("", false, nil)
	repo.EXPECT().Get(ctx, settings.KeyCurrencySymbol).Return("", false, nil)

	s := settings.New(repo)

	lang, err := s.Language(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "en", lang)

	theme, err := s.Theme(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "light", theme)

	sym, ok, err := s.CurrencySymbol(ctx)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, sym)
}

func TestStoredValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().Get(ctx, settings.KeyLanguage).Return("ar", true, nil)
	repo.EXPECT().Get(ctx, settings.KeyCurrencySymbol).Return("€", true, nil)

	s := settings.New(repo)

	lang, err := s.Language(ctx)
	assert.NoError(t, err)
	assert.Equal(t, "ar", lang)

	sym, ok, err := s.CurrencySymbol(ctx)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "€", sym)
}

func TestReadErrorFallsBackToDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockRepository(ctrl)
	repo.EXPECT().Get(ctx, settings.KeyTheme).Return("", false, errors.New("disk gone"))

	theme, err := settings.New(repo).Theme(ctx)
	assert.Error(t, err)
	assert.Equal(t, "light", theme)
}

func TestSetCurrencySymbol(t *testing.T) {
	tests := []struct {
		name    string
		symbol  string
		expect  func(r *mocks.MockRepositoryMockRecorder)
		wantErr bool
	}{
		{
			name:   "stores trimmed symbol",
			symbol: "  CAD ",
			expect: func(r *mocks.MockRepositoryMockRecorder) {
				r.Set(gomock.Any(), settings.KeyCurrencySymbol, "CAD").Return(nil)
			},
		},
		{
			name:   "empty clears",
			symbol: "   ",
			expect: func(r *mocks.MockRepositoryMockRecorder) {
				r.Delete(gomock.Any(), settings.KeyCurrencySymbol).Return(nil)
			},
		},
		{
			name:   "write failure surfaces",
			symbol: "$",
			expect: func(r *mocks.MockRepositoryMockRecorder) {
				r.Set(gomock.Any(), settings.KeyCurrencySymbol, "$").Return(errors.New("readonly"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockRepository(ctrl)
			tt.expect(repo.EXPECT())

			err := settings.New(repo).SetCurrencySymbol(context.Background(), tt.symbol)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSetLanguageAndTheme(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	repo := mocks.NewMockRepository(ctrl)
	gomock.InOrder(
		repo.EXPECT().Set(ctx, settings.KeyLanguage, "ar").Return(nil),
		repo.EXPECT().Set(ctx, settings.KeyTheme, "dark").Return(nil),
	)

	s := settings.New(repo)
	assert.NoError(t, s.SetLanguage(ctx, "ar"))
	assert.NoError(t, s.SetTheme(ctx, "dark"))
	assert.Error(t, s.SetTheme(ctx, ""))
}
