package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ShurikGr/greek-learning-bot/internal/models"
	mock_service "github.com/ShurikGr/greek-learning-bot/internal/service/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newWordServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockRepositoryI)) *WordS {
	repo := mock_service.NewMockRepositoryI(ctrl)
	if setupMock != nil {
		setupMock(repo)
	}

	return NewWordService(repo, zap.NewNop())
}

func TestWordS_AddWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		word       models.Word
		f          func(*mock_service.MockRepositoryI)
		wantErr    bool
		invalidErr bool
	}{
		{
			name: "success",
			word: models.Word{Greek: "ψωμί", Russian: "хлеб", WordType: models.WordTypeNoun, CreatedBy: 7},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().AddWord(gomock.Any(), models.Word{
					Greek: "ψωμί", Russian: "хлеб", WordType: models.WordTypeNoun, CreatedBy: 7,
				}).Return(nil)
			},
		},
		{
			name: "trims whitespace before storing",
			word: models.Word{Greek: " ψωμί ", Russian: " хлеб ", WordType: models.WordTypeNoun},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().AddWord(gomock.Any(), models.Word{
					Greek: "ψωμί", Russian: "хлеб", WordType: models.WordTypeNoun,
				}).Return(nil)
			},
		},
		{
			name:       "empty greek text",
			word:       models.Word{Greek: "  ", Russian: "хлеб", WordType: models.WordTypeNoun},
			wantErr:    true,
			invalidErr: true,
		},
		{
			name:       "unknown word type",
			word:       models.Word{Greek: "ψωμί", Russian: "хлеб", WordType: "sausage"},
			wantErr:    true,
			invalidErr: true,
		},
		{
			name: "db error",
			word: models.Word{Greek: "ψωμί", Russian: "хлеб", WordType: models.WordTypeNoun},
			f: func(mri *mock_service.MockRepositoryI) {
				mri.EXPECT().AddWord(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			wordS := newWordServiceMock(t, ctrl, tt.f)

			err := wordS.AddWord(context.Background(), tt.word)
			if tt.wantErr {
				require.Error(t, err)
				if tt.invalidErr {
					assert.ErrorIs(t, err, ErrInvalidWord)
				}
				return
			}
			require.NoError(t, err)
		})
	}
}
