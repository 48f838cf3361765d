package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/order-booker-api/infrastructure/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestDraftCleanupService_CleanupDrafts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	draftRepo := mocks.NewMockDraftRepository(ctrl)
	service := &DraftCleanupService{
		draftRepo: draftRepo,
		config:    DraftCleanupConfig{RetentionDays: 7, SyncEnabled: true},
	}

	draftRepo.EXPECT().DeleteOlderThan(gomock.Any(), 7).Return(int64(4), nil)
	require.NoError(t, service.CleanupDrafts(context.Background()))
	assert.Equal(t, int64(4), service.GetStatus()["last_deleted"])

	draftRepo.EXPECT().DeleteOlderThan(gomock.Any(), 7).Return(int64(0), errors.New("boom"))
	assert.Error(t, service.CleanupDrafts(context.Background()))
	assert.Equal(t, int64(4), service.GetStatus()["last_deleted"])
	assert.False(t, service.GetStatus()["sync_running"].(bool))
}

func TestDraftCleanupService_SkipsWhenRunning(t *testing.T) {
	service := &DraftCleanupService{syncRunning: true}

	require.NoError(t, service.CleanupDrafts(context.Background()))
	assert.True(t, service.GetStatus()["sync_running"].(bool))
}
