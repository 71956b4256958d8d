package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/internal/mock"
	"github.com/hmdissanayake/tank-watch/models"
)

func TestGateService_Authorize_PassesVerdictThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ai := mock.NewMockAIAdapter(ctrl)
	svc := NewGateService(ai, logger.Nop())
	ctx := context.Background()
	image := []byte("jpeg-bytes")

	want := models.GateVerdict{Authorized: false, Reason: "face partially out of frame"}
	ai.EXPECT().AuthorizeFace(ctx, image).Return(want, nil)

	got, err := svc.Authorize(ctx, image)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGateService_Authorize_EmptyFrame(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ai := mock.NewMockAIAdapter(ctrl)
	svc := NewGateService(ai, logger.Nop())

	_, err := svc.Authorize(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty capture frame")
}

func TestGateService_Authorize_ModelError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ai := mock.NewMockAIAdapter(ctrl)
	svc := NewGateService(ai, logger.Nop())
	ctx := context.Background()

	ai.EXPECT().AuthorizeFace(ctx, gomock.Any()).
		Return(models.GateVerdict{}, errors.New("model overloaded"))

	_, err := svc.Authorize(ctx, []byte("frame"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gate authorization call")
}
