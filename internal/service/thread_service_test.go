package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/popeskul/crm-comms/internal/apperrors"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/repository"
	"github.com/popeskul/crm-comms/internal/service"
	servicemocks "github.com/popeskul/crm-comms/internal/service/mocks"
)

func TestThreadService_GetOrCreateThread(t *testing.T) {
	tests := []struct {
		name      string
		contactID string
		channel   models.Channel
		setup     func(m *repoMocks)
		wantErr   error
	}{
		{
			name:      "creates thread for known contact",
			contactID: "c1",
			channel:   models.ChannelSMS,
			setup: func(m *repoMocks) {
				m.contact.EXPECT().GetByID(gomock.Any(), "c1").Return(testContact(), nil)
				m.thread.EXPECT().GetOrCreate(gomock.Any(), "c1", models.ChannelSMS).Return(testThread("t1", models.ChannelSMS), nil)
			},
		},
		{
			name:      "unknown contact",
			contactID: "missing",
			channel:   models.ChannelEmail,
			setup: func(m *repoMocks) {
				m.contact.EXPECT().GetByID(gomock.Any(), "missing").Return(nil, apperrors.NotFound("contact", "missing"))
			},
			wantErr: apperrors.ErrNotFound,
		},
		{
			name:      "unsupported channel",
			contactID: "c1",
			channel:   "fax",
			setup:     func(m *repoMocks) {},
			wantErr:   apperrors.ErrValidation,
		},
		{
			name:    "missing contact id",
			channel: models.ChannelSMS,
			setup:   func(m *repoMocks) {},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newRepoMocks(ctrl)
			tt.setup(m)

			svc := service.NewThreadService(m.repo, servicemocks.NewMockSLAService(ctrl), zap.NewNop())
			thread, err := svc.GetOrCreateThread(context.Background(), tt.contactID, tt.channel)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, thread)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "t1", thread.ID)
		})
	}
}

func TestThreadService_AppendMessage(t *testing.T) {
	createdAt := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		direction models.Direction
		setupSLA  func(sla *servicemocks.MockSLAService)
	}{
		{
			name:      "inbound opens SLAs",
			direction: models.DirectionInbound,
			setupSLA: func(sla *servicemocks.MockSLAService) {
				sla.EXPECT().OnInboundMessage(gomock.Any(), "t1", createdAt).
					Return([]*models.ThreadSla{{ID: "s1", ThreadID: "t1"}}, nil)
			},
		},
		{
			name:      "outbound satisfies SLAs",
			direction: models.DirectionOutbound,
			setupSLA: func(sla *servicemocks.MockSLAService) {
				sla.EXPECT().OnOutboundMessage(gomock.Any(), "t1", createdAt).Return(int64(1), nil)
			},
		},
		{
			name:      "SLA failure does not fail the append",
			direction: models.DirectionOutbound,
			setupSLA: func(sla *servicemocks.MockSLAService) {
				sla.EXPECT().OnOutboundMessage(gomock.Any(), "t1", createdAt).Return(int64(0), errors.New("db down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := newRepoMocks(ctrl)
			sla := servicemocks.NewMockSLAService(ctrl)
			tt.setupSLA(sla)

			m.thread.EXPECT().GetByID(gomock.Any(), "t1").Return(testThread("t1", models.ChannelEmail), nil)
			m.message.EXPECT().Append(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, p repository.AppendMessageParams) (*models.Message, error) {
					assert.Equal(t, models.ChannelEmail, p.Channel)
					assert.Equal(t, tt.direction, p.Direction)
					return &models.Message{ID: "m1", ThreadID: p.ThreadID, Seq: 1, Channel: p.Channel, Body: p.Body, CreatedAt: createdAt}, nil
				})

			svc := service.NewThreadService(m.repo, sla, zap.NewNop())
			msg, err := svc.AppendMessage(context.Background(), service.AppendMessageInput{
				ThreadID:  "t1",
				Direction: tt.direction,
				Body:      "Called the client back",
			})

			require.NoError(t, err)
			assert.Equal(t, "m1", msg.ID)
			assert.Equal(t, int64(1), msg.Seq)
		})
	}
}

func TestThreadService_AppendMessage_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newRepoMocks(ctrl)
	svc := service.NewThreadService(m.repo, servicemocks.NewMockSLAService(ctrl), zap.NewNop())

	_, err := svc.AppendMessage(context.Background(), service.AppendMessageInput{ThreadID: "t1", Direction: "sideways", Body: "x"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.AppendMessage(context.Background(), service.AppendMessageInput{ThreadID: "t1", Direction: models.DirectionInbound, Body: "  "})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestThreadService_Snooze(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newRepoMocks(ctrl)
	svc := service.NewThreadService(m.repo, servicemocks.NewMockSLAService(ctrl), zap.NewNop())

	before := time.Now()
	m.thread.EXPECT().Snooze(gomock.Any(), "t1", gomock.Any()).
		DoAndReturn(func(_ context.Context, id string, until time.Time) (*models.Thread, error) {
			assert.WithinDuration(t, before.Add(30*time.Minute), until, 5*time.Second)
			th := testThread(id, models.ChannelSMS)
			th.SnoozeUntil = &until
			return th, nil
		})

	thread, err := svc.Snooze(context.Background(), "t1", 30)
	require.NoError(t, err)
	require.NotNil(t, thread.SnoozeUntil)

	_, err = svc.Snooze(context.Background(), "t1", 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestThreadService_ListThreads_SetsNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newRepoMocks(ctrl)
	svc := service.NewThreadService(m.repo, servicemocks.NewMockSLAService(ctrl), zap.NewNop())

	m.thread.EXPECT().List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.ThreadFilter) ([]*models.Thread, error) {
			assert.False(t, f.Now.IsZero())
			assert.True(t, f.UnreadOnly)
			return []*models.Thread{testThread("t1", models.ChannelSMS)}, nil
		})

	threads, err := svc.ListThreads(context.Background(), models.ThreadFilter{UnreadOnly: true})
	require.NoError(t, err)
	assert.Len(t, threads, 1)

	_, err = svc.ListThreads(context.Background(), models.ThreadFilter{Channel: "pigeon"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestThreadService_ListMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newRepoMocks(ctrl)
	svc := service.NewThreadService(m.repo, servicemocks.NewMockSLAService(ctrl), zap.NewNop())

	m.thread.EXPECT().GetByID(gomock.Any(), "t1").Return(testThread("t1", models.ChannelSMS), nil)
	m.message.EXPECT().ListByThread(gomock.Any(), "t1", 200, int64(10)).Return([]*models.Message{{ID: "m1"}}, nil)

	msgs, err := svc.ListMessages(context.Background(), "t1", 1000, 10)
	require.NoError(t, err)
	assert.Len(t, msgs, 1)

	m.thread.EXPECT().GetByID(gomock.Any(), "nope").Return(nil, apperrors.NotFound("thread", "nope"))
	_, err = svc.ListMessages(context.Background(), "nope", 10, 0)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
