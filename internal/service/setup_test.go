package service_test

import (
	"time"

	"go.uber.org/mock/gomock"

	"github.com/popeskul/crm-comms/internal/config"
	"github.com/popeskul/crm-comms/internal/models"
	"github.com/popeskul/crm-comms/internal/repository/mocks"
)

// repoMocks wires a MockRepository to one mock per entity store.
type repoMocks struct {
	repo     *mocks.MockRepository
	contact  *mocks.MockContactRepository
	thread   *mocks.MockThreadRepository
	message  *mocks.MockMessageRepository
	template *mocks.MockTemplateRepository
	outbox   *mocks.MockOutboxRepository
	sla      *mocks.MockSLARepository
	reminder *mocks.MockReminderRepository
	call     *mocks.MockCallRepository
}

func newRepoMocks(ctrl *gomock.Controller) *repoMocks {
	m := &repoMocks{
		repo:     mocks.NewMockRepository(ctrl),
		contact:  mocks.NewMockContactRepository(ctrl),
		thread:   mocks.NewMockThreadRepository(ctrl),
		message:  mocks.NewMockMessageRepository(ctrl),
		template: mocks.NewMockTemplateRepository(ctrl),
		outbox:   mocks.NewMockOutboxRepository(ctrl),
		sla:      mocks.NewMockSLARepository(ctrl),
		reminder: mocks.NewMockReminderRepository(ctrl),
		call:     mocks.NewMockCallRepository(ctrl),
	}

	m.repo.EXPECT().Contact().Return(m.contact).AnyTimes()
	m.repo.EXPECT().Thread().Return(m.thread).AnyTimes()
	m.repo.EXPECT().Message().Return(m.message).AnyTimes()
	m.repo.EXPECT().Template().Return(m.template).AnyTimes()
	m.repo.EXPECT().Outbox().Return(m.outbox).AnyTimes()
	m.repo.EXPECT().SLA().Return(m.sla).AnyTimes()
	m.repo.EXPECT().Reminder().Return(m.reminder).AnyTimes()
	m.repo.EXPECT().Call().Return(m.call).AnyTimes()
	return m
}

func testConfig() *config.Config {
	return &config.Config{
		Outbox: config.OutboxConfig{
			QARequired: map[string]bool{"email": true, "sms": false, "voice": false},
		},
		Cooldown: config.CooldownConfig{
			Backend:       "memory",
			WindowSeconds: 300,
			KeyPrefix:     "cooldown:",
		},
		Templates: config.TemplatesConfig{DefaultLocale: "en"},
		SLA:       config.SLAConfig{SweepIntervalSeconds: 60},
		Reminders: config.RemindersConfig{DispatchIntervalSeconds: 60, BatchSize: 10},
		OptOut: config.OptOutConfig{
			StopKeywords:  []string{"STOP", "UNSUBSCRIBE"},
			StartKeywords: []string{"START"},
		},
	}
}

func strPtr(s string) *string {
	return &s
}

func testContact() *models.Contact {
	return &models.Contact{
		ID:        "c1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     strPtr("+15550001"),
		Email:     strPtr("ada@example.com"),
	}
}

func testThread(id string, channel models.Channel) *models.Thread {
	return &models.Thread{
		ID:        id,
		ContactID: "c1",
		Channel:   channel,
		Status:    models.ThreadStatusOpen,
		CreatedAt: time.Now(),
	}
}
