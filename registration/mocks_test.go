package registration

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/accessviewafrica/summit-registration/events"
)

var discardLogger = slog.New(slog.DiscardHandler)

type mockEventRepository struct {
	events.Repository
	GetEventFunc func(ctx context.Context, id string) (events.Event, error)
}

func (m *mockEventRepository) GetEvent(ctx context.Context, id string) (events.Event, error) {
	return m.GetEventFunc(ctx, id)
}

var _ Repository = &memoryRepository{}

// memoryRepository mirrors the conditional write semantics of the DynamoDB
// store. The optional hooks let tests inject failures or interleavings.
type memoryRepository struct {
	mu            sync.Mutex
	registrations map[string]Registration

	statusWrites int
	touches      int

	BeforeUpdateFunc func(clientReference string)
	AfterUpdateFunc  func(clientReference string)
	UpdateErr        error
	TouchErr         error
	GetErr           error
}

func newMemoryRepository(regs ...Registration) *memoryRepository {
	m := &memoryRepository{registrations: map[string]Registration{}}
	for _, reg := range regs {
		m.registrations[reg.ClientReference] = reg
	}
	return m
}

func (m *memoryRepository) CreateRegistration(ctx context.Context, reg Registration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.registrations[reg.ClientReference]; ok {
		return NewDuplicateReferenceError(fmt.Sprintf("Registration %q already exists", reg.ClientReference), nil)
	}
	m.registrations[reg.ClientReference] = reg
	return nil
}

func (m *memoryRepository) GetRegistration(ctx context.Context, clientReference string) (Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return Registration{}, m.GetErr
	}
	reg, ok := m.registrations[clientReference]
	if !ok {
		return Registration{}, NewRegistrationDoesNotExistsError(fmt.Sprintf("Registration %q not found", clientReference), nil)
	}
	return reg, nil
}

func (m *memoryRepository) UpdatePaymentStatus(ctx context.Context, clientReference string, expected PaymentStatus, update StatusUpdate) (bool, error) {
	if m.BeforeUpdateFunc != nil {
		m.BeforeUpdateFunc(clientReference)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateErr != nil {
		return false, m.UpdateErr
	}
	reg, ok := m.registrations[clientReference]
	if !ok || reg.PaymentStatus != expected {
		return false, nil
	}

	reg.PaymentStatus = update.Status
	reg.PaymentData = update.PaymentData
	reg.UpdatedAt = update.UpdatedAt
	if update.LastProviderCheck != nil {
		reg.LastProviderCheck = update.LastProviderCheck
	}
	m.registrations[clientReference] = reg
	m.statusWrites++
	if m.AfterUpdateFunc != nil {
		m.AfterUpdateFunc(clientReference)
	}
	return true, nil
}

func (m *memoryRepository) TouchProviderCheck(ctx context.Context, clientReference string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.TouchErr != nil {
		return m.TouchErr
	}
	reg := m.registrations[clientReference]
	reg.LastProviderCheck = &at
	m.registrations[clientReference] = reg
	m.touches++
	return nil
}

func (m *memoryRepository) RecordReminder(ctx context.Context, clientReference string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	reg := m.registrations[clientReference]
	reg.ReminderCount++
	reg.LastReminderSent = &at
	m.registrations[clientReference] = reg
	return nil
}

func (m *memoryRepository) ListRegistrations(ctx context.Context, filter ListFilter, limit int32, cursor *string) (ListRegistrationsResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var data []Registration
	for _, reg := range m.registrations {
		if filter.Status != nil && reg.PaymentStatus != *filter.Status {
			continue
		}
		data = append(data, reg)
	}
	return ListRegistrationsResponse{Data: data}, nil
}

func (m *memoryRepository) get(clientReference string) Registration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registrations[clientReference]
}

func (m *memoryRepository) writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.statusWrites
}

type mockProvider struct {
	Configured         bool
	InitiateChargeFunc func(ctx context.Context, req ChargeRequest) (CheckoutHandle, error)
	QueryStatusFunc    func(ctx context.Context, clientReference string, ids ProviderIDs) (ProviderStatus, error)
}

func (m *mockProvider) IsConfigured() bool {
	return m.Configured
}

func (m *mockProvider) InitiateCharge(ctx context.Context, req ChargeRequest) (CheckoutHandle, error) {
	return m.InitiateChargeFunc(ctx, req)
}

func (m *mockProvider) QueryStatus(ctx context.Context, clientReference string, ids ProviderIDs) (ProviderStatus, error) {
	return m.QueryStatusFunc(ctx, clientReference, ids)
}

type recordingNotifier struct {
	mu            sync.Mutex
	confirmations []string
	failures      []string
	reminders     []string

	Err                  error
	SendConfirmationFunc func(ctx context.Context, reg Registration) error
}

func (n *recordingNotifier) SendConfirmation(ctx context.Context, reg Registration) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.confirmations = append(n.confirmations, reg.ClientReference)
	if n.SendConfirmationFunc != nil {
		return n.SendConfirmationFunc(ctx, reg)
	}
	return n.Err
}

func (n *recordingNotifier) SendFailureNotice(ctx context.Context, reg Registration) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, reg.ClientReference)
	return n.Err
}

func (n *recordingNotifier) SendReminder(ctx context.Context, reg Registration, link string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reminders = append(n.reminders, link)
	return n.Err
}

func (n *recordingNotifier) confirmationCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.confirmations)
}

func pendingRegistration(ref string) Registration {
	created := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	return Registration{
		ClientReference: ref,
		EventType:       "ceo",
		CustomerInfo: CustomerInfo{
			FullName:     "Ama Mensah",
			Email:        "ama@example.com",
			Phone:        "0244000000",
			Organization: "Mensah Ventures",
		},
		PaymentStatus: PENDING,
		CreatedAt:     created,
		UpdatedAt:     created,
	}
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 8, 2, 12, 0, 0, 0, time.UTC)
	}
}
