package services

import (
	"context"
	"errors"
	"testing"

	"github.com/acadegrade/result-service/internal/events"
	"github.com/acadegrade/result-service/internal/mailer"
	"github.com/acadegrade/result-service/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMailer is a mock implementation of mailer.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg *mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func newContactServiceForTest(repo *mockRepository, mail mailer.Mailer) (ContactService, *events.MockEventPublisher) {
	publisher := events.NewMockEventPublisher(testLogger())
	svc := NewContactService(repo, testLogger(), validator.New(), mail, "support@example.com", publisher)
	return svc, publisher
}

func TestContactServiceSubmit(t *testing.T) {
	repo := newMockRepository()
	mail := &MockMailer{}
	svc, publisher := newContactServiceForTest(repo, mail)

	repo.contact.On("Create", mock.Anything, mock.AnythingOfType("*models.ContactMessage")).Return(nil)
	mail.On("Send", mock.Anything, mock.AnythingOfType("*mailer.Message")).Return(nil)

	resp, err := svc.Submit(context.Background(), &ContactRequest{
		Name:    "Ada Obi",
		Email:   "ada@example.com",
		Message: "The exported sheet is missing a semester.",
	})

	assert.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	// One forward to the site inbox, one acknowledgement to the sender.
	mail.AssertNumberOfCalls(t, "Send", 2)
	assert.Len(t, publisher.PublishedEvents(), 1)
	assert.Equal(t, events.EventContactReceived, publisher.PublishedEvents()[0].Type)
}

func TestContactServiceSubmitDegradesOnMailFailure(t *testing.T) {
	repo := newMockRepository()
	mail := &MockMailer{}
	svc, _ := newContactServiceForTest(repo, mail)

	repo.contact.On("Create", mock.Anything, mock.AnythingOfType("*models.ContactMessage")).Return(nil)
	mail.On("Send", mock.Anything, mock.AnythingOfType("*mailer.Message")).Return(errors.New("smtp down"))

	resp, err := svc.Submit(context.Background(), &ContactRequest{
		Name:    "Ada Obi",
		Email:   "ada@example.com",
		Message: "Hello",
	})

	// The message is stored even when delivery fails; only the status degrades.
	assert.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	repo.contact.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContactServiceSubmitValidation(t *testing.T) {
	repo := newMockRepository()
	mail := &MockMailer{}
	svc, _ := newContactServiceForTest(repo, mail)

	_, err := svc.Submit(context.Background(), &ContactRequest{
		Name:  "Ada Obi",
		Email: "not-an-email",
	})

	assert.Error(t, err)
	assert.True(t, IsValidation(err))
	repo.contact.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}
