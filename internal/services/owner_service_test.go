package services

import (
	"context"
	"testing"

	"github.com/acadegrade/result-service/internal/auth"
	"github.com/acadegrade/result-service/internal/cache"
	"github.com/acadegrade/result-service/internal/events"
	"github.com/acadegrade/result-service/internal/models"
	"github.com/acadegrade/result-service/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newOwnerServiceForTest(repo *mockRepository) (OwnerService, *events.MockEventPublisher) {
	publisher := events.NewMockEventPublisher(testLogger())
	svc := NewOwnerService(repo, testLogger(), validator.New(), cache.NewNoopCache(), publisher)
	return svc, publisher
}

func TestOwnerServiceSyncIdentityCreates(t *testing.T) {
	repo := newMockRepository()
	svc, publisher := newOwnerServiceForTest(repo)

	repo.owner.On("Upsert", mock.Anything, mock.AnythingOfType("*models.Owner")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Owner).ID = 7
		}).
		Return(true, nil)

	resp, err := svc.SyncIdentity(context.Background(), &auth.Claims{
		UID:   "u1",
		Email: "ada@example.com",
		Name:  "Ada Obi",
	}, nil)

	assert.NoError(t, err)
	assert.True(t, resp.Created)
	assert.Equal(t, "u1", resp.Owner.UID)
	assert.Equal(t, "Ada Obi", resp.Owner.Name)

	assert.Len(t, publisher.PublishedEvents(), 1)
	assert.Equal(t, events.EventOwnerSynced, publisher.PublishedEvents()[0].Type)
}

func TestOwnerServiceSyncIdentityPrefersRequestName(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newOwnerServiceForTest(repo)

	var upserted *models.Owner
	repo.owner.On("Upsert", mock.Anything, mock.AnythingOfType("*models.Owner")).
		Run(func(args mock.Arguments) {
			upserted = args.Get(1).(*models.Owner)
		}).
		Return(false, nil)

	_, err := svc.SyncIdentity(context.Background(), &auth.Claims{
		UID:   "u1",
		Email: "ada@example.com",
		Name:  "Ada Obi",
	}, &SyncIdentityRequest{Name: "A. Obi"})

	assert.NoError(t, err)
	assert.Equal(t, "A. Obi", upserted.Name)
}

func TestOwnerServiceSyncIdentityMissingClaims(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newOwnerServiceForTest(repo)

	_, err := svc.SyncIdentity(context.Background(), &auth.Claims{UID: "u1"}, nil)
	assert.ErrorIs(t, err, ErrMissingIdentity)
	assert.True(t, IsValidation(err))
	repo.owner.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestOwnerServiceResolveOwner(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newOwnerServiceForTest(repo)

	repo.owner.On("GetByUID", mock.Anything, "u1").Return(&models.Owner{ID: 7, UID: "u1"}, nil)

	owner, err := svc.ResolveOwner(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, uint(7), owner.ID)
}

func TestOwnerServiceResolveOwnerUnknown(t *testing.T) {
	repo := newMockRepository()
	svc, _ := newOwnerServiceForTest(repo)

	repo.owner.On("GetByUID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ResolveOwner(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}
