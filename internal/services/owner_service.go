package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/acadegrade/result-service/internal/auth"
	"github.com/acadegrade/result-service/internal/cache"
	apperrors "github.com/acadegrade/result-service/internal/errors"
	"github.com/acadegrade/result-service/internal/events"
	"github.com/acadegrade/result-service/internal/models"
	"github.com/acadegrade/result-service/internal/repositories"
	"github.com/acadegrade/result-service/internal/validator"
)

const ownerCacheTTL = 5 * time.Minute

// OwnerResolver resolves a verified identity UID to the local owner record.
// The sheet service depends on this narrow view instead of the full service.
type OwnerResolver interface {
	ResolveOwner(ctx context.Context, uid string) (*models.Owner, error)
}

type OwnerService interface {
	OwnerResolver

	// SyncIdentity upserts the local owner record from verified claims. It is
	// called after login so every later request can resolve the UID locally.
	SyncIdentity(ctx context.Context, claims *auth.Claims, req *SyncIdentityRequest) (*SyncIdentityResponse, error)
}

type ownerService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	cache     cache.CacheService
	publisher events.EventPublisher
}

func NewOwnerService(
	repo repositories.Repository,
	logger *slog.Logger,
	validator *validator.Validator,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
) OwnerService {
	return &ownerService{
		repo:      repo,
		logger:    logger,
		validator: validator,
		cache:     cacheService,
		publisher: publisher,
	}
}

func (s *ownerService) SyncIdentity(ctx context.Context, claims *auth.Claims, req *SyncIdentityRequest) (*SyncIdentityResponse, error) {
	if claims == nil || claims.UID == "" || claims.Email == "" {
		return nil, ErrMissingIdentity
	}
	if req != nil {
		if err := s.validator.ValidateStruct(req); err != nil {
			return nil, apperrors.ToValidationErrors(err)
		}
	}

	name := claims.Name
	if req != nil && req.Name != "" {
		name = req.Name
	}

	owner := &models.Owner{
		UID:   claims.UID,
		Name:  name,
		Email: claims.Email,
	}
	created, err := s.repo.Owner().Upsert(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to sync identity: %w", err)
	}

	// The cached copy is stale after any upsert.
	if err := s.cache.Delete(ctx, ownerCacheKey(claims.UID)); err != nil {
		s.logger.Warn("Failed to invalidate owner cache", "uid", claims.UID, "error", err)
	}

	s.logger.Info("Synced identity", "uid", claims.UID, "created", created)

	s.publishEvent(ctx, events.NewNotificationEvent(events.EventOwnerSynced, events.OwnerSyncedEvent{
		OwnerUID: owner.UID,
		Email:    owner.Email,
		Created:  created,
		SyncedAt: time.Now().UTC(),
	}))

	return &SyncIdentityResponse{
		Created: created,
		Owner: OwnerResponse{
			UID:   owner.UID,
			Name:  owner.Name,
			Email: owner.Email,
		},
	}, nil
}

// ResolveOwner looks the owner up by UID, serving repeated lookups from the
// cache. Only the identity resolution is cached; result reads never are.
func (s *ownerService) ResolveOwner(ctx context.Context, uid string) (*models.Owner, error) {
	if uid == "" {
		return nil, ErrUnauthorized
	}

	key := ownerCacheKey(uid)
	var cached models.Owner
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	owner, err := s.repo.Owner().GetByUID(ctx, uid)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrOwnerNotFound
		}
		return nil, fmt.Errorf("failed to resolve owner: %w", err)
	}

	if err := s.cache.Set(ctx, key, owner, ownerCacheTTL); err != nil {
		s.logger.Warn("Failed to cache owner", "uid", uid, "error", err)
	}
	return owner, nil
}

func (s *ownerService) publishEvent(ctx context.Context, event *events.NotificationEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishNotificationEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish owner event", "event_type", event.Type, "error", err)
	}
}

func ownerCacheKey(uid string) string {
	return "owner:uid:" + uid
}
