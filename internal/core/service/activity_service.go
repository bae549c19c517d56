package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gigworks/identity-api/internal/core/domain"
	"github.com/gigworks/identity-api/internal/core/ports"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 500
)

type activityService struct {
	repo ports.ActivityRepository
	log  zerolog.Logger
}

// NewActivityService returns an ActivityService backed by the given repository.
func NewActivityService(repo ports.ActivityRepository, log zerolog.Logger) ports.ActivityService {
	return &activityService{repo: repo, log: log}
}

// Process persists a single dequeued audit event.
func (s *activityService) Process(ctx context.Context, event domain.ActivityEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	if err := s.repo.Insert(ctx, &event); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	s.log.Debug().
		Str("type", string(event.Type)).
		Str("subject_id", event.SubjectID).
		Msg("activity recorded")
	return nil
}

// Recent returns the newest events, capped at maxActivityLimit.
func (s *activityService) Recent(ctx context.Context, limit int) ([]*domain.ActivityEvent, error) {
	if limit < 1 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	return s.repo.Recent(ctx, limit)
}
