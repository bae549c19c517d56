package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/gigworks/identity-api/internal/core/domain"
)

type stubActivityRepo struct {
	inserted    []*domain.ActivityEvent
	insertErr   error
	recentLimit int
}

func (r *stubActivityRepo) Insert(_ context.Context, event *domain.ActivityEvent) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, event)
	return nil
}

func (r *stubActivityRepo) Recent(_ context.Context, limit int) ([]*domain.ActivityEvent, error) {
	r.recentLimit = limit
	return nil, nil
}

func TestActivityService_Process_FillsTimestamp(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	err := svc.Process(context.Background(), domain.ActivityEvent{
		Type:      domain.ActivityLoginSuccess,
		SubjectID: "profile_1",
	})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(repo.inserted))
	}
	if repo.inserted[0].OccurredAt.IsZero() {
		t.Fatalf("zero timestamp must be filled on insert")
	}
}

func TestActivityService_Process_KeepsTimestamp(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	err := svc.Process(context.Background(), domain.ActivityEvent{
		Type:       domain.ActivityRegistered,
		SubjectID:  "profile_1",
		OccurredAt: at,
	})
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if !repo.inserted[0].OccurredAt.Equal(at) {
		t.Fatalf("timestamp rewritten: %v", repo.inserted[0].OccurredAt)
	}
}

func TestActivityService_Process_WrapsRepoError(t *testing.T) {
	cause := errors.New("write concern failed")
	svc := NewActivityService(&stubActivityRepo{insertErr: cause}, zerolog.Nop())

	err := svc.Process(context.Background(), domain.ActivityEvent{Type: domain.ActivityLoginFailure})
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped repo error, got %v", err)
	}
}

func TestActivityService_Recent_LimitNormalization(t *testing.T) {
	repo := &stubActivityRepo{}
	svc := NewActivityService(repo, zerolog.Nop())

	if _, err := svc.Recent(context.Background(), 0); err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if repo.recentLimit != 50 {
		t.Fatalf("expected default limit 50, got %d", repo.recentLimit)
	}

	if _, err := svc.Recent(context.Background(), 10000); err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if repo.recentLimit != 500 {
		t.Fatalf("expected cap 500, got %d", repo.recentLimit)
	}
}
