package service

import "github.com/gigworks/identity-api/internal/core/domain"

// ActivityRecorder accepts audit events without blocking the request path.
// The queue dispatcher implements it; tests plug in their own.
type ActivityRecorder interface {
	Record(event domain.ActivityEvent)
}

type noopRecorder struct{}

func (noopRecorder) Record(domain.ActivityEvent) {}

func normalizeRecorder(r ActivityRecorder) ActivityRecorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}
