package handler

import (
	"github.com/gigworks/identity-api/internal/core/domain"
	"github.com/gigworks/identity-api/internal/core/ports"
)

// --- Request → Service input ---

func toRegisterInput(req registerProfileRequest) ports.RegisterProfileInput {
	return ports.RegisterProfileInput{
		Type:       req.Type,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Profession: req.Profession,
	}
}

func toUpdateInput(req updateProfileRequest) ports.UpdateProfileInput {
	return ports.UpdateProfileInput{
		Type:       req.Type,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Profession: req.Profession,
	}
}

// --- Domain → HTTP response ---

func toProfileResponse(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:         p.ID,
		Type:       p.Type,
		Profession: p.Profession,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Email:      p.Email,
		Balance:    p.Balance,
		CreatedAt:  p.CreatedAt.UTC(),
		UpdatedAt:  p.UpdatedAt.UTC(),
	}
}

func toListResponse(r *ports.ListProfilesResult) listProfilesResponse {
	items := make([]profileResponse, len(r.Items))
	for i, p := range r.Items {
		items[i] = toProfileResponse(p)
	}
	return listProfilesResponse{
		Data: listProfilesData{
			TotalProfiles: r.Total,
			TotalPages:    r.TotalPages,
			CurrentPage:   r.Page,
			Profiles:      items,
		},
	}
}

func toAccountResponse(a *ports.Account) accountResponse {
	return accountResponse{
		ID:         a.ID,
		Type:       a.Type,
		Profession: a.Profession,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Email:      a.Email,
		Balance:    a.Balance,
	}
}

func toActivityResponse(events []*domain.ActivityEvent) listActivityResponse {
	items := make([]activityEventResponse, len(events))
	for i, e := range events {
		items[i] = activityEventResponse{
			Type:       string(e.Type),
			SubjectID:  e.SubjectID,
			Role:       e.Role,
			Email:      e.Email,
			OccurredAt: e.OccurredAt.UTC(),
		}
	}
	return listActivityResponse{Data: items}
}
