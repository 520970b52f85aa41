package handler

import (
	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/ports"
)

// --- Domain → HTTP response ---

func toAccountResponse(a *domain.Account) accountResponse {
	resp := accountResponse{
		ID:           a.ID,
		Email:        a.Email,
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		Phone:        a.Phone,
		Role:         string(a.Role),
		ProfileImage: a.ProfileImage,
		IsActive:     a.Active,
		CreatedAt:    a.CreatedAt.UTC(),
	}
	if !a.LastLoginAt.IsZero() {
		t := a.LastLoginAt.UTC()
		resp.LastLoginAt = &t
	}
	return resp
}

func toAuthResponse(r *ports.AuthResult) authResponse {
	return authResponse{
		User:       toAccountResponse(r.Account),
		Token:      r.Token,
		RedirectTo: r.RedirectTo,
	}
}

func toAccountListResponse(accounts []*domain.Account) []accountResponse {
	out := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = toAccountResponse(a)
	}
	return out
}
