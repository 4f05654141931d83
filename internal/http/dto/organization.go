package dto

import (
	"time"

	"adlot.app/inventory/internal/model"
)

type CreateOrganizationRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=255"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone,omitempty" binding:"omitempty,max=50"`
	Address *string `json:"address,omitempty" binding:"omitempty,max=500"`
}

type OrganizationResponse struct {
	ID        int64     `json:"id,string"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToOrganizationResponse(org *model.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		Email:     org.Email,
		Phone:     org.Phone,
		Address:   org.Address,
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}
}

type ListOrganizationsResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
}

func ToListOrganizationsResponse(orgs []model.Organization) *ListOrganizationsResponse {
	resp := &ListOrganizationsResponse{
		Organizations: make([]OrganizationResponse, len(orgs)),
	}
	for i := range orgs {
		resp.Organizations[i] = *ToOrganizationResponse(&orgs[i])
	}
	return resp
}
