package dto

import (
	"time"

	"organisation-api/internal/models"
)

// OrganisationDTO represents an organisation in API responses. Tags is
// always present, even when empty.
type OrganisationDTO struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Details   *string   `json:"details"`
	Tags      []string  `json:"tags"`
	URL       *string   `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToOrganisationDTO converts an organisation to its API representation.
func ToOrganisationDTO(org models.Organisation) OrganisationDTO {
	tags := make([]string, len(org.Tags))
	copy(tags, org.Tags)

	return OrganisationDTO{
		ID:        org.ID,
		Name:      org.Name,
		Details:   org.Details,
		Tags:      tags,
		URL:       org.URL,
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}
}

// ToOrganisationDTOs converts a slice of organisations.
func ToOrganisationDTOs(orgs []models.Organisation) []OrganisationDTO {
	dtos := make([]OrganisationDTO, len(orgs))
	for i, org := range orgs {
		dtos[i] = ToOrganisationDTO(org)
	}
	return dtos
}
