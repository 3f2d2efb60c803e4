package services

import (
	"organisation-api/internal/models"
	"organisation-api/internal/repository"
)

// OrganisationService provides business logic for organisation operations.
// It holds no state beyond its repository and is safe to share.
type OrganisationService struct {
	repo repository.Repository[models.Organisation]
}

// NewOrganisationService creates a new OrganisationService.
func NewOrganisationService(repo repository.Repository[models.Organisation]) *OrganisationService {
	return &OrganisationService{repo: repo}
}

// CreateOrganisationInput represents parameters to create an organisation.
type CreateOrganisationInput struct {
	Name    string
	Details *string
	Tags    []string
	URL     *string
}

// UpdateOrganisationInput represents a partial update. Nil fields keep the
// stored value.
type UpdateOrganisationInput struct {
	Name    *string
	Details *string
	Tags    []string
	URL     *string
}

// GetAllOrganisations returns every stored organisation.
func (s *OrganisationService) GetAllOrganisations() ([]models.Organisation, error) {
	return s.repo.GetAll()
}

// GetOrganisationByID returns the organisation with the given id, or nil
// when absent.
func (s *OrganisationService) GetOrganisationByID(id uint64) (*models.Organisation, error) {
	return s.repo.GetByID(id)
}

// CreateOrganisation builds a new organisation with defaults applied and
// persists it. An omitted tag list becomes a fresh empty list.
func (s *OrganisationService) CreateOrganisation(input CreateOrganisationInput) (*models.Organisation, error) {
	tags := models.StringList{}
	if input.Tags != nil {
		tags = append(tags, input.Tags...)
	}

	org := &models.Organisation{
		Name:    input.Name,
		Details: input.Details,
		Tags:    tags,
		URL:     input.URL,
	}

	return s.repo.Create(org)
}

// UpdateOrganisation merges the supplied fields over the stored entity and
// persists the full replacement. Unspecified fields keep their prior
// values. Returns nil when no organisation with the given id exists.
func (s *OrganisationService) UpdateOrganisation(id uint64, input UpdateOrganisationInput) (*models.Organisation, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	merged := models.Organisation{
		Name:    existing.Name,
		Details: existing.Details,
		Tags:    existing.Tags,
		URL:     existing.URL,
	}
	if input.Name != nil {
		merged.Name = *input.Name
	}
	if input.Details != nil {
		merged.Details = input.Details
	}
	if input.Tags != nil {
		merged.Tags = models.StringList(input.Tags)
	}
	if input.URL != nil {
		merged.URL = input.URL
	}

	return s.repo.Update(id, &merged)
}

// DeleteOrganisation removes the organisation and reports whether a row
// was removed.
func (s *OrganisationService) DeleteOrganisation(id uint64) (bool, error) {
	return s.repo.Delete(id)
}
