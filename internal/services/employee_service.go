package services

import (
	"errors"

	"organisation-api/internal/models"
	"organisation-api/internal/repository"
)

// ErrUnknownOrganisation is returned by strict-mode employee writes when
// the referenced organisation does not exist.
var ErrUnknownOrganisation = errors.New("referenced organisation does not exist")

// EmployeeService provides business logic for employee operations. With
// strictRefs enabled, employee writes verify that the referenced
// organisation exists; the default is permissive, and organisation_id is
// stored as-is.
type EmployeeService struct {
	repo       repository.Repository[models.Employee]
	orgRepo    repository.Repository[models.Organisation]
	strictRefs bool
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(
	repo repository.Repository[models.Employee],
	orgRepo repository.Repository[models.Organisation],
	strictRefs bool,
) *EmployeeService {
	return &EmployeeService{
		repo:       repo,
		orgRepo:    orgRepo,
		strictRefs: strictRefs,
	}
}

// CreateEmployeeInput represents parameters to create an employee.
type CreateEmployeeInput struct {
	Name           string
	LastName       string
	Age            int
	DateOfBirth    models.DateOnly
	Location       string
	OrganisationID uint64
}

// UpdateEmployeeInput represents a partial update. Nil fields keep the
// stored value.
type UpdateEmployeeInput struct {
	Name           *string
	LastName       *string
	Age            *int
	DateOfBirth    *models.DateOnly
	Location       *string
	OrganisationID *uint64
}

// GetAllEmployees returns every stored employee.
func (s *EmployeeService) GetAllEmployees() ([]models.Employee, error) {
	return s.repo.GetAll()
}

// GetEmployeeByID returns the employee with the given id, or nil when
// absent.
func (s *EmployeeService) GetEmployeeByID(id uint64) (*models.Employee, error) {
	return s.repo.GetByID(id)
}

// CreateEmployee builds a new employee and persists it.
func (s *EmployeeService) CreateEmployee(input CreateEmployeeInput) (*models.Employee, error) {
	if err := s.checkOrganisation(input.OrganisationID); err != nil {
		return nil, err
	}

	employee := &models.Employee{
		Name:           input.Name,
		LastName:       input.LastName,
		Age:            input.Age,
		DateOfBirth:    input.DateOfBirth,
		Location:       input.Location,
		OrganisationID: input.OrganisationID,
	}

	return s.repo.Create(employee)
}

// UpdateEmployee merges the supplied fields over the stored entity and
// persists the full replacement. Returns nil when no employee with the
// given id exists.
func (s *EmployeeService) UpdateEmployee(id uint64, input UpdateEmployeeInput) (*models.Employee, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	merged := models.Employee{
		Name:           existing.Name,
		LastName:       existing.LastName,
		Age:            existing.Age,
		DateOfBirth:    existing.DateOfBirth,
		Location:       existing.Location,
		OrganisationID: existing.OrganisationID,
	}
	if input.Name != nil {
		merged.Name = *input.Name
	}
	if input.LastName != nil {
		merged.LastName = *input.LastName
	}
	if input.Age != nil {
		merged.Age = *input.Age
	}
	if input.DateOfBirth != nil {
		merged.DateOfBirth = *input.DateOfBirth
	}
	if input.Location != nil {
		merged.Location = *input.Location
	}
	if input.OrganisationID != nil {
		if err := s.checkOrganisation(*input.OrganisationID); err != nil {
			return nil, err
		}
		merged.OrganisationID = *input.OrganisationID
	}

	return s.repo.Update(id, &merged)
}

// DeleteEmployee removes the employee and reports whether a row was
// removed.
func (s *EmployeeService) DeleteEmployee(id uint64) (bool, error) {
	return s.repo.Delete(id)
}

func (s *EmployeeService) checkOrganisation(id uint64) error {
	if !s.strictRefs {
		return nil
	}
	org, err := s.orgRepo.GetByID(id)
	if err != nil {
		return err
	}
	if org == nil {
		return ErrUnknownOrganisation
	}
	return nil
}
