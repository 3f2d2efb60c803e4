package dto

import (
	"time"

	"organisation-api/internal/models"
)

// EmployeeDTO represents an employee in API responses.
type EmployeeDTO struct {
	ID             uint64          `json:"id"`
	Name           string          `json:"name"`
	LastName       string          `json:"last_name"`
	Age            int             `json:"age"`
	DateOfBirth    models.DateOnly `json:"date_of_birth"`
	Location       string          `json:"location"`
	OrganisationID uint64          `json:"organisation_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToEmployeeDTO converts an employee to its API representation.
func ToEmployeeDTO(employee models.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:             employee.ID,
		Name:           employee.Name,
		LastName:       employee.LastName,
		Age:            employee.Age,
		DateOfBirth:    employee.DateOfBirth,
		Location:       employee.Location,
		OrganisationID: employee.OrganisationID,
		CreatedAt:      employee.CreatedAt,
		UpdatedAt:      employee.UpdatedAt,
	}
}

// ToEmployeeDTOs converts a slice of employees.
func ToEmployeeDTOs(employees []models.Employee) []EmployeeDTO {
	dtos := make([]EmployeeDTO, len(employees))
	for i, employee := range employees {
		dtos[i] = ToEmployeeDTO(employee)
	}
	return dtos
}
