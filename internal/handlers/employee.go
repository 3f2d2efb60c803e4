package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"organisation-api/internal/apierrors"
	"organisation-api/internal/dto"
	"organisation-api/internal/models"
	"organisation-api/internal/services"
)

type EmployeeHandler struct {
	service *services.EmployeeService
}

func NewEmployeeHandler(service *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// ListEmployees returns all employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.service.GetAllEmployees()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch employees")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeDTOs(employees))
}

// GetEmployee returns a single employee by id
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	employee, err := h.service.GetEmployeeByID(id)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch employee")
		return
	}
	if employee == nil {
		apierrors.NotFound(c, "Employee not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeDTO(*employee))
}

// CreateEmployee creates a new employee
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	type CreateEmployeeRequest struct {
		Name           string           `json:"name" binding:"required"`
		LastName       string           `json:"last_name" binding:"required"`
		Age            *int             `json:"age" binding:"required"`
		DateOfBirth    *models.DateOnly `json:"date_of_birth" binding:"required"`
		Location       string           `json:"location" binding:"required"`
		OrganisationID *uint64          `json:"organisation_id" binding:"required"`
	}

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.service.CreateEmployee(services.CreateEmployeeInput{
		Name:           req.Name,
		LastName:       req.LastName,
		Age:            *req.Age,
		DateOfBirth:    *req.DateOfBirth,
		Location:       req.Location,
		OrganisationID: *req.OrganisationID,
	})
	if err != nil {
		if errors.Is(err, services.ErrUnknownOrganisation) {
			apierrors.BadRequest(c, "Organisation does not exist")
			return
		}
		apierrors.InternalError(c, "Failed to create employee")
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeDTO(*employee))
}

// UpdateEmployee applies a partial update to an employee
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	type UpdateEmployeeRequest struct {
		Name           *string          `json:"name"`
		LastName       *string          `json:"last_name"`
		Age            *int             `json:"age"`
		DateOfBirth    *models.DateOnly `json:"date_of_birth"`
		Location       *string          `json:"location"`
		OrganisationID *uint64          `json:"organisation_id"`
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	employee, err := h.service.UpdateEmployee(id, services.UpdateEmployeeInput{
		Name:           req.Name,
		LastName:       req.LastName,
		Age:            req.Age,
		DateOfBirth:    req.DateOfBirth,
		Location:       req.Location,
		OrganisationID: req.OrganisationID,
	})
	if err != nil {
		if errors.Is(err, services.ErrUnknownOrganisation) {
			apierrors.BadRequest(c, "Organisation does not exist")
			return
		}
		apierrors.InternalError(c, "Failed to update employee")
		return
	}
	if employee == nil {
		apierrors.NotFound(c, "Employee not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeDTO(*employee))
}

// DeleteEmployee removes an employee
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteEmployee(id)
	if err != nil {
		apierrors.InternalError(c, "Failed to delete employee")
		return
	}
	if !deleted {
		apierrors.NotFound(c, "Employee not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Employee deleted successfully",
	})
}
