package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"organisation-api/internal/apierrors"
	"organisation-api/internal/dto"
	"organisation-api/internal/services"
)

type OrganisationHandler struct {
	service *services.OrganisationService
}

func NewOrganisationHandler(service *services.OrganisationService) *OrganisationHandler {
	return &OrganisationHandler{service: service}
}

// ListOrganisations returns all organisations
func (h *OrganisationHandler) ListOrganisations(c *gin.Context) {
	orgs, err := h.service.GetAllOrganisations()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch organisations")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganisationDTOs(orgs))
}

// GetOrganisation returns a single organisation by id
func (h *OrganisationHandler) GetOrganisation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	org, err := h.service.GetOrganisationByID(id)
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch organisation")
		return
	}
	if org == nil {
		apierrors.NotFound(c, "Organisation not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganisationDTO(*org))
}

// CreateOrganisation creates a new organisation
func (h *OrganisationHandler) CreateOrganisation(c *gin.Context) {
	type CreateOrganisationRequest struct {
		Name    string   `json:"name" binding:"required"`
		Details *string  `json:"details"`
		Tags    []string `json:"tags"`
		URL     *string  `json:"url"`
	}

	var req CreateOrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	org, err := h.service.CreateOrganisation(services.CreateOrganisationInput{
		Name:    req.Name,
		Details: req.Details,
		Tags:    req.Tags,
		URL:     req.URL,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to create organisation")
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrganisationDTO(*org))
}

// UpdateOrganisation applies a partial update to an organisation
func (h *OrganisationHandler) UpdateOrganisation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	type UpdateOrganisationRequest struct {
		Name    *string  `json:"name"`
		Details *string  `json:"details"`
		Tags    []string `json:"tags"`
		URL     *string  `json:"url"`
	}

	var req UpdateOrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	org, err := h.service.UpdateOrganisation(id, services.UpdateOrganisationInput{
		Name:    req.Name,
		Details: req.Details,
		Tags:    req.Tags,
		URL:     req.URL,
	})
	if err != nil {
		apierrors.InternalError(c, "Failed to update organisation")
		return
	}
	if org == nil {
		apierrors.NotFound(c, "Organisation not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganisationDTO(*org))
}

// DeleteOrganisation removes an organisation
func (h *OrganisationHandler) DeleteOrganisation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteOrganisation(id)
	if err != nil {
		apierrors.InternalError(c, "Failed to delete organisation")
		return
	}
	if !deleted {
		apierrors.NotFound(c, "Organisation not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Organisation deleted successfully",
	})
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}
