package repository

import (
	"errors"

	"gorm.io/gorm"

	"organisation-api/internal/models"
)

// GormOrganisationRepository is a GORM implementation of
// Repository[models.Organisation].
type GormOrganisationRepository struct {
	db *gorm.DB
}

// NewOrganisationRepository creates a new organisation repository.
func NewOrganisationRepository(db *gorm.DB) Repository[models.Organisation] {
	return &GormOrganisationRepository{db: db}
}

// GetAll returns every organisation ordered by id.
func (r *GormOrganisationRepository) GetAll() ([]models.Organisation, error) {
	orgs := make([]models.Organisation, 0)
	if err := r.db.Order("id").Find(&orgs).Error; err != nil {
		return nil, storageErr("list organisations", err)
	}
	return orgs, nil
}

// GetByID returns the organisation with the given id, or nil when absent.
func (r *GormOrganisationRepository) GetByID(id uint64) (*models.Organisation, error) {
	var org models.Organisation
	if err := r.db.First(&org, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr("find organisation", err)
	}
	return &org, nil
}

// Create inserts a new organisation, assigning its id and timestamps.
func (r *GormOrganisationRepository) Create(org *models.Organisation) (*models.Organisation, error) {
	if org.Tags == nil {
		org.Tags = models.StringList{}
	}
	if err := r.db.Create(org).Error; err != nil {
		return nil, storageErr("create organisation", err)
	}
	return org, nil
}

// Update overwrites every mutable column with the replacement's values,
// refreshing updated_at and leaving id and created_at untouched. The row
// is reloaded after the write so the returned entity reflects what was
// actually stored.
func (r *GormOrganisationRepository) Update(id uint64, org *models.Organisation) (*models.Organisation, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	replacement := models.Organisation{
		Name:    org.Name,
		Details: org.Details,
		Tags:    org.Tags,
		URL:     org.URL,
	}
	if replacement.Tags == nil {
		replacement.Tags = models.StringList{}
	}

	err = r.db.Model(&models.Organisation{}).
		Where("id = ?", id).
		Select("name", "details", "tags", "url", "updated_at").
		Updates(replacement).Error
	if err != nil {
		return nil, storageErr("update organisation", err)
	}

	return r.GetByID(id)
}

// Delete removes the organisation and reports whether a row was removed.
func (r *GormOrganisationRepository) Delete(id uint64) (bool, error) {
	res := r.db.Delete(&models.Organisation{}, id)
	if res.Error != nil {
		return false, storageErr("delete organisation", res.Error)
	}
	return res.RowsAffected > 0, nil
}
