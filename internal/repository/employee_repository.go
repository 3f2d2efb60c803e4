package repository

import (
	"errors"

	"gorm.io/gorm"

	"organisation-api/internal/models"
)

// GormEmployeeRepository is a GORM implementation of
// Repository[models.Employee].
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository.
func NewEmployeeRepository(db *gorm.DB) Repository[models.Employee] {
	return &GormEmployeeRepository{db: db}
}

// GetAll returns every employee ordered by id.
func (r *GormEmployeeRepository) GetAll() ([]models.Employee, error) {
	employees := make([]models.Employee, 0)
	if err := r.db.Order("id").Find(&employees).Error; err != nil {
		return nil, storageErr("list employees", err)
	}
	return employees, nil
}

// GetByID returns the employee with the given id, or nil when absent.
func (r *GormEmployeeRepository) GetByID(id uint64) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, storageErr("find employee", err)
	}
	return &employee, nil
}

// Create inserts a new employee, assigning its id and timestamps.
func (r *GormEmployeeRepository) Create(employee *models.Employee) (*models.Employee, error) {
	if err := r.db.Create(employee).Error; err != nil {
		return nil, storageErr("create employee", err)
	}
	return employee, nil
}

// Update overwrites every mutable column with the replacement's values,
// refreshing updated_at and leaving id and created_at untouched.
func (r *GormEmployeeRepository) Update(id uint64, employee *models.Employee) (*models.Employee, error) {
	existing, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	replacement := models.Employee{
		Name:           employee.Name,
		LastName:       employee.LastName,
		Age:            employee.Age,
		DateOfBirth:    employee.DateOfBirth,
		Location:       employee.Location,
		OrganisationID: employee.OrganisationID,
	}

	err = r.db.Model(&models.Employee{}).
		Where("id = ?", id).
		Select("name", "last_name", "age", "date_of_birth", "location", "organisation_id", "updated_at").
		Updates(replacement).Error
	if err != nil {
		return nil, storageErr("update employee", err)
	}

	return r.GetByID(id)
}

// Delete removes the employee and reports whether a row was removed.
func (r *GormEmployeeRepository) Delete(id uint64) (bool, error) {
	res := r.db.Delete(&models.Employee{}, id)
	if res.Error != nil {
		return false, storageErr("delete employee", res.Error)
	}
	return res.RowsAffected > 0, nil
}
