package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"organisation-api/internal/models"
)

func setupEmployeeRepo(t *testing.T) Repository[models.Employee] {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Employee{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return NewEmployeeRepository(db)
}

func sampleEmployee() *models.Employee {
	return &models.Employee{
		Name:           "John",
		LastName:       "Doe",
		Age:            32,
		DateOfBirth:    models.NewDateOnly(1992, time.May, 15),
		Location:       "New York",
		OrganisationID: 1,
	}
}

func TestEmployeeRepository_CreateAndRoundTrip(t *testing.T) {
	repo := setupEmployeeRepo(t)

	created, err := repo.Create(sampleEmployee())
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, created.CreatedAt, created.UpdatedAt)

	fetched, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, "John", fetched.Name)
	require.Equal(t, "Doe", fetched.LastName)
	require.Equal(t, 32, fetched.Age)
	require.Equal(t, models.NewDateOnly(1992, time.May, 15), fetched.DateOfBirth)
	require.Equal(t, "New York", fetched.Location)
	require.Equal(t, uint64(1), fetched.OrganisationID)
}

func TestEmployeeRepository_GetAllInsertionOrder(t *testing.T) {
	repo := setupEmployeeRepo(t)

	first := sampleEmployee()
	_, err := repo.Create(first)
	require.NoError(t, err)

	second := sampleEmployee()
	second.Name = "Sarah"
	_, err = repo.Create(second)
	require.NoError(t, err)

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "John", all[0].Name)
	require.Equal(t, "Sarah", all[1].Name)
}

func TestEmployeeRepository_UpdateReplacesMutableColumns(t *testing.T) {
	repo := setupEmployeeRepo(t)

	created, err := repo.Create(sampleEmployee())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	updated, err := repo.Update(created.ID, &models.Employee{
		Name:           "Johnny",
		LastName:       "Doe",
		Age:            33,
		DateOfBirth:    models.NewDateOnly(1991, time.May, 15),
		Location:       "Chicago",
		OrganisationID: 2,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "Johnny", updated.Name)
	require.Equal(t, 33, updated.Age)
	require.Equal(t, models.NewDateOnly(1991, time.May, 15), updated.DateOfBirth)
	require.Equal(t, "Chicago", updated.Location)
	require.Equal(t, uint64(2), updated.OrganisationID)
	require.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	require.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestEmployeeRepository_UpdateAbsent(t *testing.T) {
	repo := setupEmployeeRepo(t)

	updated, err := repo.Update(7, sampleEmployee())
	require.NoError(t, err)
	require.Nil(t, updated)
}

func TestEmployeeRepository_Delete(t *testing.T) {
	repo := setupEmployeeRepo(t)

	created, err := repo.Create(sampleEmployee())
	require.NoError(t, err)

	deleted, err := repo.Delete(created.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = repo.Delete(created.ID)
	require.NoError(t, err)
	require.False(t, deleted)
}
