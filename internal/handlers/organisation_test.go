package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"organisation-api/internal/database"
	"organisation-api/internal/dto"
	"organisation-api/internal/models"
	"organisation-api/internal/repository"
	"organisation-api/internal/services"
)

func setupTestRouter(t *testing.T, strictRefs bool) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Organisation{},
		&models.Employee{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	orgRepo := repository.NewOrganisationRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	orgHandler := NewOrganisationHandler(services.NewOrganisationService(orgRepo))
	employeeHandler := NewEmployeeHandler(services.NewEmployeeService(employeeRepo, orgRepo, strictRefs))

	r := gin.New()
	r.GET("/health", HealthCheck)

	org := r.Group("/organisation")
	{
		org.GET("", orgHandler.ListOrganisations)
		org.PUT("", orgHandler.CreateOrganisation)
		org.GET("/:id", orgHandler.GetOrganisation)
		org.PUT("/:id", orgHandler.UpdateOrganisation)
		org.DELETE("/:id", orgHandler.DeleteOrganisation)
	}

	employee := r.Group("/employee")
	{
		employee.GET("", employeeHandler.ListEmployees)
		employee.PUT("", employeeHandler.CreateEmployee)
		employee.GET("/:id", employeeHandler.GetEmployee)
		employee.PUT("/:id", employeeHandler.UpdateEmployee)
		employee.DELETE("/:id", employeeHandler.DeleteEmployee)
	}

	return r
}

func doRequest(r *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOrganisationLifecycle(t *testing.T) {
	r := setupTestRouter(t, false)

	// Create
	w := doRequest(r, http.MethodPut, "/organisation", map[string]interface{}{"name": "Acme"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, float64(1), created["id"])
	require.Equal(t, "Acme", created["name"])
	require.Nil(t, created["details"])
	require.Nil(t, created["url"])
	require.Equal(t, []interface{}{}, created["tags"])
	require.NotEmpty(t, created["created_at"])
	require.Equal(t, created["created_at"], created["updated_at"])

	// Read back
	w = doRequest(r, http.MethodGet, "/organisation/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	require.Equal(t, created["name"], fetched["name"])
	require.Equal(t, created["tags"], fetched["tags"])
	require.Equal(t, created["details"], fetched["details"])
	require.Equal(t, created["url"], fetched["url"])

	// Partial update
	w = doRequest(r, http.MethodPut, "/organisation/1", map[string]interface{}{"name": "Acme2"})
	require.Equal(t, http.StatusOK, w.Code)

	var updated map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Acme2", updated["name"])
	require.Nil(t, updated["details"])
	require.Nil(t, updated["url"])
	require.Equal(t, []interface{}{}, updated["tags"])

	// Delete
	w = doRequest(r, http.MethodDelete, "/organisation/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Gone
	w = doRequest(r, http.MethodGet, "/organisation/1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrganisationList(t *testing.T) {
	r := setupTestRouter(t, false)

	w := doRequest(r, http.MethodGet, "/organisation", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "[]", w.Body.String())

	for _, name := range []string{"First", "Second"} {
		w = doRequest(r, http.MethodPut, "/organisation", map[string]interface{}{
			"name": name,
			"tags": []string{"x"},
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w = doRequest(r, http.MethodGet, "/organisation", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var orgs []dto.OrganisationDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orgs))
	require.Len(t, orgs, 2)
	require.Equal(t, "First", orgs[0].Name)
	require.Equal(t, "Second", orgs[1].Name)
	require.Equal(t, []string{"x"}, orgs[0].Tags)
}

func TestOrganisationCreateRequiresName(t *testing.T) {
	r := setupTestRouter(t, false)

	w := doRequest(r, http.MethodPut, "/organisation", map[string]interface{}{
		"details": "no name here",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrganisationUpdatePreservesUnspecifiedFields(t *testing.T) {
	r := setupTestRouter(t, false)

	w := doRequest(r, http.MethodPut, "/organisation", map[string]interface{}{
		"name":    "Full",
		"details": "all fields",
		"tags":    []string{"a", "b"},
		"url":     "https://full.example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodPut, "/organisation/1", map[string]interface{}{
		"details": "only details changed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated dto.OrganisationDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Equal(t, "Full", updated.Name)
	require.Equal(t, "only details changed", *updated.Details)
	require.Equal(t, []string{"a", "b"}, updated.Tags)
	require.Equal(t, "https://full.example.com", *updated.URL)
}

func TestOrganisationNotFoundResponses(t *testing.T) {
	r := setupTestRouter(t, false)

	w := doRequest(r, http.MethodGet, "/organisation/99", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodPut, "/organisation/99", map[string]interface{}{"name": "Ghost"})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodDelete, "/organisation/99", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrganisationInvalidID(t *testing.T) {
	r := setupTestRouter(t, false)

	w := doRequest(r, http.MethodGet, "/organisation/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck(t *testing.T) {
	r := setupTestRouter(t, false)

	w := doRequest(r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "healthy", body["status"])
	require.Equal(t, "Organisation API", body["service"])
	require.Equal(t, Version, body["version"])
}
