package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"organisation-api/internal/config"
	"organisation-api/internal/database"
	"organisation-api/internal/handlers"
	"organisation-api/internal/logger"
	"organisation-api/internal/repository"
	"organisation-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Setup(cfg.GinMode)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize repositories and services
	orgRepo := repository.NewOrganisationRepository(database.GetDB())
	employeeRepo := repository.NewEmployeeRepository(database.GetDB())

	orgService := services.NewOrganisationService(orgRepo)
	employeeService := services.NewEmployeeService(employeeRepo, orgRepo, cfg.StrictEmployeeRefs)

	// Initialize handlers
	orgHandler := handlers.NewOrganisationHandler(orgService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)

	// Initialize Gin router
	r := gin.Default()

	r.GET("/health", handlers.HealthCheck)

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

	// Start server
	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
