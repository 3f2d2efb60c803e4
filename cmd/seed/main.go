package main

import (
	"time"

	"github.com/rs/zerolog/log"

	"organisation-api/internal/config"
	"organisation-api/internal/database"
	"organisation-api/internal/logger"
	"organisation-api/internal/models"
	"organisation-api/internal/repository"
	"organisation-api/internal/services"
)

func strPtr(s string) *string {
	return &s
}

func main() {
	cfg := config.Load()
	logger.Setup(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	orgRepo := repository.NewOrganisationRepository(database.GetDB())
	employeeRepo := repository.NewEmployeeRepository(database.GetDB())
	orgService := services.NewOrganisationService(orgRepo)
	employeeService := services.NewEmployeeService(employeeRepo, orgRepo, cfg.StrictEmployeeRefs)

	organisations := []services.CreateOrganisationInput{
		{
			Name:    "TechCorp Solutions",
			Details: strPtr("Leading provider of enterprise software solutions"),
			Tags:    []string{"technology", "enterprise", "software"},
			URL:     strPtr("https://techcorp.example.com"),
		},
		{
			Name:    "Green Energy Co",
			Details: strPtr("Renewable energy and sustainability consulting"),
			Tags:    []string{"energy", "sustainability", "consulting"},
			URL:     strPtr("https://greenenergy.example.com"),
		},
		{
			Name:    "HealthPlus Medical",
			Details: strPtr("Healthcare services and medical equipment supplier"),
			Tags:    []string{"healthcare", "medical", "equipment"},
			URL:     strPtr("https://healthplus.example.com"),
		},
		{
			Name:    "EduTech Academy",
			Details: strPtr("Online learning platform for professional development"),
			Tags:    []string{"education", "e-learning", "professional"},
			URL:     strPtr("https://edutech.example.com"),
		},
		{
			Name:    "FinanceHub Inc",
			Details: strPtr("Financial technology and payment processing solutions"),
			Tags:    []string{"fintech", "payments", "banking"},
			URL:     strPtr("https://financehub.example.com"),
		},
	}

	orgIDs := make([]uint64, 0, len(organisations))
	for _, input := range organisations {
		org, err := orgService.CreateOrganisation(input)
		if err != nil {
			log.Fatal().Err(err).Str("name", input.Name).Msg("failed to seed organisation")
		}
		orgIDs = append(orgIDs, org.ID)
		log.Info().Uint64("id", org.ID).Str("name", org.Name).Msg("seeded organisation")
	}

	employees := []services.CreateEmployeeInput{
		{Name: "John", LastName: "Doe", Age: 32, DateOfBirth: models.NewDateOnly(1992, time.May, 15), Location: "New York", OrganisationID: orgIDs[0]},
		{Name: "Sarah", LastName: "Johnson", Age: 28, DateOfBirth: models.NewDateOnly(1996, time.August, 22), Location: "San Francisco", OrganisationID: orgIDs[0]},
		{Name: "Michael", LastName: "Chen", Age: 35, DateOfBirth: models.NewDateOnly(1989, time.November, 3), Location: "Seattle", OrganisationID: orgIDs[1]},
		{Name: "Emma", LastName: "Williams", Age: 29, DateOfBirth: models.NewDateOnly(1995, time.March, 18), Location: "Boston", OrganisationID: orgIDs[2]},
		{Name: "David", LastName: "Martinez", Age: 41, DateOfBirth: models.NewDateOnly(1983, time.July, 9), Location: "Austin", OrganisationID: orgIDs[3]},
	}

	for _, input := range employees {
		employee, err := employeeService.CreateEmployee(input)
		if err != nil {
			log.Fatal().Err(err).Str("name", input.Name).Msg("failed to seed employee")
		}
		log.Info().Uint64("id", employee.ID).Str("name", employee.Name).Msg("seeded employee")
	}

	log.Info().Int("organisations", len(orgIDs)).Int("employees", len(employees)).Msg("seeding completed")
}
