package main

import (
	"context"
	"log"
	"os"
	"time"

	"mightyops-be/internal/entity"
	"mightyops-be/internal/repository/unitofwork"
	"mightyops-be/pkg/database"

	"github.com/joho/godotenv"
)

// Seeds a handful of records per form so the dashboards have something
// to show on a fresh local database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	notes := []*entity.ViolationNote{
		{
			Location:        "Site #2",
			SubmittedBy:     "jordan",
			Department:      "Safety",
			NoteType:        "Blocked Exit",
			AdditionalNotes: "Pallet stack in front of the rear fire door.",
			CreatedAt:       time.Now().Add(-48 * time.Hour),
		},
		{
			Location:         "Site #10",
			SubmittedBy:      "casey",
			Department:       "Operations",
			NoteType:         "Other",
			OtherDescription: "Conveyor stopped twice during the morning rush.",
			CreatedAt:        time.Now().Add(-24 * time.Hour),
		},
	}
	for _, n := range notes {
		if err := uow.ViolationNoteRepository().Create(ctx, n); err != nil {
			log.Fatal("Error: Failed to seed violation note:", err)
		}
	}

	evals := []*entity.Evaluation{
		{
			Location:    "Site #2",
			SubmittedBy: "jordan",
			Answers: map[string]string{
				"q1":  "Yes",
				"q18": "Good",
			},
			AdditionalNotes: "Vacuum stations need hose replacements.",
			CreatedAt:       time.Now().Add(-72 * time.Hour),
		},
	}
	for _, e := range evals {
		if err := uow.EvaluationRepository().Create(ctx, e); err != nil {
			log.Fatal("Error: Failed to seed evaluation:", err)
		}
	}

	requests := []*entity.CapitalRequest{
		{
			Location:          "Site #10",
			SubmittedBy:       "casey",
			RequestTypes:      []string{"Equipment Replacement"},
			EquipmentArea:     "Tunnel",
			Description:       "Replace the worn top brush assembly.",
			ImportanceRanking: 4,
			Recommendation:    "Approve",
			CreatedAt:         time.Now().Add(-96 * time.Hour),
		},
	}
	for _, r := range requests {
		if err := uow.CapitalRequestRepository().Create(ctx, r); err != nil {
			log.Fatal("Error: Failed to seed capital request:", err)
		}
	}

	research := []*entity.MarketResearch{
		{
			SubmittedBy:     "jordan",
			CompetitorBrand: "SudsCo Express",
			OperationType:   "Express Exterior",
			Pricing:         "$12 single wash",
			CreatedAt:       time.Now().Add(-120 * time.Hour),
		},
	}
	for _, r := range research {
		if err := uow.MarketResearchRepository().Create(ctx, r); err != nil {
			log.Fatal("Error: Failed to seed market research:", err)
		}
	}

	staffing := []*entity.StaffingCultureNote{
		{
			Location:       "Site #2",
			SubmittedBy:    "jordan",
			StaffingLevels: "Fully Staffed",
			TeamMorale:     "High",
			OverallCulture: "Positive",
			CreatedAt:      time.Now().Add(-36 * time.Hour),
		},
	}
	for _, n := range staffing {
		if err := uow.StaffingCultureRepository().Create(ctx, n); err != nil {
			log.Fatal("Error: Failed to seed staffing culture note:", err)
		}
	}

	log.Println("✅ Seed complete")
}
