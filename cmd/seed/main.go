package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/appointment"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/db"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/health"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/objstore"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/record"
	redisclient "github.com/PrakritiSharma17/kerala-digital-health-55780/internal/redis"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/store"
	"github.com/PrakritiSharma17/kerala-digital-health-55780/internal/user"
)

// Seeds a demo patient with a populated dashboard: profile, appointments,
// records with medications, and a few alerts.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is required")
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-only-secret"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := db.ConnectPostgres(ctx, dsn)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	rdb, err := redisclient.NewRedisClient(
		getEnv("REDIS_ADDR", "127.0.0.1:6379"),
		os.Getenv("REDIS_USERNAME"),
		os.Getenv("REDIS_PASSWORD"),
	)
	if err != nil {
		log.Fatalf("connect redis: %v", err)
	}
	defer rdb.Close()

	gofakeit.Seed(time.Now().UnixNano())

	st := store.NewRedisStore(rdb)
	users := user.NewService(user.NewPgRepository(pool), st, jwtSecret)
	appointments := appointment.NewService(st)
	// The seeder uploads no files, so an in-memory object store is enough.
	records := record.NewService(record.NewPgRepository(pool), objstore.NewMemoryStore())

	demo, _, err := users.Register(ctx, user.RegisterInput{
		Name:              "Priya Sharma",
		Email:             "demo@kerala.health",
		Phone:             gofakeit.Phone(),
		Password:          "demo1234",
		AbhaID:            "12-3456-7890-1234",
		UserType:          string(health.UserMigrant),
		PreferredLanguage: string(health.LangEnglish),
		DateOfBirth:       "1992-04-18",
		Gender:            string(health.GenderFemale),
		Address:           gofakeit.Address().Address,
		EmergencyContact: health.EmergencyContact{
			Name:         gofakeit.Name(),
			Phone:        gofakeit.Phone(),
			Relationship: "spouse",
		},
	})
	if err != nil {
		log.Fatalf("seed demo user: %v", err)
	}
	log.Printf("demo user created: %s (demo@kerala.health / demo1234)", demo.ID)

	if err := seedAppointments(ctx, appointments, demo.ID); err != nil {
		log.Fatalf("seed appointments: %v", err)
	}
	if err := seedRecords(ctx, records, demo.ID); err != nil {
		log.Fatalf("seed records: %v", err)
	}
	if err := seedAlerts(ctx, st, demo.ID); err != nil {
		log.Fatalf("seed alerts: %v", err)
	}

	log.Println("seed complete")
}

func seedAppointments(ctx context.Context, svc *appointment.Service, userID uuid.UUID) error {
	log.Println("seeding appointments")

	departments := []string{"General Medicine", "Cardiology", "Dermatology", "Orthopedics"}
	types := []string{"in-person", "video", "phone"}

	for i := 0; i < 4; i++ {
		_, err := svc.Book(ctx, userID, appointment.BookInput{
			DoctorName:   "Dr. " + gofakeit.Name(),
			HospitalName: gofakeit.Company() + " Hospital",
			Department:   departments[gofakeit.Number(0, len(departments)-1)],
			Date:         time.Now().AddDate(0, 0, gofakeit.Number(1, 30)),
			Time:         fmt.Sprintf("%02d:00", gofakeit.Number(9, 17)),
			Type:         types[gofakeit.Number(0, len(types)-1)],
			Notes:        gofakeit.Sentence(6),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func seedRecords(ctx context.Context, svc *record.Service, userID uuid.UUID) error {
	log.Println("seeding health records")

	types := []string{"checkup", "test", "immunization", "consultation"}
	for i := 0; i < 5; i++ {
		rec, err := svc.Create(ctx, userID, record.CreateInput{
			Type:         types[gofakeit.Number(0, len(types)-1)],
			Title:        gofakeit.JobTitle() + " Visit",
			Description:  gofakeit.Sentence(10),
			DoctorName:   "Dr. " + gofakeit.Name(),
			HospitalName: gofakeit.Company() + " Hospital",
			Date:         time.Now().AddDate(0, -gofakeit.Number(0, 11), 0),
		})
		if err != nil {
			return err
		}
		if gofakeit.Bool() {
			_, err = svc.AddMedication(ctx, userID, rec.ID, record.MedicationInput{
				Name:      gofakeit.Word(),
				Dosage:    "500mg",
				Frequency: "twice daily",
				Duration:  "7 days",
			})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func seedAlerts(ctx context.Context, st store.Store, userID uuid.UUID) error {
	log.Println("seeding alerts")

	now := time.Now()
	alerts := []health.HealthAlert{
		{
			ID: uuid.New(), UserID: userID,
			Type: health.AlertMedication, Priority: health.PriorityHigh,
			Title:        "Medication Reminder",
			Message:      "Time to take your evening medication.",
			ScheduledFor: now.Add(-time.Hour), CreatedAt: now,
		},
		{
			ID: uuid.New(), UserID: userID,
			Type: health.AlertAppointment, Priority: health.PriorityMedium,
			Title:        "Appointment Tomorrow",
			Message:      "You have an appointment scheduled for tomorrow.",
			ScheduledFor: now.Add(-30 * time.Minute), CreatedAt: now,
		},
		{
			ID: uuid.New(), UserID: userID,
			Type: health.AlertVaccination, Priority: health.PriorityLow,
			Title:        "Vaccination Due",
			Message:      "Your seasonal flu vaccination is due this month.",
			ScheduledFor: now.Add(-24 * time.Hour), CreatedAt: now,
		},
	}
	return st.Write(ctx, store.UserKey(store.KeyAlerts, userID.String()), alerts)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
