package main

import (
	"context"
	"log"
	"time"

	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/config"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/db"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/models"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/salon"
	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/schedule"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type seedBooking struct {
	Name        string
	Email       string
	Phone       string
	DaysAhead   int
	Time        string
	ServiceName string
	Status      string
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	bookings := []seedBooking{
		{Name: "Maria Santos", Email: "maria.santos@example.com", Phone: "863-555-0140", DaysAhead: 1, Time: "10:00 AM", ServiceName: "Press-Curl", Status: models.StatusScheduled},
		{Name: "Keisha Brown", Email: "keisha.b@example.com", Phone: "863-555-0171", DaysAhead: 2, Time: "11:30 AM", ServiceName: "Permanent Color", Status: models.StatusScheduled},
		{Name: "Ana Rodriguez", Email: "ana.rodriguez@example.com", Phone: "863-555-0113", DaysAhead: 4, Time: "02:15 PM", ServiceName: "Full Relaxer", Status: models.StatusScheduled},
		{Name: "Dominique Pierre", Email: "d.pierre@example.com", Phone: "863-555-0196", DaysAhead: -3, Time: "10:45 AM", ServiceName: "Keratin Hair Treatment", Status: models.StatusCompleted},
		{Name: "Lucia Fernandez", Email: "lucia.f@example.com", Phone: "863-555-0158", DaysAhead: -1, Time: "03:00 PM", ServiceName: "Hair Cut", Status: models.StatusNoShow},
	}

	now := time.Now().In(cfg.Timezone)
	for _, b := range bookings {
		date := now.AddDate(0, 0, b.DaysAhead).Format(schedule.DateLayout)

		price := 0
		if svc, ok := salon.FindService(b.ServiceName); ok {
			price = salon.PriceValue(svc.Price)
		}

		filter := bson.M{
			"customerEmail":   b.Email,
			"appointmentDate": date,
			"appointmentTime": b.Time,
		}
		update := bson.M{
			"$setOnInsert": bson.M{
				"_id":             uuid.NewString(),
				"customerName":    b.Name,
				"customerEmail":   b.Email,
				"customerPhone":   b.Phone,
				"appointmentDate": date,
				"appointmentTime": b.Time,
				"serviceName":     b.ServiceName,
				"servicePrice":    price,
				"status":          b.Status,
				"createdAt":       now,
			},
		}

		_, err := cols.Appointments.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err != nil {
			log.Fatalf("seed error for %s: %v", b.Name, err)
		}
	}

	log.Println("seed completed")
}
