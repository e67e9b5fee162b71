package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Bravomarkinc/Dominican-Hair-Solutions/internal/models"
)

type Mongo struct {
	col *mongo.Collection
}

func NewMongo(col *mongo.Collection) *Mongo {
	return &Mongo{col: col}
}

func (s *Mongo) Create(ctx context.Context, appointment models.Appointment) (models.Appointment, error) {
	if _, err := s.col.InsertOne(ctx, appointment); err != nil {
		return models.Appointment{}, err
	}
	return appointment, nil
}

func (s *Mongo) ListAll(ctx context.Context) ([]models.Appointment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]models.Appointment, 0)
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Mongo) UpdateStatus(ctx context.Context, id, status string) (models.Appointment, error) {
	return s.findAndSet(ctx, id, bson.M{"status": status})
}

func (s *Mongo) Update(ctx context.Context, id string, update Update) (models.Appointment, error) {
	set := bson.M{}
	if update.CustomerName != nil {
		set["customerName"] = *update.CustomerName
	}
	if update.CustomerEmail != nil {
		set["customerEmail"] = *update.CustomerEmail
	}
	if update.CustomerPhone != nil {
		set["customerPhone"] = *update.CustomerPhone
	}
	if update.AppointmentDate != nil {
		set["appointmentDate"] = *update.AppointmentDate
	}
	if update.AppointmentTime != nil {
		set["appointmentTime"] = *update.AppointmentTime
	}
	if update.ServiceName != nil {
		set["serviceName"] = *update.ServiceName
	}
	if update.ServicePrice != nil {
		set["servicePrice"] = *update.ServicePrice
	}

	if len(set) == 0 {
		var current models.Appointment
		err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&current)
		if err == mongo.ErrNoDocuments {
			return models.Appointment{}, ErrNotFound
		}
		if err != nil {
			return models.Appointment{}, err
		}
		return current, nil
	}

	return s.findAndSet(ctx, id, set)
}

func (s *Mongo) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (s *Mongo) findAndSet(ctx context.Context, id string, set bson.M) (models.Appointment, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Appointment
	err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return models.Appointment{}, ErrNotFound
	}
	if err != nil {
		return models.Appointment{}, err
	}
	return updated, nil
}
