package leadRepo

import (
	"context"
	"errors"
	"time"

	"screenline/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new lead record and returns its ID.
func (r *mongoLeadRepo) Create(ctx context.Context, lead models.Lead) (string, error) {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	lead.CreatedAt = time.Now()
	lead.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, lead)
	if err != nil {
		return "", err
	}
	return lead.ID, nil
}

// GetByID returns a lead record by its ID.
func (r *mongoLeadRepo) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	var lead models.Lead
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&lead)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetByPhone fetches all leads captured for a phone number.
func (r *mongoLeadRepo) GetByPhone(ctx context.Context, phone string) ([]models.Lead, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"phone": phone})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// DeleteByID removes a lead record by ID.
func (r *mongoLeadRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("lead not found")
	}
	return nil
}
