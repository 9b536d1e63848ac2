package leadRepo

import (
	"context"

	"screenline/database"
	"screenline/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// LeadRepository stores captured booking leads. The record is a local trail
// only; the external automation sink remains the delivery channel.
type LeadRepository interface {
	Create(ctx context.Context, lead models.Lead) (string, error)
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	GetByPhone(ctx context.Context, phone string) ([]models.Lead, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoLeadRepo struct {
	coll *mongo.Collection
}

// NewMongoLeadRepo returns a new LeadRepository instance using MongoDB.
func NewMongoLeadRepo() LeadRepository {
	db := database.MongoClient.Database("screenline")
	return &mongoLeadRepo{
		coll: db.Collection("leads"),
	}
}
