package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
	"github.com/caesarkutaa/AgreeLink/internal/core/ports"
)

const proposalsCollection = "proposals"

type ProposalRepository struct {
	coll *mongo.Collection
}

func NewProposalRepository(db *mongo.Database) *ProposalRepository {
	return &ProposalRepository{coll: db.Collection(proposalsCollection)}
}

type proposalDoc struct {
	ID                primitive.ObjectID    `bson:"_id,omitempty"`
	Title             string                `bson:"title"`
	Description       string                `bson:"description"`
	Duration          int                   `bson:"duration"`
	PaymentTerms      string                `bson:"payment_terms"`
	Status            domain.ProposalStatus `bson:"status"`
	ClientID          primitive.ObjectID    `bson:"client_id"`
	ServiceProviderID primitive.ObjectID    `bson:"service_provider_id"`
	CreatedByID       primitive.ObjectID    `bson:"created_by_id"`
	CreatedAt         time.Time             `bson:"created_at"`
	UpdatedAt         time.Time             `bson:"updated_at"`
}

func (d proposalDoc) toDomain() *domain.Proposal {
	return &domain.Proposal{
		ID:                d.ID.Hex(),
		Title:             d.Title,
		Description:       d.Description,
		Duration:          d.Duration,
		PaymentTerms:      d.PaymentTerms,
		Status:            d.Status,
		ClientID:          d.ClientID.Hex(),
		ServiceProviderID: d.ServiceProviderID.Hex(),
		CreatedByID:       d.CreatedByID.Hex(),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func (r *ProposalRepository) Create(ctx context.Context, p *domain.Proposal) (*domain.Proposal, error) {
	clientID, err := primitive.ObjectIDFromHex(p.ClientID)
	if err != nil {
		return nil, fmt.Errorf("invalid client id: %w", err)
	}
	providerID, err := primitive.ObjectIDFromHex(p.ServiceProviderID)
	if err != nil {
		return nil, fmt.Errorf("invalid service provider id: %w", err)
	}
	creatorID, err := primitive.ObjectIDFromHex(p.CreatedByID)
	if err != nil {
		return nil, fmt.Errorf("invalid creator id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := proposalDoc{
		Title:             p.Title,
		Description:       p.Description,
		Duration:          p.Duration,
		PaymentTerms:      p.PaymentTerms,
		Status:            p.Status,
		ClientID:          clientID,
		ServiceProviderID: providerID,
		CreatedByID:       creatorID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert proposal: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ProposalRepository) FindByCreator(ctx context.Context, createdByID string) ([]domain.Proposal, error) {
	creatorID, err := primitive.ObjectIDFromHex(createdByID)
	if err != nil {
		return []domain.Proposal{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"created_by_id": creatorID})
	if err != nil {
		return nil, fmt.Errorf("find proposals: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Proposal
	for cursor.Next(ctx) {
		var doc proposalDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode proposal: %w", err)
		}
		out = append(out, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate proposals: %w", err)
	}
	return out, nil
}

func (r *ProposalRepository) FindByID(ctx context.Context, id string) (*domain.Proposal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProposalNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc proposalDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProposalNotFound
		}
		return nil, fmt.Errorf("find proposal: %w", err)
	}
	return doc.toDomain(), nil
}

// Update applies only the non-nil fields and returns the updated document.
func (r *ProposalRepository) Update(ctx context.Context, id string, update ports.ProposalUpdate) (*domain.Proposal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProposalNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Duration != nil {
		set["duration"] = *update.Duration
	}
	if update.PaymentTerms != nil {
		set["payment_terms"] = *update.PaymentTerms
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc proposalDoc
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProposalNotFound
		}
		return nil, fmt.Errorf("update proposal: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ProposalRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProposalNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete proposal: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProposalNotFound
	}
	return nil
}

func (r *ProposalRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_by_id", Value: 1}},
	})
	return err
}
