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

const agreementsCollection = "agreements"

type AgreementRepository struct {
	coll  *mongo.Collection
	users *UserRepository
	props *ProposalRepository
}

func NewAgreementRepository(db *mongo.Database) *AgreementRepository {
	return &AgreementRepository{
		coll:  db.Collection(agreementsCollection),
		users: NewUserRepository(db),
		props: NewProposalRepository(db),
	}
}

type agreementDoc struct {
	ID                primitive.ObjectID    `bson:"_id,omitempty"`
	State             domain.AgreementState `bson:"state"`
	ProposalID        primitive.ObjectID    `bson:"proposal_id"`
	ClientID          primitive.ObjectID    `bson:"client_id"`
	ServiceProviderID primitive.ObjectID    `bson:"service_provider_id"`
	CreatedAt         time.Time             `bson:"created_at"`
	SignedAt          *time.Time            `bson:"signed_at,omitempty"`
}

func (d agreementDoc) toDomain() *domain.Agreement {
	return &domain.Agreement{
		ID:                d.ID.Hex(),
		State:             d.State,
		ProposalID:        d.ProposalID.Hex(),
		ClientID:          d.ClientID.Hex(),
		ServiceProviderID: d.ServiceProviderID.Hex(),
		CreatedAt:         d.CreatedAt,
		SignedAt:          d.SignedAt,
	}
}

func (r *AgreementRepository) Create(ctx context.Context, a *domain.Agreement) (*domain.Agreement, error) {
	proposalID, err := primitive.ObjectIDFromHex(a.ProposalID)
	if err != nil {
		return nil, fmt.Errorf("invalid proposal id: %w", err)
	}
	clientID, err := primitive.ObjectIDFromHex(a.ClientID)
	if err != nil {
		return nil, fmt.Errorf("invalid client id: %w", err)
	}
	providerID, err := primitive.ObjectIDFromHex(a.ServiceProviderID)
	if err != nil {
		return nil, fmt.Errorf("invalid service provider id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := agreementDoc{
		State:             a.State,
		ProposalID:        proposalID,
		ClientID:          clientID,
		ServiceProviderID: providerID,
		CreatedAt:         a.CreatedAt,
		SignedAt:          a.SignedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert agreement: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// FindAll returns every agreement with its proposal and both parties
// embedded. Related records that have since been removed are left nil
// rather than failing the whole read.
func (r *AgreementRepository) FindAll(ctx context.Context) ([]domain.AgreementDetail, error) {
	findCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(findCtx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find agreements: %w", err)
	}
	defer cursor.Close(findCtx)

	var out []domain.AgreementDetail
	for cursor.Next(findCtx) {
		var doc agreementDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode agreement: %w", err)
		}
		out = append(out, *r.embed(ctx, doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate agreements: %w", err)
	}
	return out, nil
}

func (r *AgreementRepository) FindByID(ctx context.Context, id string) (*domain.AgreementDetail, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAgreementNotFound
	}

	findCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc agreementDoc
	if err := r.coll.FindOne(findCtx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAgreementNotFound
		}
		return nil, fmt.Errorf("find agreement: %w", err)
	}
	return r.embed(ctx, doc), nil
}

// embed resolves the related proposal and party records, excluding password
// material from the user projections.
func (r *AgreementRepository) embed(ctx context.Context, doc agreementDoc) *domain.AgreementDetail {
	detail := domain.AgreementDetail{Agreement: *doc.toDomain()}

	if proposal, err := r.props.FindByID(ctx, doc.ProposalID.Hex()); err == nil {
		detail.Proposal = proposal
	}
	if client, err := r.users.FindByID(ctx, doc.ClientID.Hex()); err == nil {
		detail.Client = &domain.UserRef{ID: client.ID, Email: client.Email, Username: client.Username}
	}
	if provider, err := r.users.FindByID(ctx, doc.ServiceProviderID.Hex()); err == nil {
		detail.ServiceProvider = &domain.UserRef{ID: provider.ID, Email: provider.Email, Username: provider.Username}
	}
	return &detail
}

func (r *AgreementRepository) Update(ctx context.Context, id string, update ports.AgreementUpdate) (*domain.Agreement, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAgreementNotFound
	}

	set := bson.M{}
	if update.State != nil {
		set["state"] = *update.State
	}
	for field, value := range map[string]*string{
		"proposal_id":         update.ProposalID,
		"client_id":           update.ClientID,
		"service_provider_id": update.ServiceProviderID,
	} {
		if value == nil {
			continue
		}
		refID, err := primitive.ObjectIDFromHex(*value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", field, err)
		}
		set[field] = refID
	}
	if len(set) == 0 {
		detail, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &detail.Agreement, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc agreementDoc
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAgreementNotFound
		}
		return nil, fmt.Errorf("update agreement: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AgreementRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAgreementNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete agreement: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAgreementNotFound
	}
	return nil
}
