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

const signaturesCollection = "signatures"

type SignatureRepository struct {
	coll *mongo.Collection
}

func NewSignatureRepository(db *mongo.Database) *SignatureRepository {
	return &SignatureRepository{coll: db.Collection(signaturesCollection)}
}

type signatureDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	AgreementID primitive.ObjectID `bson:"agreement_id"`
	UserID      primitive.ObjectID `bson:"user_id"`
	ImagePath   string             `bson:"image_path"`
	SignedAt    time.Time          `bson:"signed_at"`
}

func (d signatureDoc) toDomain() *domain.Signature {
	return &domain.Signature{
		ID:          d.ID.Hex(),
		AgreementID: d.AgreementID.Hex(),
		UserID:      d.UserID.Hex(),
		ImagePath:   d.ImagePath,
		SignedAt:    d.SignedAt,
	}
}

// Create inserts the signature. The compound unique index on
// (agreement_id, user_id) rejects a second signature atomically; the driver
// error is translated to domain.ErrSignatureExists.
func (r *SignatureRepository) Create(ctx context.Context, s *domain.Signature) (*domain.Signature, error) {
	agreementID, err := primitive.ObjectIDFromHex(s.AgreementID)
	if err != nil {
		return nil, fmt.Errorf("invalid agreement id: %w", err)
	}
	userID, err := primitive.ObjectIDFromHex(s.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := signatureDoc{
		AgreementID: agreementID,
		UserID:      userID,
		ImagePath:   s.ImagePath,
		SignedAt:    s.SignedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSignatureExists
		}
		return nil, fmt.Errorf("insert signature: %w", err)
	}
	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *SignatureRepository) FindAll(ctx context.Context) ([]domain.Signature, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find signatures: %w", err)
	}
	defer cursor.Close(ctx)

	var out []domain.Signature
	for cursor.Next(ctx) {
		var doc signatureDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode signature: %w", err)
		}
		out = append(out, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate signatures: %w", err)
	}
	return out, nil
}

func (r *SignatureRepository) FindByID(ctx context.Context, id string) (*domain.Signature, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSignatureNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc signatureDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSignatureNotFound
		}
		return nil, fmt.Errorf("find signature: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SignatureRepository) Update(ctx context.Context, id string, update ports.SignatureUpdate) (*domain.Signature, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSignatureNotFound
	}

	set := bson.M{}
	if update.AgreementID != nil {
		refID, err := primitive.ObjectIDFromHex(*update.AgreementID)
		if err != nil {
			return nil, fmt.Errorf("invalid agreement id: %w", err)
		}
		set["agreement_id"] = refID
	}
	if update.UserID != nil {
		refID, err := primitive.ObjectIDFromHex(*update.UserID)
		if err != nil {
			return nil, fmt.Errorf("invalid user id: %w", err)
		}
		set["user_id"] = refID
	}
	if update.ImagePath != nil {
		set["image_path"] = *update.ImagePath
	}
	if len(set) == 0 {
		return r.FindByID(ctx, id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc signatureDoc
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSignatureNotFound
		}
		return nil, fmt.Errorf("update signature: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SignatureRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSignatureNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete signature: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSignatureNotFound
	}
	return nil
}

func (r *SignatureRepository) ensureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "agreement_id", Value: 1},
			{Key: "user_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}
