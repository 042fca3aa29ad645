package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
	"github.com/caesarkutaa/AgreeLink/internal/core/ports"
)

// pngDataURIPrefix is the only accepted embedded-image encoding.
const pngDataURIPrefix = "data:image/png;base64,"

// SignatureService orchestrates signature CRUD plus the image artifact on
// disk. The artifact write and the record insert are not transactional; on a
// failed insert the artifact is removed best-effort.
type SignatureService struct {
	signatures ports.SignatureRepository
	agreements ports.AgreementRepository
	images     ports.ImageStore
	activity   ports.ActivityRecorder
	logger     zerolog.Logger
}

func NewSignatureService(signatures ports.SignatureRepository, agreements ports.AgreementRepository, images ports.ImageStore, activity ports.ActivityRecorder, logger zerolog.Logger) *SignatureService {
	return &SignatureService{
		signatures: signatures,
		agreements: agreements,
		images:     images,
		activity:   activity,
		logger:     logger,
	}
}

// Create checks the agreement exists, decodes and stores the image, then
// inserts the record. Duplicate (agreement, user) pairs are rejected by the
// store's unique index and surface as a Conflict.
func (s *SignatureService) Create(ctx context.Context, input ports.CreateSignatureInput) (*domain.Signature, error) {
	s.logger.Info().
		Str("agreement_id", input.AgreementID).
		Str("user_id", input.UserID).
		Msg("creating signature")

	if _, err := s.agreements.FindByID(ctx, input.AgreementID); err != nil {
		if errors.Is(err, domain.ErrAgreementNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("agreement_id", input.AgreementID).Msg("agreement lookup failed")
		return nil, domain.Internal("Error creating signature")
	}

	if !strings.HasPrefix(input.Signature, pngDataURIPrefix) {
		s.logger.Error().Str("user_id", input.UserID).Msg("invalid base64 signature format")
		return nil, domain.Internal("Error creating signature")
	}

	imagePath, err := s.images.Save(input.UserID, input.Signature)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", input.UserID).Msg("saving signature image failed")
		return nil, domain.Internal("Error creating signature")
	}

	created, err := s.signatures.Create(ctx, &domain.Signature{
		AgreementID: input.AgreementID,
		UserID:      input.UserID,
		ImagePath:   imagePath,
		SignedAt:    time.Now().UTC(),
	})
	if err != nil {
		if removeErr := s.images.Remove(imagePath); removeErr != nil {
			s.logger.Warn().Err(removeErr).Str("path", imagePath).Msg("orphaned signature image")
		}
		if errors.Is(err, domain.ErrSignatureExists) {
			s.logger.Warn().
				Str("agreement_id", input.AgreementID).
				Str("user_id", input.UserID).
				Msg("duplicate signature")
			return nil, err
		}
		s.logger.Error().Err(err).Str("agreement_id", input.AgreementID).Msg("signature insert failed")
		return nil, domain.Internal("Error creating signature")
	}

	s.logger.Info().Str("signature_id", created.ID).Msg("signature created")
	s.activity.Record(ports.ActivityEvent{
		Resource:  "signature",
		Action:    "created",
		EntityID:  created.ID,
		ActorID:   input.UserID,
		Timestamp: created.SignedAt,
	})
	return created, nil
}

func (s *SignatureService) List(ctx context.Context) ([]domain.Signature, error) {
	signatures, err := s.signatures.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("signature list failed")
		return nil, domain.Internal("Error fetching signatures")
	}
	if signatures == nil {
		signatures = []domain.Signature{}
	}
	return signatures, nil
}

func (s *SignatureService) GetByID(ctx context.Context, id string) (*domain.Signature, error) {
	signature, err := s.signatures.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSignatureNotFound) {
			s.logger.Warn().Str("signature_id", id).Msg("signature not found")
			return nil, err
		}
		s.logger.Error().Err(err).Str("signature_id", id).Msg("signature fetch failed")
		return nil, domain.Internal("Error fetching signature")
	}
	return signature, nil
}

func (s *SignatureService) Update(ctx context.Context, id string, update ports.SignatureUpdate) (*domain.Signature, error) {
	s.logger.Info().Str("signature_id", id).Msg("updating signature")

	signature, err := s.signatures.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrSignatureNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("signature_id", id).Msg("signature update failed")
		return nil, domain.Internal("Error updating signature")
	}

	s.activity.Record(ports.ActivityEvent{
		Resource:  "signature",
		Action:    "updated",
		EntityID:  id,
		Timestamp: time.Now().UTC(),
	})
	return signature, nil
}

// Delete removes the image artifact, then the record. The span is not
// transactional; both failure paths surface rather than vanish.
func (s *SignatureService) Delete(ctx context.Context, id string) error {
	s.logger.Info().Str("signature_id", id).Msg("deleting signature")

	signature, err := s.signatures.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSignatureNotFound) {
			return err
		}
		s.logger.Error().Err(err).Str("signature_id", id).Msg("signature fetch failed")
		return domain.Internal("Error deleting signature")
	}

	if err := s.images.Remove(signature.ImagePath); err != nil {
		s.logger.Error().Err(err).Str("path", signature.ImagePath).Msg("signature image removal failed")
		return domain.Internal("Error deleting signature")
	}

	if err := s.signatures.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("signature_id", id).Msg("signature delete failed")
		return domain.Internal("Error deleting signature")
	}

	s.activity.Record(ports.ActivityEvent{
		Resource:  "signature",
		Action:    "deleted",
		EntityID:  id,
		Timestamp: time.Now().UTC(),
	})
	return nil
}
