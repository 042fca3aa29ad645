package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
	"github.com/caesarkutaa/AgreeLink/internal/core/ports"
)

// AgreementService orchestrates agreement CRUD with referential checks.
type AgreementService struct {
	agreements ports.AgreementRepository
	proposals  ports.ProposalRepository
	users      ports.UserRepository
	activity   ports.ActivityRecorder
	logger     zerolog.Logger
}

func NewAgreementService(agreements ports.AgreementRepository, proposals ports.ProposalRepository, users ports.UserRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *AgreementService {
	return &AgreementService{
		agreements: agreements,
		proposals:  proposals,
		users:      users,
		activity:   activity,
		logger:     logger,
	}
}

// Create verifies the referenced proposal and both parties exist, then
// writes the agreement with the ids connected.
func (s *AgreementService) Create(ctx context.Context, input ports.CreateAgreementInput) (*domain.Agreement, error) {
	s.logger.Info().Str("proposal_id", input.ProposalID).Msg("creating agreement")

	if _, err := s.proposals.FindByID(ctx, input.ProposalID); err != nil {
		if errors.Is(err, domain.ErrProposalNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("proposal_id", input.ProposalID).Msg("proposal lookup failed")
		return nil, domain.Internal("Error creating Agreement")
	}
	for _, userID := range []string{input.ClientID, input.ServiceProviderID} {
		if _, err := s.users.FindByID(ctx, userID); err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return nil, domain.ErrUserNotFound
			}
			s.logger.Error().Err(err).Str("user_id", userID).Msg("party lookup failed")
			return nil, domain.Internal("Error creating Agreement")
		}
	}

	state := input.State
	if state == "" {
		state = domain.AgreementPending
	}

	created, err := s.agreements.Create(ctx, &domain.Agreement{
		State:             state,
		ProposalID:        input.ProposalID,
		ClientID:          input.ClientID,
		ServiceProviderID: input.ServiceProviderID,
		CreatedAt:         time.Now().UTC(),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("proposal_id", input.ProposalID).Msg("agreement insert failed")
		return nil, domain.Internal("Error creating Agreement")
	}

	s.logger.Info().Str("agreement_id", created.ID).Msg("agreement created")
	s.activity.Record(ports.ActivityEvent{
		Resource:  "agreement",
		Action:    "created",
		EntityID:  created.ID,
		Timestamp: created.CreatedAt,
	})
	return created, nil
}

// List returns all agreements with related records embedded.
func (s *AgreementService) List(ctx context.Context) ([]domain.AgreementDetail, error) {
	agreements, err := s.agreements.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("agreement list failed")
		return nil, domain.Internal("Error fetching Agreements")
	}
	if agreements == nil {
		agreements = []domain.AgreementDetail{}
	}
	return agreements, nil
}

func (s *AgreementService) GetByID(ctx context.Context, id string) (*domain.AgreementDetail, error) {
	agreement, err := s.agreements.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAgreementNotFound) {
			s.logger.Warn().Str("agreement_id", id).Msg("agreement not found")
			return nil, err
		}
		s.logger.Error().Err(err).Str("agreement_id", id).Msg("agreement fetch failed")
		return nil, domain.Internal("Error fetching Agreement")
	}
	return agreement, nil
}

// Update re-connects only the references present in the update. State has no
// enforced transition graph.
func (s *AgreementService) Update(ctx context.Context, id string, update ports.AgreementUpdate) (*domain.Agreement, error) {
	s.logger.Info().Str("agreement_id", id).Msg("updating agreement")

	agreement, err := s.agreements.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrAgreementNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("agreement_id", id).Msg("agreement update failed")
		return nil, domain.Internal("Error updating Agreement")
	}

	s.activity.Record(ports.ActivityEvent{
		Resource:  "agreement",
		Action:    "updated",
		EntityID:  id,
		Timestamp: time.Now().UTC(),
	})
	return agreement, nil
}

func (s *AgreementService) Delete(ctx context.Context, id string) error {
	s.logger.Info().Str("agreement_id", id).Msg("deleting agreement")

	if err := s.agreements.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrAgreementNotFound) {
			return err
		}
		s.logger.Error().Err(err).Str("agreement_id", id).Msg("agreement delete failed")
		return domain.Internal("Error deleting Agreement")
	}

	s.activity.Record(ports.ActivityEvent{
		Resource:  "agreement",
		Action:    "deleted",
		EntityID:  id,
		Timestamp: time.Now().UTC(),
	})
	return nil
}
