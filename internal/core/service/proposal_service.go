package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
	"github.com/caesarkutaa/AgreeLink/internal/core/ports"
)

// ProposalService orchestrates proposal CRUD with referential checks.
type ProposalService struct {
	proposals ports.ProposalRepository
	users     ports.UserRepository
	activity  ports.ActivityRecorder
	logger    zerolog.Logger
}

func NewProposalService(proposals ports.ProposalRepository, users ports.UserRepository, activity ports.ActivityRecorder, logger zerolog.Logger) *ProposalService {
	return &ProposalService{
		proposals: proposals,
		users:     users,
		activity:  activity,
		logger:    logger,
	}
}

// Create resolves the client and service-provider emails plus the creator id
// to existing users, then writes the proposal with the three ids connected.
func (s *ProposalService) Create(ctx context.Context, input ports.CreateProposalInput, createdByID string) (*domain.Proposal, error) {
	s.logger.Info().Str("created_by", createdByID).Msg("creating proposal")

	if createdByID == "" {
		return nil, domain.ErrUserNotFound
	}

	client, err := s.users.FindByEmail(ctx, input.Client)
	if err != nil {
		return nil, s.participantErr(err, input.Client)
	}
	provider, err := s.users.FindByEmail(ctx, input.ServiceProvider)
	if err != nil {
		return nil, s.participantErr(err, input.ServiceProvider)
	}
	if _, err := s.users.FindByID(ctx, createdByID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrParticipantNotFound
		}
		s.logger.Error().Err(err).Str("created_by", createdByID).Msg("creator lookup failed")
		return nil, domain.Internal("Error creating Proposal")
	}

	now := time.Now().UTC()
	created, err := s.proposals.Create(ctx, &domain.Proposal{
		Title:             input.Title,
		Description:       input.Description,
		Duration:          input.Duration,
		PaymentTerms:      input.PaymentTerms,
		Status:            input.Status,
		ClientID:          client.ID,
		ServiceProviderID: provider.ID,
		CreatedByID:       createdByID,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	if err != nil {
		s.logger.Error().Err(err).Str("created_by", createdByID).Msg("proposal insert failed")
		return nil, domain.Internal("Error creating Proposal")
	}

	s.logger.Info().Str("proposal_id", created.ID).Msg("proposal created")
	s.activity.Record(ports.ActivityEvent{
		Resource:  "proposal",
		Action:    "created",
		EntityID:  created.ID,
		ActorID:   createdByID,
		Timestamp: now,
	})
	return created, nil
}

func (s *ProposalService) participantErr(err error, email string) error {
	if errors.Is(err, domain.ErrUserNotFound) {
		s.logger.Warn().Str("email", email).Msg("participant not found")
		return domain.ErrParticipantNotFound
	}
	s.logger.Error().Err(err).Str("email", email).Msg("participant lookup failed")
	return domain.Internal("Error creating Proposal")
}

// ListByCreator returns all proposals created by the given user.
func (s *ProposalService) ListByCreator(ctx context.Context, createdByID string) (*ports.ProposalList, error) {
	if createdByID == "" {
		return nil, domain.ErrUserNotFound
	}

	proposals, err := s.proposals.FindByCreator(ctx, createdByID)
	if err != nil {
		s.logger.Error().Err(err).Str("created_by", createdByID).Msg("proposal list failed")
		return nil, domain.Internal("Error Fetching Proposal")
	}
	if proposals == nil {
		proposals = []domain.Proposal{}
	}
	return &ports.ProposalList{Proposals: proposals, Count: len(proposals)}, nil
}

func (s *ProposalService) GetByID(ctx context.Context, id string) (*domain.Proposal, error) {
	proposal, err := s.proposals.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProposalNotFound) {
			s.logger.Warn().Str("proposal_id", id).Msg("proposal not found")
			return nil, err
		}
		s.logger.Error().Err(err).Str("proposal_id", id).Msg("proposal fetch failed")
		return nil, domain.Internal("Error Fetching Proposal")
	}
	return proposal, nil
}

// Update applies only the fields present in the update. No transition rules
// are enforced on status.
func (s *ProposalService) Update(ctx context.Context, id string, update ports.ProposalUpdate) (*domain.Proposal, error) {
	s.logger.Info().Str("proposal_id", id).Msg("updating proposal")

	proposal, err := s.proposals.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrProposalNotFound) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("proposal_id", id).Msg("proposal update failed")
		return nil, domain.Internal("Error updating Proposal")
	}

	s.activity.Record(ports.ActivityEvent{
		Resource:  "proposal",
		Action:    "updated",
		EntityID:  id,
		Timestamp: time.Now().UTC(),
	})
	return proposal, nil
}

func (s *ProposalService) Delete(ctx context.Context, id string) error {
	s.logger.Info().Str("proposal_id", id).Msg("deleting proposal")

	if err := s.proposals.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrProposalNotFound) {
			return err
		}
		s.logger.Error().Err(err).Str("proposal_id", id).Msg("proposal delete failed")
		return domain.Internal("Error deleting Proposal")
	}

	s.activity.Record(ports.ActivityEvent{
		Resource:  "proposal",
		Action:    "deleted",
		EntityID:  id,
		Timestamp: time.Now().UTC(),
	})
	return nil
}
