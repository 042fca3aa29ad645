package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
	"github.com/caesarkutaa/AgreeLink/internal/core/ports"
)

// In-memory doubles for the repository ports. Each stores clones so tests
// cannot mutate repository state through returned pointers.

type stubUserRepo struct {
	users  map[string]*domain.User // keyed by id
	nextID int
	// createErr forces Create to fail with the given error.
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	clone := *user
	clone.ID = "user_" + strconv.Itoa(r.nextID)
	r.nextID++
	stored := clone
	r.users[clone.ID] = &stored
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) add(id, username, email, passwordHash string) {
	r.users[id] = &domain.User{ID: id, Username: username, Email: email, PasswordHash: passwordHash}
}

type stubProposalRepo struct {
	proposals map[string]*domain.Proposal
	nextID    int
	createErr error
	deleteErr error
}

func newStubProposalRepo() *stubProposalRepo {
	return &stubProposalRepo{proposals: make(map[string]*domain.Proposal), nextID: 1}
}

func (r *stubProposalRepo) Create(_ context.Context, p *domain.Proposal) (*domain.Proposal, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *p
	clone.ID = "prop_" + strconv.Itoa(r.nextID)
	r.nextID++
	stored := clone
	r.proposals[clone.ID] = &stored
	return &clone, nil
}

func (r *stubProposalRepo) FindByCreator(_ context.Context, createdByID string) ([]domain.Proposal, error) {
	var out []domain.Proposal
	for _, p := range r.proposals {
		if p.CreatedByID == createdByID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProposalRepo) FindByID(_ context.Context, id string) (*domain.Proposal, error) {
	p, ok := r.proposals[id]
	if !ok {
		return nil, domain.ErrProposalNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProposalRepo) Update(_ context.Context, id string, update ports.ProposalUpdate) (*domain.Proposal, error) {
	p, ok := r.proposals[id]
	if !ok {
		return nil, domain.ErrProposalNotFound
	}
	if update.Title != nil {
		p.Title = *update.Title
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.Duration != nil {
		p.Duration = *update.Duration
	}
	if update.PaymentTerms != nil {
		p.PaymentTerms = *update.PaymentTerms
	}
	if update.Status != nil {
		p.Status = *update.Status
	}
	clone := *p
	return &clone, nil
}

func (r *stubProposalRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.proposals[id]; !ok {
		return domain.ErrProposalNotFound
	}
	delete(r.proposals, id)
	return nil
}

type stubAgreementRepo struct {
	agreements map[string]*domain.Agreement
	nextID     int
	deleteErr  error
}

func newStubAgreementRepo() *stubAgreementRepo {
	return &stubAgreementRepo{agreements: make(map[string]*domain.Agreement), nextID: 1}
}

func (r *stubAgreementRepo) Create(_ context.Context, a *domain.Agreement) (*domain.Agreement, error) {
	clone := *a
	clone.ID = "agr_" + strconv.Itoa(r.nextID)
	r.nextID++
	stored := clone
	r.agreements[clone.ID] = &stored
	return &clone, nil
}

func (r *stubAgreementRepo) FindAll(_ context.Context) ([]domain.AgreementDetail, error) {
	var out []domain.AgreementDetail
	for _, a := range r.agreements {
		out = append(out, domain.AgreementDetail{Agreement: *a})
	}
	return out, nil
}

func (r *stubAgreementRepo) FindByID(_ context.Context, id string) (*domain.AgreementDetail, error) {
	a, ok := r.agreements[id]
	if !ok {
		return nil, domain.ErrAgreementNotFound
	}
	return &domain.AgreementDetail{Agreement: *a}, nil
}

func (r *stubAgreementRepo) Update(_ context.Context, id string, update ports.AgreementUpdate) (*domain.Agreement, error) {
	a, ok := r.agreements[id]
	if !ok {
		return nil, domain.ErrAgreementNotFound
	}
	if update.State != nil {
		a.State = *update.State
	}
	if update.ProposalID != nil {
		a.ProposalID = *update.ProposalID
	}
	if update.ClientID != nil {
		a.ClientID = *update.ClientID
	}
	if update.ServiceProviderID != nil {
		a.ServiceProviderID = *update.ServiceProviderID
	}
	clone := *a
	return &clone, nil
}

func (r *stubAgreementRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.agreements[id]; !ok {
		return domain.ErrAgreementNotFound
	}
	delete(r.agreements, id)
	return nil
}

type stubSignatureRepo struct {
	signatures map[string]*domain.Signature
	nextID     int
	createErr  error
	deleteErr  error
}

func newStubSignatureRepo() *stubSignatureRepo {
	return &stubSignatureRepo{signatures: make(map[string]*domain.Signature), nextID: 1}
}

func (r *stubSignatureRepo) Create(_ context.Context, s *domain.Signature) (*domain.Signature, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, existing := range r.signatures {
		if existing.AgreementID == s.AgreementID && existing.UserID == s.UserID {
			return nil, domain.ErrSignatureExists
		}
	}
	clone := *s
	clone.ID = "sig_" + strconv.Itoa(r.nextID)
	r.nextID++
	stored := clone
	r.signatures[clone.ID] = &stored
	return &clone, nil
}

func (r *stubSignatureRepo) FindAll(_ context.Context) ([]domain.Signature, error) {
	var out []domain.Signature
	for _, s := range r.signatures {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSignatureRepo) FindByID(_ context.Context, id string) (*domain.Signature, error) {
	s, ok := r.signatures[id]
	if !ok {
		return nil, domain.ErrSignatureNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSignatureRepo) Update(_ context.Context, id string, update ports.SignatureUpdate) (*domain.Signature, error) {
	s, ok := r.signatures[id]
	if !ok {
		return nil, domain.ErrSignatureNotFound
	}
	if update.AgreementID != nil {
		s.AgreementID = *update.AgreementID
	}
	if update.UserID != nil {
		s.UserID = *update.UserID
	}
	if update.ImagePath != nil {
		s.ImagePath = *update.ImagePath
	}
	clone := *s
	return &clone, nil
}

func (r *stubSignatureRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.signatures[id]; !ok {
		return domain.ErrSignatureNotFound
	}
	delete(r.signatures, id)
	return nil
}

// stubImageStore records saves and removes in memory.
type stubImageStore struct {
	saved     map[string]string // path -> dataURI
	nextID    int
	saveErr   error
	removeErr error
}

func newStubImageStore() *stubImageStore {
	return &stubImageStore{saved: make(map[string]string), nextID: 1}
}

func (s *stubImageStore) Save(userID, dataURI string) (string, error) {
	if s.saveErr != nil {
		return "", s.saveErr
	}
	path := fmt.Sprintf("uploads/signatures/signature_%s_%d.png", userID, s.nextID)
	s.nextID++
	s.saved[path] = dataURI
	return path, nil
}

func (s *stubImageStore) Remove(path string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	delete(s.saved, path)
	return nil
}

// recordingActivity captures recorded events for assertions.
type recordingActivity struct {
	mu     sync.Mutex
	events []ports.ActivityEvent
}

func (r *recordingActivity) Record(event ports.ActivityEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingActivity) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

var errStoreDown = errors.New("store unavailable")
