package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caesarkutaa/AgreeLink/internal/api/metrics"
	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
	"github.com/caesarkutaa/AgreeLink/internal/core/ports"
)

// ProposalHandler handles HTTP requests for proposal operations.
type ProposalHandler struct {
	service ports.ProposalService
}

func NewProposalHandler(service ports.ProposalService) *ProposalHandler {
	return &ProposalHandler{service: service}
}

// Create creates a proposal attributed to the authenticated user.
//
// @Summary      Create a proposal
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProposalRequest  true  "Proposal details"
// @Success      201   {object}  domain.Proposal
// @Failure      401   {object}  map[string]any
// @Failure      404   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /proposals [post]
func (h *ProposalHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createProposalRequest
	if err := BindStrict(c, &req); err != nil {
		return err
	}

	proposal, err := h.service.Create(c.Request().Context(), ports.CreateProposalInput{
		Title:           req.Title,
		Description:     req.Description,
		Duration:        req.Duration,
		PaymentTerms:    req.PaymentTerms,
		Status:          domain.ProposalStatus(req.Status),
		Client:          req.Client,
		ServiceProvider: req.ServiceProvider,
	}, identity.UserID)
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("proposal").Inc()
	return c.JSON(http.StatusCreated, proposal)
}

// List returns the proposals created by the authenticated user.
//
// @Summary      List own proposals
// @Tags         proposals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ProposalList
// @Failure      401  {object}  map[string]any
// @Router       /proposals [get]
func (h *ProposalHandler) List(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	list, err := h.service.ListByCreator(c.Request().Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

// Get returns one proposal by id.
//
// @Summary      Get a proposal
// @Tags         proposals
// @Produce      json
// @Param        id   path      string  true  "Proposal id"
// @Success      200  {object}  domain.Proposal
// @Failure      404  {object}  map[string]any
// @Router       /proposals/{id} [get]
func (h *ProposalHandler) Get(c echo.Context) error {
	proposal, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, proposal)
}

// Update applies a partial update to a proposal.
//
// @Summary      Update a proposal
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Proposal id"
// @Param        body  body      updateProposalRequest  true  "Fields to update"
// @Success      200   {object}  updateProposalResponse
// @Failure      404   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /proposals/{id} [patch]
func (h *ProposalHandler) Update(c echo.Context) error {
	id := c.Param("id")

	var req updateProposalRequest
	if err := BindStrict(c, &req); err != nil {
		return err
	}

	update := ports.ProposalUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Duration:     req.Duration,
		PaymentTerms: req.PaymentTerms,
	}
	if req.Status != nil {
		status := domain.ProposalStatus(*req.Status)
		update.Status = &status
	}

	proposal, err := h.service.Update(c.Request().Context(), id, update)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updateProposalResponse{
		Message:  fmt.Sprintf("Proposal with ID %s has been updated", id),
		Proposal: proposal,
	})
}

// Delete removes a proposal.
//
// @Summary      Delete a proposal
// @Tags         proposals
// @Produce      json
// @Param        id   path      string  true  "Proposal id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]any
// @Router       /proposals/{id} [delete]
func (h *ProposalHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Proposal with ID %s has been deleted", id),
	})
}
