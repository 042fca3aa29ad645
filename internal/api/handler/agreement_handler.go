package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caesarkutaa/AgreeLink/internal/api/metrics"
	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
	"github.com/caesarkutaa/AgreeLink/internal/core/ports"
)

// AgreementHandler handles HTTP requests for agreement operations.
type AgreementHandler struct {
	service ports.AgreementService
}

func NewAgreementHandler(service ports.AgreementService) *AgreementHandler {
	return &AgreementHandler{service: service}
}

// Create creates an agreement connecting a proposal with its two parties.
//
// @Summary      Create an agreement
// @Tags         agreements
// @Accept       json
// @Produce      json
// @Param        body  body      createAgreementRequest  true  "Agreement details"
// @Success      201   {object}  domain.Agreement
// @Failure      404   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /agreements [post]
func (h *AgreementHandler) Create(c echo.Context) error {
	var req createAgreementRequest
	if err := BindStrict(c, &req); err != nil {
		return err
	}

	agreement, err := h.service.Create(c.Request().Context(), ports.CreateAgreementInput{
		ProposalID:        req.ProposalID,
		ClientID:          req.ClientID,
		ServiceProviderID: req.ServiceProviderID,
		State:             domain.AgreementState(req.State),
	})
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("agreement").Inc()
	return c.JSON(http.StatusCreated, agreement)
}

// List returns all agreements with their related records embedded.
//
// @Summary      List agreements
// @Tags         agreements
// @Produce      json
// @Success      200  {array}  domain.AgreementDetail
// @Router       /agreements [get]
func (h *AgreementHandler) List(c echo.Context) error {
	agreements, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, agreements)
}

// Get returns one agreement by id with related records embedded.
//
// @Summary      Get an agreement
// @Tags         agreements
// @Produce      json
// @Param        id   path      string  true  "Agreement id"
// @Success      200  {object}  domain.AgreementDetail
// @Failure      404  {object}  map[string]any
// @Router       /agreements/{id} [get]
func (h *AgreementHandler) Get(c echo.Context) error {
	agreement, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, agreement)
}

// Update applies a partial update, re-connecting only provided references.
//
// @Summary      Update an agreement
// @Tags         agreements
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Agreement id"
// @Param        body  body      updateAgreementRequest  true  "Fields to update"
// @Success      200   {object}  domain.Agreement
// @Failure      404   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /agreements/{id} [patch]
func (h *AgreementHandler) Update(c echo.Context) error {
	var req updateAgreementRequest
	if err := BindStrict(c, &req); err != nil {
		return err
	}

	update := ports.AgreementUpdate{
		ProposalID:        req.ProposalID,
		ClientID:          req.ClientID,
		ServiceProviderID: req.ServiceProviderID,
	}
	if req.State != nil {
		state := domain.AgreementState(*req.State)
		update.State = &state
	}

	agreement, err := h.service.Update(c.Request().Context(), c.Param("id"), update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, agreement)
}

// Delete removes an agreement.
//
// @Summary      Delete an agreement
// @Tags         agreements
// @Produce      json
// @Param        id   path      string  true  "Agreement id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]any
// @Router       /agreements/{id} [delete]
func (h *AgreementHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Message: "Agreement has been deleted successfully",
	})
}
