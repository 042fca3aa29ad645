package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/caesarkutaa/AgreeLink/internal/api/metrics"
	"github.com/caesarkutaa/AgreeLink/internal/core/ports"
)

// SignatureHandler handles HTTP requests for signature operations.
type SignatureHandler struct {
	service ports.SignatureService
}

func NewSignatureHandler(service ports.SignatureService) *SignatureHandler {
	return &SignatureHandler{service: service}
}

// Create stores a signature image and its record for an agreement.
//
// @Summary      Sign an agreement
// @Tags         signatures
// @Accept       json
// @Produce      json
// @Param        body  body      createSignatureRequest  true  "Signature details"
// @Success      201   {object}  domain.Signature
// @Failure      404   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Failure      422   {object}  map[string]any
// @Router       /signatures [post]
func (h *SignatureHandler) Create(c echo.Context) error {
	var req createSignatureRequest
	if err := BindStrict(c, &req); err != nil {
		return err
	}

	signature, err := h.service.Create(c.Request().Context(), ports.CreateSignatureInput{
		AgreementID: req.AgreementID,
		UserID:      req.UserID,
		Signature:   req.Signature,
	})
	if err != nil {
		return err
	}

	metrics.ResourcesCreatedTotal.WithLabelValues("signature").Inc()
	return c.JSON(http.StatusCreated, signature)
}

// List returns all signatures.
//
// @Summary      List signatures
// @Tags         signatures
// @Produce      json
// @Success      200  {array}  domain.Signature
// @Router       /signatures [get]
func (h *SignatureHandler) List(c echo.Context) error {
	signatures, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, signatures)
}

// Get returns one signature by id.
//
// @Summary      Get a signature
// @Tags         signatures
// @Produce      json
// @Param        id   path      string  true  "Signature id"
// @Success      200  {object}  domain.Signature
// @Failure      404  {object}  map[string]any
// @Router       /signatures/{id} [get]
func (h *SignatureHandler) Get(c echo.Context) error {
	signature, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, signature)
}

// Update applies a partial update to a signature record.
//
// @Summary      Update a signature
// @Tags         signatures
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Signature id"
// @Param        body  body      updateSignatureRequest  true  "Fields to update"
// @Success      200   {object}  domain.Signature
// @Failure      404   {object}  map[string]any
// @Router       /signatures/{id} [put]
func (h *SignatureHandler) Update(c echo.Context) error {
	var req updateSignatureRequest
	if err := BindStrict(c, &req); err != nil {
		return err
	}

	signature, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.SignatureUpdate{
		AgreementID: req.AgreementID,
		UserID:      req.UserID,
		ImagePath:   req.ImagePath,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, signature)
}

// Delete removes the signature image artifact and its record.
//
// @Summary      Delete a signature
// @Tags         signatures
// @Produce      json
// @Param        id   path      string  true  "Signature id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]any
// @Router       /signatures/{id} [delete]
func (h *SignatureHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Message: "Signature deleted successfully",
	})
}
