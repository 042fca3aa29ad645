package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/caesarkutaa/AgreeLink/internal/core/domain"
	"github.com/caesarkutaa/AgreeLink/internal/core/ports"
)

type stubSignatureService struct {
	createFn func(ctx context.Context, input ports.CreateSignatureInput) (*domain.Signature, error)
	listFn   func(ctx context.Context) ([]domain.Signature, error)
	getFn    func(ctx context.Context, id string) (*domain.Signature, error)
	updateFn func(ctx context.Context, id string, update ports.SignatureUpdate) (*domain.Signature, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubSignatureService) Create(ctx context.Context, input ports.CreateSignatureInput) (*domain.Signature, error) {
	return s.createFn(ctx, input)
}

func (s *stubSignatureService) List(ctx context.Context) ([]domain.Signature, error) {
	return s.listFn(ctx)
}

func (s *stubSignatureService) GetByID(ctx context.Context, id string) (*domain.Signature, error) {
	return s.getFn(ctx, id)
}

func (s *stubSignatureService) Update(ctx context.Context, id string, update ports.SignatureUpdate) (*domain.Signature, error) {
	return s.updateFn(ctx, id, update)
}

func (s *stubSignatureService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestSignatureHandler_Create_Success(t *testing.T) {
	stub := &stubSignatureService{
		createFn: func(_ context.Context, input ports.CreateSignatureInput) (*domain.Signature, error) {
			if input.AgreementID != "a1" || input.UserID != "u1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Signature{ID: "s1", AgreementID: input.AgreementID, UserID: input.UserID}, nil
		},
	}
	h := NewSignatureHandler(stub)

	c, rec := newHandlerContext(t, http.MethodPost, "/signatures",
		`{"agreementId":"a1","userId":"u1","signature":"data:image/png;base64,AAAA"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestSignatureHandler_Create_ConflictPassesThrough(t *testing.T) {
	stub := &stubSignatureService{
		createFn: func(context.Context, ports.CreateSignatureInput) (*domain.Signature, error) {
			return nil, domain.ErrSignatureExists
		},
	}
	h := NewSignatureHandler(stub)

	c, _ := newHandlerContext(t, http.MethodPost, "/signatures",
		`{"agreementId":"a1","userId":"u1","signature":"data:image/png;base64,AAAA"}`)

	if err := h.Create(c); !errors.Is(err, domain.ErrSignatureExists) {
		t.Fatalf("expected ErrSignatureExists, got %v", err)
	}
}

func TestSignatureHandler_Create_MissingFields(t *testing.T) {
	stub := &stubSignatureService{
		createFn: func(context.Context, ports.CreateSignatureInput) (*domain.Signature, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewSignatureHandler(stub)

	c, _ := newHandlerContext(t, http.MethodPost, "/signatures", `{"agreementId":"a1"}`)

	err := h.Create(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSignatureHandler_Delete_Message(t *testing.T) {
	stub := &stubSignatureService{
		deleteFn: func(_ context.Context, id string) error {
			if id != "s1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	h := NewSignatureHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/signatures/s1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("s1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Signature deleted successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}
