package http

import (
	"io"
	"net/http"

	"grandstay-backend/internal/domain"
	"grandstay-backend/internal/logger"
	"grandstay-backend/internal/service"
)

type BillingHandler struct {
	billing service.BillingService
}

func NewBillingHandler(billing service.BillingService) *BillingHandler {
	return &BillingHandler{billing: billing}
}

func (h *BillingHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	bill, err := h.billing.GetBill(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bill)
}

func (h *BillingHandler) Statement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	statement, err := h.billing.Statement(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statement)
}

type checkoutSessionRequest struct {
	ReservationID int32 `json:"reservation_id"`
}

type checkoutSessionResponse struct {
	SessionID   string `json:"session_id"`
	URL         string `json:"url"`
	AmountCents int64  `json:"amount_cents"`
}

func (h *BillingHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req checkoutSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	session, err := h.billing.CreateCheckoutSession(r.Context(), req.ReservationID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, checkoutSessionResponse{
		SessionID:   session.ID,
		URL:         session.URL,
		AmountCents: session.AmountCents,
	})
}

type cashPaymentRequest struct {
	ReservationID int32 `json:"reservation_id"`
	AmountCents   int32 `json:"amount_cents"`
}

type cashPaymentResponse struct {
	Payment    *domain.Payment   `json:"payment"`
	BillStatus domain.BillStatus `json:"bill_status"`
}

func (h *BillingHandler) RecordCashPayment(w http.ResponseWriter, r *http.Request) {
	var req cashPaymentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	payment, status, err := h.billing.RecordCashPayment(r.Context(), req.ReservationID, req.AmountCents)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cashPaymentResponse{Payment: payment, BillStatus: status})
}

// StripeWebhook receives gateway notifications. It is unauthenticated; the
// signature header is the only trust anchor.
func (h *BillingHandler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "cannot read payload"})
		return
	}

	if err := h.billing.HandleGatewayNotification(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		logger.Warn("Webhook rejected", "error", err)
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}
