package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/DevarshLade/lade-studio/app/services"
	"github.com/unrolled/render"
)

// maxWebhookBodyBytes bounds identity-provider payloads.
const maxWebhookBodyBytes = 1 << 20

type WebhookHandler struct {
	render     *render.Render
	webhookSvc *services.WebhookService
}

func NewWebhookHandler(render *render.Render, webhookSvc *services.WebhookService) *WebhookHandler {
	return &WebhookHandler{
		render:     render,
		webhookSvc: webhookSvc,
	}
}

// HandleIdentityWebhook is the verified receiver: it checks the
// id/timestamp/signature triple before dispatching the event.
func (h *WebhookHandler) HandleIdentityWebhook(w http.ResponseWriter, r *http.Request) {
	if !h.webhookSvc.Configured() {
		h.render.JSON(w, http.StatusServiceUnavailable, map[string]string{"error": "Webhook secret not configured."})
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Could not read body."})
		return
	}

	err = h.webhookSvc.VerifySignature(
		r.Header.Get("webhook-id"),
		r.Header.Get("webhook-timestamp"),
		r.Header.Get("webhook-signature"),
		body,
	)
	if err != nil {
		log.Printf("HandleIdentityWebhook: signature rejected: %v", err)
		h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid webhook signature."})
		return
	}

	h.dispatch(w, r, body)
}

// HandleUnverifiedWebhook mirrors the legacy placeholder route that accepts
// deliveries without a signature check. It stays registered for provider
// configurations that predate signing.
func (h *WebhookHandler) HandleUnverifiedWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodyBytes))
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Could not read body."})
		return
	}
	log.Println("HandleUnverifiedWebhook: accepting delivery without signature verification")
	h.dispatch(w, r, body)
}

func (h *WebhookHandler) dispatch(w http.ResponseWriter, r *http.Request, body []byte) {
	eventType, err := h.webhookSvc.ProcessEvent(r.Context(), body)
	if err != nil {
		if errors.Is(err, services.ErrUnknownEventType) {
			// Unknown events are acknowledged so the provider stops retrying.
			h.render.JSON(w, http.StatusOK, map[string]string{"status": "ignored"})
			return
		}
		log.Printf("webhook dispatch: %v", err)
		h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to process event."})
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]string{"status": "processed", "type": eventType})
}
