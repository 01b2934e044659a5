package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/DevarshLade/lade-studio/app/models"
	"github.com/DevarshLade/lade-studio/app/repositories"
)

var (
	ErrWebhookNotConfigured = errors.New("webhook secret not configured")
	ErrInvalidSignature     = errors.New("invalid webhook signature")
	ErrStaleTimestamp       = errors.New("webhook timestamp outside tolerance")
	ErrUnknownEventType     = errors.New("unknown webhook event type")
)

// webhookTolerance bounds replay of captured deliveries.
const webhookTolerance = 5 * time.Minute

const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// IdentityEvent is the envelope the identity provider posts.
type IdentityEvent struct {
	Type string          `json:"type"`
	Data IdentityPayload `json:"data"`
}

type IdentityPayload struct {
	ID             string                 `json:"id"`
	FirstName      string                 `json:"first_name"`
	LastName       string                 `json:"last_name"`
	ImageURL       string                 `json:"image_url"`
	EmailAddresses []IdentityEmailAddress `json:"email_addresses"`
}

type IdentityEmailAddress struct {
	EmailAddress string `json:"email_address"`
}

type WebhookService struct {
	secret   string
	userRepo repositories.UserRepositoryImpl
	now      func() time.Time
}

func NewWebhookService(secret string, userRepo repositories.UserRepositoryImpl) *WebhookService {
	return &WebhookService{
		secret:   secret,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *WebhookService) Configured() bool {
	return s.secret != ""
}

// VerifySignature checks the id/timestamp/signature triple the identity
// provider sends. The signed content is "<id>.<timestamp>.<body>", HMAC-SHA256
// keyed with the base64 portion of the "whsec_" secret; the signature header
// carries space-separated "v1,<base64>" candidates.
func (s *WebhookService) VerifySignature(msgID, msgTimestamp, signatureHeader string, body []byte) error {
	if s.secret == "" {
		return ErrWebhookNotConfigured
	}

	ts, err := strconv.ParseInt(msgTimestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: bad timestamp %q", ErrInvalidSignature, msgTimestamp)
	}
	age := s.now().Sub(time.Unix(ts, 0))
	if age > webhookTolerance || age < -webhookTolerance {
		return ErrStaleTimestamp
	}

	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(s.secret, "whsec_"))
	if err != nil {
		return fmt.Errorf("failed to decode webhook secret: %w", err)
	}

	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%s.", msgID, msgTimestamp)
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	for _, candidate := range strings.Fields(signatureHeader) {
		parts := strings.SplitN(candidate, ",", 2)
		if len(parts) != 2 || parts[0] != "v1" {
			continue
		}
		if hmac.Equal([]byte(parts[1]), []byte(expected)) {
			return nil
		}
	}
	return ErrInvalidSignature
}

// ProcessEvent dispatches one identity-provider event into the mirrored users
// table.
func (s *WebhookService) ProcessEvent(ctx context.Context, body []byte) (string, error) {
	var event IdentityEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return "", fmt.Errorf("failed to decode webhook body: %w", err)
	}
	if event.Data.ID == "" {
		return "", fmt.Errorf("webhook event %q has no user id", event.Type)
	}

	switch event.Type {
	case EventUserCreated, EventUserUpdated:
		user := &models.User{
			ID:        event.Data.ID,
			FirstName: event.Data.FirstName,
			LastName:  event.Data.LastName,
			ImageURL:  event.Data.ImageURL,
		}
		if len(event.Data.EmailAddresses) > 0 {
			user.Email = event.Data.EmailAddresses[0].EmailAddress
		}
		if err := s.userRepo.Upsert(ctx, user); err != nil {
			return "", fmt.Errorf("failed to sync user %s: %w", user.ID, err)
		}
		log.Printf("WebhookService: synced user %s (%s)", user.ID, event.Type)
	case EventUserDeleted:
		if err := s.userRepo.Delete(ctx, event.Data.ID); err != nil {
			return "", fmt.Errorf("failed to delete user %s: %w", event.Data.ID, err)
		}
		log.Printf("WebhookService: deleted user %s", event.Data.ID)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEventType, event.Type)
	}
	return event.Type, nil
}
