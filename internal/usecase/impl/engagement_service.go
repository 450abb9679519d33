package impl

import (
	"context"
	"strings"
	"time"

	"herbaciarnia/internal/domain/entity"
	"herbaciarnia/internal/domain/repository"
	"herbaciarnia/internal/errors"
	"herbaciarnia/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type newsletterService struct {
	newsletterRepo repository.NewsletterRepository
}

// NewsletterServiceParams holds dependencies for NewsletterService, injected by Fx.
type NewsletterServiceParams struct {
	fx.In

	NewsletterRepo repository.NewsletterRepository
}

// NewNewsletterService creates a new newsletter service instance
func NewNewsletterService(params NewsletterServiceParams) usecase.NewsletterUsecase {
	return &newsletterService{
		newsletterRepo: params.NewsletterRepo,
	}
}

// Subscribe stores the normalized email; re-subscribing is a no-op.
func (s *newsletterService) Subscribe(ctx context.Context, email string) (bool, error) {
	subscription := &entity.NewsletterSubscription{
		ID:        uuid.New(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		CreatedAt: time.Now(),
	}

	created, err := s.newsletterRepo.Subscribe(ctx, subscription)
	if err != nil {
		return false, errors.Wrap(err, "failed to subscribe email")
	}

	return created, nil
}

type contactService struct {
	contactRepo repository.ContactRepository
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo repository.ContactRepository
}

// NewContactService creates a new contact service instance
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		contactRepo: params.ContactRepo,
	}
}

// SubmitMessage stores a contact message.
func (s *contactService) SubmitMessage(ctx context.Context, form usecase.ContactForm) error {
	message := &entity.ContactMessage{
		ID:        uuid.New(),
		Name:      form.Name,
		Email:     strings.TrimSpace(form.Email),
		Subject:   form.Subject,
		Message:   form.Message,
		CreatedAt: time.Now(),
	}

	if err := s.contactRepo.SaveMessage(ctx, message); err != nil {
		return errors.Wrap(err, "failed to save contact message")
	}

	return nil
}
