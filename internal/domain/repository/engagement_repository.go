package repository

import (
	"context"

	"herbaciarnia/internal/domain/entity"
)

// NewsletterRepository persists newsletter subscriptions.
type NewsletterRepository interface {
	// Subscribe stores the subscription if the email is not already present.
	// Returns false when the email was already subscribed.
	Subscribe(ctx context.Context, subscription *entity.NewsletterSubscription) (bool, error)

	// CountSubscriptions returns the total number of subscribed emails.
	CountSubscriptions(ctx context.Context) (int64, error)
}

// ContactRepository persists contact form messages.
type ContactRepository interface {
	// SaveMessage stores a submitted contact message.
	SaveMessage(ctx context.Context, message *entity.ContactMessage) error
}
