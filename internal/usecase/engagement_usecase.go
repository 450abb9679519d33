package usecase

import "context"

// ContactForm carries the contact page form fields.
type ContactForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// NewsletterUsecase handles newsletter signups.
type NewsletterUsecase interface {
	// Subscribe stores the email (normalized) and reports whether a new
	// subscription was created. Re-subscribing is a no-op, not an error.
	Subscribe(ctx context.Context, email string) (bool, error)
}

// ContactUsecase handles contact form submissions.
type ContactUsecase interface {
	// SubmitMessage stores a contact message.
	SubmitMessage(ctx context.Context, form ContactForm) error
}
