package impl

import (
	"context"
	"testing"

	"herbaciarnia/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewsletterService_Subscribe_NormalizesEmail(t *testing.T) {
	repo := &memNewsletterRepo{}
	service := NewNewsletterService(NewsletterServiceParams{NewsletterRepo: repo})

	created, err := service.Subscribe(context.Background(), "  Jan.Kowalski@Example.COM ")
	require.NoError(t, err)

	assert.True(t, created)
	require.Len(t, repo.emails, 1)
	assert.Equal(t, "jan.kowalski@example.com", repo.emails[0])
}

func TestNewsletterService_Subscribe_ExistingEmailIsNoop(t *testing.T) {
	repo := &memNewsletterRepo{}
	service := NewNewsletterService(NewsletterServiceParams{NewsletterRepo: repo})
	ctx := context.Background()

	created, err := service.Subscribe(ctx, "jan@example.com")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = service.Subscribe(ctx, "JAN@example.com")
	require.NoError(t, err)
	assert.False(t, created, "re-subscribing must not report a new subscription")
	assert.Len(t, repo.emails, 1)
}

func TestContactService_SubmitMessage(t *testing.T) {
	repo := &memContactRepo{}
	service := NewContactService(ContactServiceParams{ContactRepo: repo})

	err := service.SubmitMessage(context.Background(), usecase.ContactForm{
		Name:    "Jan Kowalski",
		Email:   " jan@example.com ",
		Subject: "Zamówienie",
		Message: "Kiedy dotrze moja herbata?",
	})
	require.NoError(t, err)

	require.Len(t, repo.messages, 1)
	message := repo.messages[0]
	assert.Equal(t, "Jan Kowalski", message.Name)
	assert.Equal(t, "jan@example.com", message.Email, "email must be trimmed")
	assert.Equal(t, "Zamówienie", message.Subject)
	assert.NotZero(t, message.ID)
	assert.False(t, message.CreatedAt.IsZero())
}
