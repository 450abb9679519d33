package sqlite

import (
	"context"
	"testing"
	"time"

	"herbaciarnia/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subscriptionFixture(email string) *entity.NewsletterSubscription {
	return &entity.NewsletterSubscription{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: time.Now(),
	}
}

func TestNewsletterRepository_Subscribe(t *testing.T) {
	repo := NewNewsletterRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Subscribe(ctx, subscriptionFixture("jan@example.com"))
	require.NoError(t, err)
	assert.True(t, created)

	count, err := repo.CountSubscriptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNewsletterRepository_Subscribe_DuplicateEmailIsNoop(t *testing.T) {
	repo := NewNewsletterRepository(newTestDB(t))
	ctx := context.Background()

	created, err := repo.Subscribe(ctx, subscriptionFixture("jan@example.com"))
	require.NoError(t, err)
	require.True(t, created)

	created, err = repo.Subscribe(ctx, subscriptionFixture("jan@example.com"))
	require.NoError(t, err)
	assert.False(t, created, "a duplicate email must not create a second row")

	count, err := repo.CountSubscriptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestContactRepository_SaveMessage(t *testing.T) {
	db := newTestDB(t)
	repo := NewContactRepository(db)
	ctx := context.Background()

	message := &entity.ContactMessage{
		ID:        uuid.New(),
		Name:      "Jan Kowalski",
		Email:     "jan@example.com",
		Subject:   "Zamówienie",
		Message:   "Kiedy dotrze moja herbata?",
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.SaveMessage(ctx, message))

	var count int64
	require.NoError(t, db.Table("contact_messages").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
