package sqlite

import (
	"context"

	"herbaciarnia/internal/domain/entity"
	"herbaciarnia/internal/domain/repository"
	"herbaciarnia/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// newsletterRepository implements the repository.NewsletterRepository interface.
type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository is the constructor for newsletterRepository.
func NewNewsletterRepository(db *gorm.DB) repository.NewsletterRepository {
	return &newsletterRepository{
		db: db,
	}
}

// Subscribe stores the subscription unless the email is already present.
func (repo *newsletterRepository) Subscribe(ctx context.Context, subscription *entity.NewsletterSubscription) (bool, error) {
	subscriptionM := &model.NewsletterSubscriptionModel{
		ID:        subscription.ID,
		Email:     subscription.Email,
		CreatedAt: subscription.CreatedAt,
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(subscriptionM)
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to create newsletter subscription")
	}

	return result.RowsAffected > 0, nil
}

// CountSubscriptions returns the total number of subscribed emails.
func (repo *newsletterRepository) CountSubscriptions(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NewsletterSubscriptionModel{}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count newsletter subscriptions")
	}

	return count, nil
}

// contactRepository implements the repository.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// SaveMessage stores a submitted contact message.
func (repo *contactRepository) SaveMessage(ctx context.Context, message *entity.ContactMessage) error {
	messageM := &model.ContactMessageModel{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return errors.Wrap(err, "failed to save contact message")
	}

	return nil
}
