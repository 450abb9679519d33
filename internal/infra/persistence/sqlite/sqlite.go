// Package sqlite contains the concrete implementation of the back-office
// persistence layer (orders, newsletter, contact) using GORM and SQLite.
package sqlite

import (
	"log/slog"

	"herbaciarnia/config"
	"herbaciarnia/internal/errors"
	"herbaciarnia/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New opens the SQLite database and migrates the back-office schema.
func New(params Params) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(params.Config.Database.Path), &gorm.Config{
		Logger: newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open SQLite database %s", params.Config.Database.Path)
	}

	if err := db.AutoMigrate(
		&model.OrderModel{},
		&model.OrderLineModel{},
		&model.NewsletterSubscriptionModel{},
		&model.ContactMessageModel{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database schema")
	}

	return db, nil
}
