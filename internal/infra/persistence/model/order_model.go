// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key"`
	Number         string           `gorm:"not null;uniqueIndex"`
	Email          string           `gorm:"not null;index"`
	Phone          string           `gorm:"not null"`
	FirstName      string           `gorm:"not null"`
	LastName       string           `gorm:"not null"`
	Address        string           `gorm:"not null"`
	City           string           `gorm:"not null"`
	PostalCode     string           `gorm:"not null"`
	DeliveryMethod string           `gorm:"not null"`
	PaymentMethod  string           `gorm:"not null"`
	ItemsPrice     float64          `gorm:"not null"`
	DeliveryPrice  float64          `gorm:"not null"`
	TotalPrice     float64          `gorm:"not null"`
	Status         string           `gorm:"not null;default:pending;index"`
	Lines          []OrderLineModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderLineModel is the GORM-specific struct for the 'order_lines' table.
type OrderLineModel struct {
	ID        uint      `gorm:"primary_key;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID int       `gorm:"not null"`
	Name      string    `gorm:"not null"`
	UnitPrice float64   `gorm:"not null"`
	Quantity  int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderLineModel) TableName() string {
	return "order_lines"
}
