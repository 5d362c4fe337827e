package model

import (
	"time"
)

// Product represents one catalog item backed by a row in the products table.
// Image holds the generated filename of the stored image blob, never a full path.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Image       string
	UpdatedAt   time.Time
	CreatedAt   time.Time
}

// InitMeta initializes the product timestamps. The ID is assigned by the
// database on insert.
func (p *Product) InitMeta() {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
}

// Touch refreshes the updated-at timestamp before an update is persisted.
func (p *Product) Touch() {
	p.UpdatedAt = time.Now()
}
