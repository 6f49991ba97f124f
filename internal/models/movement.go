package models

import "time"

type Movement struct {
	ID        int       `json:"id"`
	OwnerID   string    `json:"-"`
	ProductID string    `json:"product_id"`
	Delta     int       `json:"delta"`
	CreatedAt time.Time `json:"created_at"`
}
