package model

import "time"

// Product represents a tracked inventory item. TotalStock is the
// authoritative current stock count and is only ever changed by
// recording a transaction.
type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	TotalStock int       `json:"totalStock"`
	CreatedAt  time.Time `json:"createdAt"`
}
