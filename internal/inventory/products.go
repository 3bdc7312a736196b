package inventory

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/ridoy/smartstock/internal/model"
	"github.com/ridoy/smartstock/internal/store"
)

// CreateProduct adds a product with zero stock.
func CreateProduct(ctx context.Context, db *sql.DB, name string) (*model.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Reason: "name is required"}
	}
	return store.CreateProduct(ctx, db, name)
}

// RenameProduct changes a product's name.
func RenameProduct(ctx context.Context, db *sql.DB, id, name string) (*model.Product, error) {
	if err := checkProductID(id); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Reason: "name is required"}
	}

	p, err := store.GetProduct(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &NotFoundError{ID: id}
	}

	if err := store.RenameProduct(ctx, db, id, name); err != nil {
		return nil, err
	}
	p.Name = name
	return p, nil
}

// DeleteProduct removes a product together with every transaction that
// references it. Log entries are left behind as a historical record and
// expire on their own.
func DeleteProduct(ctx context.Context, db *sql.DB, id string) error {
	if err := checkProductID(id); err != nil {
		return err
	}

	p, err := store.GetProduct(ctx, db, id)
	if err != nil {
		return err
	}
	if p == nil {
		return &NotFoundError{ID: id}
	}

	return store.DeleteProduct(ctx, db, id)
}

// checkProductID rejects ids that are not well-formed UUIDs.
func checkProductID(id string) error {
	if id == "" {
		return &ValidationError{Reason: "product id is required"}
	}
	if _, err := uuid.Parse(id); err != nil {
		return &ValidationError{Reason: "invalid product id"}
	}
	return nil
}
