package cartrepo

import (
	"context"
	"errors"

	"maitred/internal/core/domain/model/draft"
	"maitred/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Upsert writes the cart for its session, replacing any previous snapshot.
func (r *GormCartRepository) Upsert(ctx context.Context, cart *draft.Cart) error {
	if err := cart.Validate(); err != nil {
		return err
	}

	dto := fromDomain(cart)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		UpdateAll: true,
	}).Create(&dto).Error
}

// Get retrieves the cart for a session.
func (r *GormCartRepository) Get(ctx context.Context, sessionID string) (*draft.Cart, error) {
	if sessionID == "" {
		return nil, errs.NewValueIsRequiredError("sessionID")
	}

	var dto CartDTO
	if err := r.db.WithContext(ctx).First(&dto, "session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", sessionID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the cart for a session. Deleting an absent cart is not
// an error.
func (r *GormCartRepository) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}

	return r.db.WithContext(ctx).Delete(&CartDTO{}, "session_id = ?", sessionID).Error
}
