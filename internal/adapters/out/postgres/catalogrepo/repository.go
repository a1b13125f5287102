package catalogrepo

import (
	"context"
	"errors"

	"maitred/internal/core/domain/model/catalog"
	"maitred/internal/core/domain/model/kernel"
	"maitred/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// GetAllDinners retrieves every dinner, active or not.
func (r *GormCatalogRepository) GetAllDinners(ctx context.Context) ([]*catalog.Dinner, error) {
	var dtos []DinnerDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	dinners := make([]*catalog.Dinner, 0, len(dtos))
	for _, dto := range dtos {
		dinner, err := dinnerToDomain(dto)
		if err != nil {
			return nil, err
		}
		dinners = append(dinners, dinner)
	}
	return dinners, nil
}

// GetAllStyles retrieves every serving style.
func (r *GormCatalogRepository) GetAllStyles(ctx context.Context) ([]*catalog.Style, error) {
	var dtos []StyleDTO
	if err := r.db.WithContext(ctx).Order("extra_price").Find(&dtos).Error; err != nil {
		return nil, err
	}

	styles := make([]*catalog.Style, 0, len(dtos))
	for _, dto := range dtos {
		style, err := styleToDomain(dto)
		if err != nil {
			return nil, err
		}
		styles = append(styles, style)
	}
	return styles, nil
}

// GetAllMenuItems retrieves every standalone menu item.
func (r *GormCatalogRepository) GetAllMenuItems(ctx context.Context) ([]*catalog.MenuItem, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	menuItems := make([]*catalog.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		menuItem, err := menuItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		menuItems = append(menuItems, menuItem)
	}
	return menuItems, nil
}

// GetDinner retrieves one dinner by its identifier.
func (r *GormCatalogRepository) GetDinner(ctx context.Context, id kernel.UUID) (*catalog.Dinner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DinnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dinner", id.String())
		}
		return nil, err
	}
	return dinnerToDomain(dto)
}

// GetStyle retrieves one style by its identifier.
func (r *GormCatalogRepository) GetStyle(ctx context.Context, id kernel.UUID) (*catalog.Style, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StyleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("style", id.String())
		}
		return nil, err
	}
	return styleToDomain(dto)
}

// GetMenuItem retrieves one menu item by its identifier.
func (r *GormCatalogRepository) GetMenuItem(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menu item", id.String())
		}
		return nil, err
	}
	return menuItemToDomain(dto)
}

// Seed writes the given catalog entries, updating rows that already
// exist by name. Used at boot to populate an empty database.
func (r *GormCatalogRepository) Seed(
	ctx context.Context,
	dinners []*catalog.Dinner,
	styles []*catalog.Style,
	menuItems []*catalog.MenuItem,
) error {
	upsertByName := clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		UpdateAll: true,
	}

	db := r.db.WithContext(ctx)
	for _, dinner := range dinners {
		dto := dinnerFromDomain(dinner)
		if err := db.Clauses(upsertByName).Create(&dto).Error; err != nil {
			return err
		}
	}
	for _, style := range styles {
		dto := styleFromDomain(style)
		if err := db.Clauses(upsertByName).Create(&dto).Error; err != nil {
			return err
		}
	}
	for _, menuItem := range menuItems {
		dto := menuItemFromDomain(menuItem)
		if err := db.Clauses(upsertByName).Create(&dto).Error; err != nil {
			return err
		}
	}
	return nil
}
