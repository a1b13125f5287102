package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMenuQueryHandler retrieves the browsable menu from the database.
// Only active dinners, active styles and orderable extra items are
// returned; hidden catalog entries stay out of the listing.
type GetMenuQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetMenuQueryHandler(db *gorm.DB) GetMenuQueryHandler {
	return GetMenuQueryHandler{db: db}
}

// Handle executes the query to retrieve the menu listing.
func (h GetMenuQueryHandler) Handle(
	ctx context.Context,
	query GetMenuQuery,
) (GetMenuQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	var response GetMenuQueryResponse

	dinnerRows, err := h.db.WithContext(ctx).Raw(`
		SELECT name, local_name, base_price
		FROM dinners
		WHERE active
		ORDER BY base_price
	`).Rows()
	if err != nil {
		return GetMenuQueryResponse{}, err
	}
	defer dinnerRows.Close()

	for dinnerRows.Next() {
		var dinner MenuDinnerResponse
		if err := dinnerRows.Scan(&dinner.Name, &dinner.LocalName, &dinner.BasePrice); err != nil {
			return GetMenuQueryResponse{}, err
		}
		response.Dinners = append(response.Dinners, dinner)
	}
	if err := dinnerRows.Err(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	styleRows, err := h.db.WithContext(ctx).Raw(`
		SELECT name, local_name, extra_price
		FROM styles
		WHERE active
		ORDER BY extra_price
	`).Rows()
	if err != nil {
		return GetMenuQueryResponse{}, err
	}
	defer styleRows.Close()

	for styleRows.Next() {
		var style MenuStyleResponse
		if err := styleRows.Scan(&style.Name, &style.LocalName, &style.ExtraPrice); err != nil {
			return GetMenuQueryResponse{}, err
		}
		response.Styles = append(response.Styles, style)
	}
	if err := styleRows.Err(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT name, local_name, category, unit_price
		FROM menu_items
		WHERE orderable
		ORDER BY name
	`).Rows()
	if err != nil {
		return GetMenuQueryResponse{}, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item MenuItemResponse
		if err := itemRows.Scan(&item.Name, &item.LocalName, &item.Category, &item.UnitPrice); err != nil {
			return GetMenuQueryResponse{}, err
		}
		response.ExtraItems = append(response.ExtraItems, item)
	}
	if err := itemRows.Err(); err != nil {
		return GetMenuQueryResponse{}, err
	}

	return response, nil
}
