package draft

// Functions over a whole draft (the ordered list of lines belonging to one
// conversation turn).

// TotalOrderPrice sums every line's total, attachments included. Pending
// lines have quantity 0 and contribute only their attached add-ons.
func TotalOrderPrice(items []*Item) int {
	total := 0
	for _, item := range items {
		total += item.TotalPrice()
	}
	return total
}

// FindPending locates the line the conversation is still completing.
// Quantity-0 dinner lines take priority over styled-but-unstyled ones;
// standalone add-on lines are never pending.
func FindPending(items []*Item) (*Item, bool) {
	for _, item := range items {
		if !item.IsStandalone() && item.Quantity() == 0 {
			return item, true
		}
	}
	for _, item := range items {
		if !item.IsStandalone() && item.StyleID() == nil {
			return item, true
		}
	}
	return nil, false
}

// FindByOrdinal returns the line with the given 1-based display ordinal.
func FindByOrdinal(items []*Item, ordinal int) (*Item, bool) {
	for _, item := range items {
		if item.ItemIndex() == ordinal {
			return item, true
		}
	}
	return nil, false
}

// Reindex assigns sequential display ordinals starting at 1.
func Reindex(items []*Item) {
	for idx, item := range items {
		item.SetItemIndex(idx + 1)
	}
}

// Explode expands a multi-quantity line into quantity-1 unit lines so each
// can be customized independently. A line with quantity below 2 is returned
// unchanged as a single-element slice. Attachments are billed per line, not
// per unit, so only the first unit keeps them. Callers reindex afterwards.
func Explode(item *Item) []*Item {
	if item.Quantity() < 2 {
		return []*Item{item}
	}

	units := make([]*Item, 0, item.Quantity())
	for range item.Quantity() {
		unit := item.Clone()
		if len(units) > 0 {
			unit.addOns = nil
		}
		_ = unit.SetQuantity(1)
		units = append(units, unit)
	}
	return units
}

// StripPending returns the draft without lines still awaiting style or
// quantity. Used by the checkout gate.
func StripPending(items []*Item) []*Item {
	kept := make([]*Item, 0, len(items))
	for _, item := range items {
		if !item.IsPending() {
			kept = append(kept, item)
		}
	}
	return kept
}

// MergeStandalone adds a standalone add-on line to the draft, accumulating
// quantity onto an existing line with the same catalog id instead of
// appending a duplicate. Returns the updated draft.
func MergeStandalone(items []*Item, addition *Item) ([]*Item, error) {
	if addition.MenuItemID() == nil {
		return append(items, addition), nil
	}

	for _, existing := range items {
		if existing.MenuItemID() != nil && existing.MenuItemID().IsEqual(*addition.MenuItemID()) {
			if err := existing.SetQuantity(existing.Quantity() + addition.Quantity()); err != nil {
				return items, err
			}
			return items, nil
		}
	}
	return append(items, addition), nil
}
