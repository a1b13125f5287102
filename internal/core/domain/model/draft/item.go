package draft

import (
	"errors"
	"fmt"

	"maitred/internal/core/domain/model/catalog"
	"maitred/internal/core/domain/model/kernel"
	"maitred/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through one of the item factory methods.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewPendingItem, NewStandaloneItem or RestoreItem")

	// ErrItemHasNoDinner is returned when a dinner-only operation is applied
	// to a standalone add-on line.
	ErrItemHasNoDinner = errors.New("item has no dinner")
)

// Item is one in-progress order line.
//
// A dinner line starts pending (quantity 0, no style) and is completed by
// subsequent style and quantity turns. A standalone line carries a menu item
// only and is never pending. Prices obey a single invariant after every
// mutation:
//
//	unitPrice  == basePrice + styleExtra + customizationDelta
//	totalPrice == unitPrice × quantity + attached add-on subtotal
//
// Attachments are billed per line, not per unit, so the add-on subtotal is
// not multiplied by the line quantity. unitPrice is never assigned
// independently; every mutation goes through recompute.
type Item struct {
	dinnerID   *kernel.UUID
	dinnerName string

	styleID    *kernel.UUID
	styleName  string
	styleExtra int

	// menuItemID is set on standalone add-on lines only
	menuItemID *kernel.UUID

	quantity int

	basePrice          int
	customizationDelta int
	unitPrice          int
	totalPrice         int

	// itemIndex is the 1-based display ordinal within the draft
	itemIndex int

	// componentQuantities holds per-component quantity overrides (name -> quantity)
	componentQuantities map[string]int

	// excluded lists component names removed from the dinner
	excluded []string

	addOns []AddOn

	isConstructed bool
}

// NewPendingItem creates a quantity-0 dinner line awaiting style and quantity.
// The line starts at the dinner's base price with its default components.
func NewPendingItem(dinner *catalog.Dinner, itemIndex int) (*Item, error) {
	if err := dinner.Validate(); err != nil {
		return nil, err
	}

	id := dinner.ID()
	item := &Item{
		dinnerID:            &id,
		dinnerName:          dinner.Name(),
		basePrice:           dinner.BasePrice(),
		itemIndex:           itemIndex,
		componentQuantities: map[string]int{},
		isConstructed:       true,
	}
	item.recompute()
	return item, nil
}

// NewStandaloneItem creates an add-on line with no dinner or style, priced
// at the menu item's catalog unit price.
func NewStandaloneItem(menuItem *catalog.MenuItem, quantity, itemIndex int) (*Item, error) {
	if err := menuItem.Validate(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxQuantity)
	}

	id := menuItem.ID()
	item := &Item{
		menuItemID:          &id,
		dinnerName:          menuItem.Name(),
		basePrice:           menuItem.UnitPrice(),
		quantity:            quantity,
		itemIndex:           itemIndex,
		componentQuantities: map[string]int{},
		isConstructed:       true,
	}
	item.recompute()
	return item, nil
}

// maxQuantity bounds a single line's quantity.
const maxQuantity = 99

// RestoreItemParams carries a previously assembled line across requests.
// Prices are carried verbatim: the customization delta is derived from the
// stored unit price rather than recomputed from the catalog, so earlier
// turns' adjustments survive even if the catalog changed in between.
type RestoreItemParams struct {
	DinnerID   *kernel.UUID
	DinnerName string
	StyleID    *kernel.UUID
	StyleName  string
	StyleExtra int
	MenuItemID *kernel.UUID
	Quantity   int
	BasePrice  int
	UnitPrice  int
	ItemIndex  int
	Components map[string]int
	Excluded   []string
	AddOns     []AddOn
}

// RestoreItem rebuilds a draft line from request state.
func RestoreItem(params RestoreItemParams) (*Item, error) {
	if params.DinnerID == nil && params.MenuItemID == nil {
		return nil, errs.NewValueIsRequiredError("dinnerID or menuItemID")
	}
	if params.Quantity < 0 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", params.Quantity, 0, maxQuantity)
	}

	components := params.Components
	if components == nil {
		components = map[string]int{}
	}

	item := &Item{
		dinnerID:            params.DinnerID,
		dinnerName:          params.DinnerName,
		styleID:             params.StyleID,
		styleName:           params.StyleName,
		styleExtra:          params.StyleExtra,
		menuItemID:          params.MenuItemID,
		quantity:            params.Quantity,
		basePrice:           params.BasePrice,
		customizationDelta:  params.UnitPrice - params.BasePrice - params.StyleExtra,
		itemIndex:           params.ItemIndex,
		componentQuantities: components,
		excluded:            params.Excluded,
		addOns:              params.AddOns,
		isConstructed:       true,
	}
	item.recompute()
	return item, nil
}

// Validate ensures the Item was created through a factory method.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// DinnerID returns the dinner catalog id, or nil for standalone lines.
func (i *Item) DinnerID() *kernel.UUID {
	return i.dinnerID
}

// DinnerName returns the display name of the line.
func (i *Item) DinnerName() string {
	return i.dinnerName
}

// StyleID returns the chosen style's catalog id, or nil while unchosen.
func (i *Item) StyleID() *kernel.UUID {
	return i.styleID
}

// StyleName returns the chosen style's name, empty while unchosen.
func (i *Item) StyleName() string {
	return i.styleName
}

// StyleExtra returns the chosen style's surcharge.
func (i *Item) StyleExtra() int {
	return i.styleExtra
}

// MenuItemID returns the catalog id for standalone lines, nil otherwise.
func (i *Item) MenuItemID() *kernel.UUID {
	return i.menuItemID
}

// Quantity returns the confirmed quantity; 0 means pending.
func (i *Item) Quantity() int {
	return i.quantity
}

// BasePrice returns the catalog price before style and customization.
func (i *Item) BasePrice() int {
	return i.basePrice
}

// UnitPrice returns basePrice + styleExtra + customization delta.
func (i *Item) UnitPrice() int {
	return i.unitPrice
}

// TotalPrice returns unitPrice × quantity plus the attached add-ons.
func (i *Item) TotalPrice() int {
	return i.totalPrice
}

// CustomizationDelta returns the accumulated price adjustment from
// component changes and exclusions.
func (i *Item) CustomizationDelta() int {
	return i.customizationDelta
}

// ItemIndex returns the 1-based display ordinal.
func (i *Item) ItemIndex() int {
	return i.itemIndex
}

// SetItemIndex assigns the display ordinal. Used when reindexing a draft.
func (i *Item) SetItemIndex(index int) {
	i.itemIndex = index
}

// IsStandalone reports whether the line is an add-on with no dinner.
func (i *Item) IsStandalone() bool {
	return i.dinnerID == nil
}

// IsPending reports whether the line still awaits style or quantity.
// Standalone lines are never pending.
func (i *Item) IsPending() bool {
	if i.IsStandalone() {
		return false
	}
	return i.quantity == 0 || i.styleID == nil
}

// ApplyStyle sets the serving style. Any previously applied style's extra
// is discarded entirely, so applying styles in sequence never stacks
// surcharges. Customization deltas are preserved.
func (i *Item) ApplyStyle(style *catalog.Style) error {
	if i.IsStandalone() {
		return ErrItemHasNoDinner
	}
	if err := style.Validate(); err != nil {
		return err
	}

	id := style.ID()
	i.styleID = &id
	i.styleName = style.Name()
	i.styleExtra = style.ExtraPrice()
	i.recompute()
	return nil
}

// ChangeStyle replaces the current style. Semantically identical to
// ApplyStyle; kept as a separate name for call sites editing a confirmed line.
func (i *Item) ChangeStyle(style *catalog.Style) error {
	return i.ApplyStyle(style)
}

// SetQuantity confirms the line quantity and recomputes the total.
func (i *Item) SetQuantity(quantity int) error {
	if quantity < 0 || quantity > maxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, maxQuantity)
	}
	i.quantity = quantity
	i.recompute()
	return nil
}

// ComponentQuantity returns the current quantity of a component: the
// override if one was made, otherwise the given default.
func (i *Item) ComponentQuantity(name string, defaultQuantity int) int {
	if q, ok := i.componentQuantities[name]; ok {
		return q
	}
	return defaultQuantity
}

// ComponentOverrides returns the per-component quantity overrides.
func (i *Item) ComponentOverrides() map[string]int {
	return i.componentQuantities
}

// SetComponentQuantity changes a component's quantity. The unit price moves
// by (newQuantity - currentQuantity) × component unit price, where the
// current quantity is the prior override or the catalog default.
func (i *Item) SetComponentQuantity(component catalog.Component, quantity int) error {
	if i.IsStandalone() {
		return ErrItemHasNoDinner
	}
	if err := component.Validate(); err != nil {
		return err
	}
	if quantity < 0 || quantity > maxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, maxQuantity)
	}

	current := i.ComponentQuantity(component.Name(), component.DefaultQuantity())
	i.customizationDelta += (quantity - current) * component.UnitPrice()
	i.componentQuantities[component.Name()] = quantity
	i.recompute()
	return nil
}

// IsExcluded reports whether the component was removed from the line.
func (i *Item) IsExcluded(name string) bool {
	for _, ex := range i.excluded {
		if ex == name {
			return true
		}
	}
	return false
}

// ExcludedComponents returns the names of removed components.
func (i *Item) ExcludedComponents() []string {
	return i.excluded
}

// ExcludeComponent removes a component from the line, subtracting
// defaultQuantity × component unit price. Excluding an already excluded
// component is a no-op.
func (i *Item) ExcludeComponent(component catalog.Component) error {
	if i.IsStandalone() {
		return ErrItemHasNoDinner
	}
	if err := component.Validate(); err != nil {
		return err
	}
	if i.IsExcluded(component.Name()) {
		return nil
	}

	i.excluded = append(i.excluded, component.Name())
	i.customizationDelta -= component.DefaultQuantity() * component.UnitPrice()
	i.recompute()
	return nil
}

// IncludeComponent cancels a previous exclusion, restoring the price
// subtracted by ExcludeComponent. Including a non-excluded component is
// a no-op.
func (i *Item) IncludeComponent(component catalog.Component) error {
	if i.IsStandalone() {
		return ErrItemHasNoDinner
	}
	if err := component.Validate(); err != nil {
		return err
	}
	if !i.IsExcluded(component.Name()) {
		return nil
	}

	kept := make([]string, 0, len(i.excluded)-1)
	for _, ex := range i.excluded {
		if ex != component.Name() {
			kept = append(kept, ex)
		}
	}
	i.excluded = kept
	i.customizationDelta += component.DefaultQuantity() * component.UnitPrice()
	i.recompute()
	return nil
}

// AddOns returns the add-on attachments of the line.
func (i *Item) AddOns() []AddOn {
	return i.addOns
}

// AddOrMergeAddOn attaches an add-on to the line. If an attachment with the
// same catalog id already exists its quantity is increased instead of
// appending a duplicate. The line total picks up the attachment immediately.
func (i *Item) AddOrMergeAddOn(addOn AddOn) error {
	if err := addOn.Validate(); err != nil {
		return err
	}

	for idx, existing := range i.addOns {
		if existing.MenuItemID().IsEqual(addOn.MenuItemID()) {
			merged, err := existing.WithQuantity(existing.Quantity() + addOn.Quantity())
			if err != nil {
				return err
			}
			i.addOns[idx] = merged
			i.recompute()
			return nil
		}
	}
	i.addOns = append(i.addOns, addOn)
	i.recompute()
	return nil
}

// Clone returns a deep copy of the line.
func (i *Item) Clone() *Item {
	components := make(map[string]int, len(i.componentQuantities))
	for name, q := range i.componentQuantities {
		components[name] = q
	}

	clone := &Item{
		dinnerID:            i.dinnerID,
		dinnerName:          i.dinnerName,
		styleID:             i.styleID,
		styleName:           i.styleName,
		styleExtra:          i.styleExtra,
		menuItemID:          i.menuItemID,
		quantity:            i.quantity,
		basePrice:           i.basePrice,
		customizationDelta:  i.customizationDelta,
		itemIndex:           i.itemIndex,
		componentQuantities: components,
		excluded:            append([]string(nil), i.excluded...),
		addOns:              append([]AddOn(nil), i.addOns...),
		isConstructed:       true,
	}
	clone.recompute()
	return clone
}

// String renders the line for logs.
func (i *Item) String() string {
	return fmt.Sprintf("%s x%d (%d KRW)", i.dinnerName, i.quantity, i.totalPrice)
}

func (i *Item) recompute() {
	i.unitPrice = i.basePrice + i.styleExtra + i.customizationDelta
	i.totalPrice = i.unitPrice*i.quantity + i.addOnsSubtotal()
}

func (i *Item) addOnsSubtotal() int {
	subtotal := 0
	for _, addOn := range i.addOns {
		subtotal += addOn.UnitPrice() * addOn.Quantity()
	}
	return subtotal
}
