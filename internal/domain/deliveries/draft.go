package deliveries

import (
	"postavka/internal/core/apperror"
	"postavka/internal/core/id"
	"postavka/internal/core/types"
)

// DraftItem is one uncommitted line: product and quantity only.
// Prices belong to committed deliveries and are never carried in a draft.
type DraftItem struct {
	ProductID id.ID
	Quantity  types.Quantity
}

// Draft is the mutable staging area for composing or editing a Delivery
// before it is committed. A draft is owned by a single interaction; it is
// not safe for concurrent use.
type Draft struct {
	supplierID id.ID
	date       types.Date
	items      []DraftItem
}

// NewDraft creates an empty draft.
func NewDraft() *Draft {
	return &Draft{items: make([]DraftItem, 0)}
}

// DraftFromDelivery initializes a draft for editing an existing delivery.
// Supplier, date and item quantities are copied; stored prices are not,
// they are re-resolved on the next commit.
func DraftFromDelivery(d *Delivery) *Draft {
	items := make([]DraftItem, 0, len(d.Items))
	for _, item := range d.Items {
		items = append(items, DraftItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return &Draft{
		supplierID: d.SupplierID,
		date:       d.Date,
		items:      items,
	}
}

// SetSupplier replaces the draft's supplier.
func (d *Draft) SetSupplier(supplierID id.ID) {
	d.supplierID = supplierID
}

// SetDate replaces the draft's date.
func (d *Draft) SetDate(date types.Date) {
	d.date = date
}

// AddItem appends a line item. The same product may appear multiple times
// as distinct lines; repeated products are not merged.
func (d *Draft) AddItem(productID id.ID, quantity types.Quantity) error {
	if !quantity.IsPositive() {
		return apperror.NewValidation("quantity must be positive").
			WithDetail("field", "quantity").
			WithDetail("value", quantity.String())
	}
	d.items = append(d.items, DraftItem{ProductID: productID, Quantity: quantity})
	return nil
}

// RemoveItem removes the line at the given position.
func (d *Draft) RemoveItem(index int) error {
	if index < 0 || index >= len(d.items) {
		return apperror.NewValidation("item index out of range").
			WithDetail("index", index).
			WithDetail("itemCount", len(d.items))
	}
	d.items = append(d.items[:index], d.items[index+1:]...)
	return nil
}

// ItemCount returns the number of lines in the draft.
func (d *Draft) ItemCount() int {
	return len(d.items)
}

// Snapshot returns an immutable copy of the draft for commit.
type Snapshot struct {
	SupplierID id.ID
	Date       types.Date
	Items      []DraftItem
}

// Snapshot copies the draft state; later draft edits do not affect it.
func (d *Draft) Snapshot() Snapshot {
	items := make([]DraftItem, len(d.items))
	copy(items, d.items)
	return Snapshot{
		SupplierID: d.supplierID,
		Date:       d.date,
		Items:      items,
	}
}
