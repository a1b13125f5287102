// Package draft models the in-progress order being assembled across a
// conversation: its line items, their prices, and the mutations the
// conversation applies to them.
//
// A draft belongs exclusively to one conversation turn's context; it is
// supplied by the caller with each request and returned mutated. Every
// mutation preserves two invariants on each line:
//
//	unitPrice  == basePrice + styleExtra + customizationDelta
//	totalPrice == unitPrice × quantity + attached add-on subtotal
//
// so the displayed order total is always Σ totalPrice. Pending (quantity-0)
// lines contribute only their attachments, which are billed per line, not
// per unit.
package draft
