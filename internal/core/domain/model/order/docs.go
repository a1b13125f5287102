// Package order provides domain entities and business logic for placed
// dinner orders. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root checkout produces, holding the reconciled rows
//   - Line: One persisted order row with its price carried verbatim
//   - Status: A state machine that enforces valid fulfillment transitions
//
// Key business rules:
//   - Orders must have a valid identifier, an address and at least one line
//   - The grand total always equals the sum of the line totals
//   - Dinner rows are unit rows; extras keep their quantity on one row
//   - Status follows a defined workflow: Placed -> Accepted -> Delivered,
//     with cancellation possible only before acceptance
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
