// Package order provides domain entities and business logic for paid-content
// purchases in the vidstore system. It implements the Order aggregate root
// with lifecycle management, per-line price allocation, and partial-refund
// apportionment.
//
// The package includes:
//   - Order: The aggregate root owning the state machine and the refund math
//   - Line: One purchased video with its own cancellable sub-state
//   - Status: A state machine that enforces valid lifecycle transitions
//   - Refund: The value object carrying a cancellation's cash and reward result
//
// Key business rules:
//   - The cash portion of a purchase is the item total minus the reward applied,
//     and may never be negative
//   - Nothing is refundable until the payment is confirmed; completion makes the
//     full purchase refundable
//   - Cancellation refunds cash before reward and never exceeds a line's price
//   - Refund-to-reward conversion drains the reward remainder before the cash
//     remainder (the inverse of cancellation)
//   - Money is conserved: every unit leaving the order's remainders shows up in
//     the member's reward balance or in the operation's Refund result
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
