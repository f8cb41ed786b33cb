// Package order provides domain entities and business logic for reservation
// order management in the venue-booking system. It implements the Order
// aggregate root with lifecycle management and review-state transitions.
//
// The package includes:
//   - Order: The aggregate root managing order identity, cost and lifecycle
//   - Status: A state machine over the review workflow
//
// Key business rules:
//   - Orders must have a positive duration, a future start time and an owner
//   - The total cost is hours × the venue's hourly price, recomputed on every
//     submission and re-submission
//   - Every new or edited order enters NoAudit and requires review
//   - Review verdicts (Wait, Finish, Reject) are independent; no ordering
//     between them is enforced
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
