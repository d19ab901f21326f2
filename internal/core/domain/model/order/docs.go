// Package order provides the maintenance-order aggregate and its owned child
// entities. It implements the order lifecycle state machine and the
// cross-entity consistency rules that gate child-document postings.
//
// The package includes:
//   - Order: the aggregate root owning operations, components, purchase
//     orders, goods movements, confirmations, malfunction reports, and one
//     cost summary
//   - Status: the six-state workflow (Created → Planned → Released →
//     InProgress → Confirmed → TECO) with a closed, strictly forward
//     transition table
//   - CostSummary: per-order estimated/actual cost by element with
//     incrementally maintained variance
//
// Key business rules:
//   - Order numbers are immutable and namespaced (MO-/BD-)
//   - Operations may only be added or edited in Created or Planned status
//   - A child purchase order's parent reference is fixed at attach time
//   - A confirmation for a component-consuming operation requires a prior
//     goods issue for that component
//   - Breakdown orders require a malfunction report before TECO
//   - TECO is terminal; orders are never deleted
//
// The package follows Domain-Driven Design principles: private fields,
// constructor validation, and state changes only through aggregate methods.
package order
