// Package services provides domain services that orchestrate business
// operations across multiple domain entities of the maintenance system. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - ReadinessChecker: pure prerequisite evaluation for workflow transitions
//   - BreakdownPolicy: the accelerated rules of emergency breakdown orders
//   - CostEngine: cost estimation, actual-cost accumulation, and settlement
//   - TransitionService: the guarded state machine over maintenance orders
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
