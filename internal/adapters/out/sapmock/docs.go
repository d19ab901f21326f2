// Package sapmock provides deterministic in-memory stand-ins for the plant
// systems the engine integrates with: materials management, the permit
// registry, the workforce directory, and financial accounting. They back
// local development and tests; production deployments swap in real gateways
// behind the same ports.
//
// All implementations are safe for concurrent use and answer from seeded
// state, never from randomness — the same setup always yields the same
// release decision.
package sapmock
