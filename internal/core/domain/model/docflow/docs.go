// Package docflow contains the document-flow ledger model: the append-only
// audit trail of every document posted against a maintenance order. Entries
// are immutable value objects; the ledger is never updated or compacted, and
// querying it never changes it.
package docflow
