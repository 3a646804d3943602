// Package catalog holds the celestial-body catalog domain: the record type,
// the read-only store contract and the Repository that classifies lookups.
//
// # Lookup Outcomes
//
// Repository.Lookup distinguishes three outcomes:
//
//   - a record: exactly one match for the id
//   - ErrNotFound: the id matches nothing, a normal outcome
//   - ErrStoreUnavailable: the store could not be reached or failed the query
//
// Callers match on these with errors.Is. Store faults are carried as
// *StoreError values naming the backend and operation.
//
// # Seeding
//
// The service never writes to the catalog. Records are provisioned
// out-of-band through the Seeder interface, which the storage backends
// implement and the seed command drives.
package catalog
