// Package queryfs provides accelerated filesystem metadata queries.
//
// Each operation canonicalizes its input path, decides once whether the
// external index engine may serve it (the volume root must have a ready,
// populated index and no prior engine failure may have occurred), and
// routes to either the engine or the direct filesystem. Any engine failure
// permanently disables index usage for the life of the Client and the
// operation transparently completes through the direct path; callers never
// see engine failures, only argument and filesystem errors.
//
// All shared state lives on the Client. There are no package-level globals,
// so independent Clients with independent readiness state can coexist in
// one process.
package queryfs
