// Package cuid2 generates collision-resistant, sortable unique identifiers.
//
// # Format
//
// A CUID2 is a lowercase ASCII string of a caller-chosen length between 4 and
// 32 characters (default 24). The first character is always a letter a-z and
// the rest are base-36 digits 0-9a-z, so an ID is a valid identifier in most
// languages and safe for URLs and database keys.
//
// # Construction
//
// Each ID hashes four inputs with SHA3-512 and base-36 encodes the digest:
//   - a 100-nanosecond-tick timestamp, for coarse time ordering
//   - a process-wide atomic counter, randomly seeded once per process, for
//     same-instant uniqueness within the process
//   - a host fingerprint (hostname, pid, sorted environment), computed once
//     per process, for uniqueness across processes and machines
//   - fresh cryptographically secure random bytes, for collision resistance
//
// Collision resistance is probabilistic; there is no coordination between
// hosts and the IDs are not a MAC or signature.
//
// # Concurrency
//
// A Generator is safe for concurrent use. The only synchronization on the
// generation path is one atomic counter increment; the counter seed and the
// fingerprint are each computed exactly once under a sync.Once.
//
// Usage
//
//	g := cuid2.New()
//	id, err := g.Generate()            // 24 characters
//	id, err = g.GenerateLength(16)     // custom length in [4, 32]
//
// Package-level Generate and GenerateLength share a single default Generator
// for callers that do not need their own.
package cuid2
