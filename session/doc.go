// Package session keeps interactive lesson sessions: a circuit name plus the
// learner's current SwitchState. Every operation re-evaluates the circuit and
// returns the fresh Result alongside the stored session.
//
// Persistence is pluggable through Store; NewMemoryStore ships here, Redis and
// SQLite stores live in the redisstore and sqlitestore subpackages.
package session
