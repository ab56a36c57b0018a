// Package service holds the client's business logic on top of the Sterling
// API adapter and the local stores.
//
// [DataSynchronizer] is the single source of truth for dining rooms,
// reservations and members during a session. Reads are retried with linear
// backoff, writes are issued once, and memory and the snapshot cache are
// only updated after the server confirms a change.
package service
