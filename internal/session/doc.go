// Package session owns the signed-in state of the client: the stored bearer
// token and the navigation side effects of losing it.
//
// [Manager] is handed to the adapter as both its credential source and its
// session invalidator, and to the snapshot cache as its partition key
// source, so that one token drives authorisation and cache scoping.
package session
