// Package apitest runs an in-memory Sterling API for tests.
//
// [Server] serves the routes the client adapter uses from mutable fixture
// collections, counts calls per "METHOD /path" and can be told to fail a
// route with a given status a number of times.
package apitest
