// Package config provides configuration loading, merging, and validation
// facilities for the Sterling client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. An optional .env file (never overrides variables already set)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Fields left empty by every source receive the defaults of [Defaults].
// The main entry point is [GetClientConfig].
package config
