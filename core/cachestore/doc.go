// Package cachestore provides the key-value and set store backing the catalog.
//
// The production implementation is Redis. Every operation takes a context and returns
// explicit errors; callers decide whether a store failure is fatal.
package cachestore
