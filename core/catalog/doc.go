// Package catalog is the read-through cache layer in front of the Steam Web API.
//
// Every accessor consults the cache store first and only calls Steam on a miss. Non-empty
// results are written back with a per-entity TTL; app names are write-once. An empty
// library is cached as well, so a private profile is not re-queried until the TTL runs
// out. Cache store failures are logged and treated as misses.
package catalog
