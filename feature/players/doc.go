// Package players exposes identifier resolution on its own, so a front end can check
// which Steam profile a name maps to before running a lookup.
//
// # Routes
//
//   - GET /resolve?players=a,b
package players
