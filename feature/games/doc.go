// Package games serves the games-in-common lookup.
//
// The service resolves raw identifiers, runs the aggregation and renders a plain-text
// report alongside the structured result. Any identifier that cannot be resolved and any
// library that cannot be read abort the lookup; the caller gets one error line per
// failure instead of a report.
//
// # Routes
//
//   - GET /games/common?players=a,b,c
package games
