// Package middleware groups the fiber middleware shared by every feature.
//
//   - rayid tags each request with an X-Ray-ID, reusing one supplied by a proxy, so log
//     lines from the handler, the resolver and the Steam client can be correlated.
//   - auth checks the X-API-Key header (or api_key query parameter) when server.api_key
//     is set. Listed paths such as /metrics bypass it.
//
// Register rayid first, then logger.Requests, then auth.
package middleware
