// Package server holds the HTTP server settings: listen port, the optional API key and
// the cap on player identifiers per request. PlayerLimit applies the default cap when
// none is configured.
package server
