// Package auth checks the API key on incoming requests.
package auth
