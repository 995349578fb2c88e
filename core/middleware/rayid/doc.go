// Package rayid tags every request with a unique id for log correlation.
package rayid
