// Package utils holds input validation shared by the HTTP handlers.
package utils
