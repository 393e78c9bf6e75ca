// Package utils provides small shared helpers: password strength scoring
// for the registration flow and User-Agent string providers for the HTTP transport.
package utils
