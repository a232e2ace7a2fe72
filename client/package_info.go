// Package client is a thin HTTP client for the TodoItems service.
package client
