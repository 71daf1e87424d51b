// Package http implements the HTTP transport layer of the users API.
//
// Every route sits behind the same middleware chain: trace id, access log,
// panic recovery and the bearer-token auth gate. Handlers decode the
// request, call the user service and translate its outcome into a status
// code; store failures never leak details to the client.
package http
