// Package listkeys implements the Lambda handler that reports every AWS
// Payment Cryptography key visible to the function as an API Gateway proxy
// response.
//
// The handler is all-or-nothing: it either returns every key summary under
// "keys" with status 200, or a status 500 envelope carrying a message and the
// failure description. It never returns a Go error to the Lambda runtime.
package listkeys
