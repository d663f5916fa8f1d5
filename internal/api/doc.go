// Package api exposes the task service over HTTP. Handlers translate
// requests into service calls and write the service result envelope back
// as JSON, choosing the status code from the result kind.
package api
