// Package service contains the application use cases. TaskService resolves
// nothing itself: the caller identity arrives as an explicit argument, every
// operation touches the store at most once, and all failures are folded into
// a Result envelope instead of being returned as errors.
package service
