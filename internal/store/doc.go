// Package store declares the persistence contracts for tasks and the error
// values every implementation wraps its failures in.
package store
