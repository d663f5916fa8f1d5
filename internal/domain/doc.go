// Package domain holds the task entity and the rules that apply to it
// regardless of how it is stored or served.
package domain
