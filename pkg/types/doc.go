// Package types defines the Pet record, the age policy, the Store interface
// and the standard error values shared by every petdb package.
package types
