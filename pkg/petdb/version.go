// Package petdb holds build metadata for the petdb module.
package petdb

// Version is the semantic version reported by "petdb version".
const Version = "0.1.0"
