// Package types defines the records, resolved values and table literal
// produced by csv2lua, and the standard errors shared by its packages.
package types
