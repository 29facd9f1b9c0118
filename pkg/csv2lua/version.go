// Package csv2lua holds build metadata for the csv2lua tool.
package csv2lua

// Version is the released version of csv2lua.
const Version = "0.1.0"
