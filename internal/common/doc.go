// Package common holds small helpers shared across packages: generic slice
// utilities and conversions between dotted collection names and directory
// paths.
package common
