// Package collection models directory-backed collections of monitors.
//
// A Collection is one directory of the workspace. Its effective default values
// are the parent's effective defaults deep-merged with the collection's own
// default-values file. Every other YAML file in the directory is a monitors
// file:
//
//	datasets:
//	  - dataset: <dataset id>
//	    monitors:
//	      - identifier: orders_volume
//	        parameters: {kind: Freshness}
//
// Each monitor entry is merged on top of the effective defaults and validated
// against the monitor shape; the result is a Monitor. Monitor identities
// (collection name + "." + identifier) are unique within a collection.
//
// Construction stops at the first malformed file or monitor. Collections can
// also append, replace and remove monitors in their backing files.
package collection
