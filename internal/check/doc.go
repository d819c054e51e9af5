// Package check turns validation diagnostics into typed, human-readable
// errors.
//
// Structure validates a value against a shape; on failure it picks the error
// type bound to the shape's name:
//
//	CollectionsToRenderFile      -> *WorkspaceFormatError
//	CollectionMonitorsFile       -> *MonitorsFileFormatError
//	CollectionDefaultValuesFile  -> *DefaultValuesFormatError
//	CollectionMonitor            -> *MonitorFormatError
//	anything else                -> *FormatError
//
// Every error renders a one-line summary, the offending value as YAML, the
// bulleted diagnostics and the originating file. Monitor errors also point
// at the first line of the file that mentions the monitor's identifier.
package check
