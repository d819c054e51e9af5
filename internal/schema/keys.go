package schema

// Field names with a meaning beyond validation.
const (
	CollectionsKey = "collections"
	DatasetsKey    = "datasets"
	DatasetKey     = "dataset"
	MonitorsKey    = "monitors"
	IdentifierKey  = "identifier"
	IDKey          = "id"
)

// Names of the top-level shapes; error reporting binds one error type to each.
const (
	WorkspaceFileName     = "CollectionsToRenderFile"
	MonitorsFileName      = "CollectionMonitorsFile"
	DefaultValuesFileName = "CollectionDefaultValuesFile"
	MonitorName           = "CollectionMonitor"
	APIMonitorName        = "APIMonitor"
)
