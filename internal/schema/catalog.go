package schema

// Parameters sub-shapes.
var (
	Threshold = NewRecord("ParametersThreshold",
		Optional("sensitivity", OneOf("Low", "Normal", "High")),
		Optional("bounds", OneOf("Min", "Max", "MinAndMax")),
		Optional("kind", OneOf("Static", "Dynamic", "Exact")),
		Optional("isMinInclusive", Bool),
		Optional("min", Float),
		Optional("isMaxInclusive", Bool),
		Optional("max", Float),
		Optional("onAddedCategory", Bool),
		Optional("onRemovedCategory", Bool),
	)

	Aggregation = NewRecord("ParametersMetricsAggregation",
		Required("kind", OneOf(
			"Average", "Count", "Range", "Quantile", "Sum", "StandardDeviation",
			"Variance", "NormalizedAverage", "DistinctCount", "Min", "Max",
		)),
		Required("quantile", Float),
	)

	Partition = NewRecord("ParametersPartition",
		Required("kind", OneOf("IngestionTime", "TimeUnitColumn", "IntegerRange")),
		Optional("interval", String),
		Optional("field", String),
		Optional("min", Int),
		Optional("max", Int),
	)

	Profiling = NewRecord("ParametersProfiling",
		Required("kind", OneOf("NullCount", "NullPercentage", "DuplicateCount", "DuplicatePercentage")),
	)

	GroupBy = NewRecord("ParametersGroupBy",
		Required("field", String),
	)

	Reference = NewRecord("ParametersReference",
		Required("kind", OneOf("Fixed", "Duration")),
		Optional("timestamp", String),
		Optional("delay", String),
	)

	TimeWindow = NewRecord("ParametersTimeWindow",
		Optional("field", String),
		Optional("duration", String),
		Optional("offset", String),
		Optional("disableDeltaQuerying", Bool),
		Optional("deltaQuerying", String),
		Optional("frequency", String),
	)

	FieldProfiling = NewRecord("ParametersFieldProfiling",
		Required("kind", OneOf("NullCount", "NullPercentage", "DuplicateCount", "DuplicatePercentage")),
	)

	Parameters = NewRecord("Parameters",
		Required("kind", OneOf(
			"Completeness", "Duplicates", "Freshness", "SchemaChange",
			"StaticMetrics", "DynamicMetrics", "CustomMetrics", "InterlinkedMetrics",
			"StaticFieldProfiling", "DynamicFieldProfiling", "Distribution",
			"FieldCardinality", "FieldDate", "FieldInList", "FieldUniqueness",
			"FieldFormat", "Sql",
		)),
		Optional("field", String),
		Optional("schedule", String),
		Optional("threshold", Threshold),
		Optional("whereStatement", String),
		Optional("groupBy", GroupBy),
		Optional("timeWindow", TimeWindow),
		Optional("partition", Partition),
		Optional("sql", String),
		Optional("aggregation", Aggregation),
		Optional("metrics", NewListOf(AnyMapping)),
		Optional("profiling", Profiling),
		Optional("fieldProfiling", FieldProfiling),
		Optional("reference", Reference),
		Optional("minDate", String),
		Optional("maxDate", String),
		Optional("timeField", String),
		Optional("values", NewListOf(String)),
	)
)

// Shared monitor field shapes.
var (
	Tag = NewRecord("TagField",
		Optional("id", String),
		Optional("name", String),
		Optional("kind", OneOf("Tag", "Classification")),
	)

	Term = NewRecord("TermField",
		Optional("id", String),
		Optional("name", String),
	)

	Incident = NewRecord("IncidentField",
		Required("severity", OneOf("Low", "Moderate", "High", "Critical")),
		Optional("message", String),
	)

	Notification = NewRecord("NotificationsField",
		Required("kind", OneOf("Slack", "Email", "MicrosoftTeams")),
		Optional("id", String),
		Optional("name", String),
	)

	// SharedFields are the monitor fields common to collection files and the
	// rendered API output.
	SharedFields = NewRecord("MonitorsSharedFields",
		Required("version", AnyOf(String, Int)),
		Required("name", String),
		Required("kind", OneOf("Monitor")),
		Optional("description", String),
		Optional("tags", NewListOf(Tag)),
		Optional("terms", NewListOf(Term)),
		Optional("schedule", String),
		Optional("incident", Incident),
		Optional("notifications", NewListOf(Notification)),
		Required("parameters", Parameters),
	)
)

// Top-level document shapes.
var (
	// WorkspaceFile is the workspace declaration listing collections to render.
	WorkspaceFile = NewRecord(WorkspaceFileName,
		Required(CollectionsKey, NewListOf(String)),
	)

	DatasetInCollection = NewRecord("DatasetInCollectionMonitorsFile",
		Required(DatasetKey, String),
		Required(MonitorsKey, AnyList),
	)

	// MonitorsFile is a monitor-bearing file inside a collection directory.
	MonitorsFile = NewRecord(MonitorsFileName,
		Required(DatasetsKey, NewListOf(DatasetInCollection)),
		Optional("default_values", AnyMapping),
	)

	// DefaultValuesFile accepts any subset of the shared fields, at any depth.
	DefaultValuesFile = Partial(SharedFields.Extend(DefaultValuesFileName)).(*Record)

	// CollectionMonitor is a monitor after merging with collection defaults.
	CollectionMonitor = SharedFields.Extend(MonitorName,
		Required(IdentifierKey, String),
	)

	// APIMonitor is the rendered form of a monitor.
	APIMonitor = SharedFields.Extend(APIMonitorName,
		Required(IDKey, String),
		Required(DatasetsKey, NewListOf(AnyMapping)),
	)
)
