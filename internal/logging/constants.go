package logging

// Standardized field names for structured logging.
// Using the same keys everywhere keeps the log output easy to filter.
const (
	FieldUnit     = "unit_id"
	FieldType     = "record_type"
	FieldCategory = "category"
	FieldYear     = "year"
	FieldMonth    = "month"
	FieldTier     = "tier"
	FieldCount    = "count"
	FieldReason   = "reason"
	FieldFile     = "file_path"
	FieldError    = "error"
)
