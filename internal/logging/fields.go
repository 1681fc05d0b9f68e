package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldChannel is the standardized structured logging key for notification channels.
	FieldChannel = "channel"
	// FieldOrderID is the standardized structured logging key for order identifiers.
	FieldOrderID = "order_id"
	// FieldReportKind is the standardized structured logging key for report kinds.
	FieldReportKind = "report_kind"
	// FieldFormat is the standardized structured logging key for output formats.
	FieldFormat = "format"
	// FieldDelivery is the standardized structured logging key for delivery methods.
	FieldDelivery = "delivery"
	// FieldTarget is the standardized structured logging key for send/delivery targets.
	FieldTarget = "target"
)
