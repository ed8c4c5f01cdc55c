package models

// Column names referenced directly by the classifier and formatter.
const (
	ColumnBrand          = "Brand"
	ColumnClientName     = "Client Name"
	ColumnInvoiceGroup   = "Invoice Group"
	ColumnWeekEnding     = "Week ending date"
	ColumnContractorName = "Contractor Name"
)

// schema is the ordered set of columns every output row exposes.
var schema = [...]string{
	ColumnBrand,
	"Timesheet ID",
	"Timesheet Code",
	"Client Ref",
	ColumnClientName,
	ColumnInvoiceGroup,
	"Interpreter Status",
	"Purchase Order",
	"Job Order ID",
	ColumnWeekEnding,
	ColumnContractorName,
	"Bill Rate Description",
	"Bill Units",
	"Bill Rate",
	"Total Bill",
	"Work Location",
	"Business Unit",
	"Job Description",
	"Project Code1",
}

// Schema returns a copy of the report columns in output order.
func Schema() []string {
	out := make([]string, len(schema))
	copy(out, schema[:])
	return out
}
