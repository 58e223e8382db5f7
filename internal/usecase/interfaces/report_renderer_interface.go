package interfaces

// ReportSection is one block of a report document: free-form summary lines,
// a table, or both.
type ReportSection struct {
	Heading string
	Lines   []string
	Columns []string
	Rows    [][]string
}

// ReportDocument is the flat, renderer-agnostic shape handed to the PDF and
// CSV generators. Row field order is a compatibility contract with the files
// users already have.
type ReportDocument struct {
	Title    string
	Sections []ReportSection
}

// IReportRenderer abstracts document generators (PDF, CSV). Generation may be
// long-running; it cannot be cancelled once started.
type IReportRenderer interface {
	Render(doc ReportDocument) ([]byte, error)
}
