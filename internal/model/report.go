package model

// Parameter is a cataloged formal parameter of a supported type.
type Parameter struct {
	Name string
	Type PrimitiveType
}

// BoundaryResult maps each matched parameter to its derived boundary values.
// Order holds parameter names in the order they were first matched.
type BoundaryResult struct {
	Method string
	Order  []string
	Values map[string][]PrimitiveValue
	Types  map[string]PrimitiveType
}

// Empty reports whether no parameter received boundary values.
func (r BoundaryResult) Empty() bool {
	return len(r.Order) == 0
}

// Report is a BoundaryResult together with where it came from. It is the
// unit the UI displays and the report store persists.
type Report struct {
	Source   Path           `yaml:"source"`
	Language Language       `yaml:"language"`
	Method   string         `yaml:"method"`
	Line     int            `yaml:"line"`
	Columns  []ReportColumn `yaml:"columns"`
}

// ReportColumn is one parameter of a Report.
type ReportColumn struct {
	Parameter string           `yaml:"parameter"`
	Type      PrimitiveType    `yaml:"type"`
	Values    []PrimitiveValue `yaml:"values"`
}

// NewReport flattens a BoundaryResult into report columns, keeping Order.
func NewReport(source Path, lang Language, method Method, result BoundaryResult) Report {
	columns := make([]ReportColumn, 0, len(result.Order))
	for _, name := range result.Order {
		columns = append(columns, ReportColumn{
			Parameter: name,
			Type:      result.Types[name],
			Values:    result.Values[name],
		})
	}

	return Report{
		Source:   source,
		Language: lang,
		Method:   method.QualifiedName(),
		Line:     method.Line,
		Columns:  columns,
	}
}

// MethodSummary describes a method found by the list command.
type MethodSummary struct {
	Path       Path
	Language   Language
	Method     string
	Line       int
	Parameters int // analyzable parameters
	Conditions int
}
