package models

// Record is one row read from the input file: a mapping from column name to
// raw cell text. Records are immutable once read.
type Record struct {
	Index  int
	Fields map[string]string
}

// Get returns the named column's text, or "" when the column is absent.
func (r Record) Get(column string) string {
	return r.Fields[column]
}

// CardInstance is one physical card to print. A record with qty 3 and
// multiplier 2 yields six instances, all pointing back at the same row.
type CardInstance struct {
	Front     string
	Back      string
	SourceRow int
}

// Side selects which face of a card an operation applies to.
type Side string

const (
	SideFront Side = "front"
	SideBack  Side = "back"
)

// QtyWarning records a qty cell that could not be used as-is and was
// defaulted to 1. Collected during expansion, reported at end of run.
type QtyWarning struct {
	Row   int
	Value string
}

// FontSpec names a core PDF font by family and style.
type FontSpec struct {
	Family string
	Size   float64
	Style  string
}
