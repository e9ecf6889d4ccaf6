package ports

import "edusight/internal/ingest"

// TabularReader reads one assessment file (Excel or CSV) into header-keyed
// rows. Implementations must preserve the header text exactly; column
// resolution happens downstream against the alias tables.
type TabularReader interface {
	Read() ([]ingest.Row, error)
}
