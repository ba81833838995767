// internal/appcore/writer_factories.go
package appcore

import (
	"io"

	"repeatscan-core/engine"
	"repeatscan/internal/writers"
)

// ReportWriterFactory emits engine.Report values in the selected format.
type ReportWriterFactory struct {
	Format string
	Sort   bool
	Header bool
}

func NewReportWriterFactory(format string, sort, header bool) ReportWriterFactory {
	return ReportWriterFactory{Format: format, Sort: sort, Header: header}
}

// Every format can print the repeated substrings, so the scanner always
// keeps the sequence on the report.
func (w ReportWriterFactory) NeedSeq() bool { return true }

func (w ReportWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Report, <-chan error) {
	return writers.StartReportWriter(out, w.Format, w.Sort, w.Header, bufSize)
}
