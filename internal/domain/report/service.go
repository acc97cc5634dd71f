package report

import "context"

type Service interface {
	Summary(ctx context.Context, query *Query) ([]*Row, error)
	// ExportExcel renders the summary as an xlsx workbook and returns
	// the file bytes with a suggested filename.
	ExportExcel(ctx context.Context, query *Query) ([]byte, string, error)
}
