package report

import "context"

// ReportRepository reads record snapshots for aggregation. Rows come back
// with employee names resolved; filtering and pagination happen in the
// service so the arithmetic stays testable without a database.
type ReportRepository interface {
	ListRows(ctx context.Context) ([]Row, error)
}
