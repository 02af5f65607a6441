package crud

const (
	DefaultPageNumber     = 1
	DefaultRecordsPerPage = 10
	MaxRecordsPerPage     = 50
)

// Pagination carries a validated page request. Values are clamped when they
// are assigned, so a stored Pagination never exceeds MaxRecordsPerPage and
// never points before the first page.
type Pagination struct {
	pageNumber     int
	recordsPerPage int
}

func NewPagination(pageNumber, recordsPerPage int) Pagination {
	p := Pagination{
		pageNumber:     DefaultPageNumber,
		recordsPerPage: DefaultRecordsPerPage,
	}
	p.SetPageNumber(pageNumber)
	p.SetRecordsPerPage(recordsPerPage)
	return p
}

func (p *Pagination) SetPageNumber(pageNumber int) {
	if pageNumber < 1 {
		pageNumber = DefaultPageNumber
	}
	p.pageNumber = pageNumber
}

func (p *Pagination) SetRecordsPerPage(recordsPerPage int) {
	if recordsPerPage < 1 {
		recordsPerPage = DefaultRecordsPerPage
	}
	if recordsPerPage > MaxRecordsPerPage {
		recordsPerPage = MaxRecordsPerPage
	}
	p.recordsPerPage = recordsPerPage
}

func (p Pagination) PageNumber() int {
	return p.pageNumber
}

func (p Pagination) RecordsPerPage() int {
	return p.recordsPerPage
}

func (p Pagination) Offset() int {
	return (p.pageNumber - 1) * p.recordsPerPage
}

func (p Pagination) Limit() int {
	return p.recordsPerPage
}
