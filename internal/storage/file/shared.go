package file

import (
	"github.com/bietkhonhungvandi212/pagesim/internal/storage/page"
)

type Filer interface {
	ReadAccesses(path string) (page.Sequence, error)
	WriteReport(path string, report string) error
}

var _ Filer = (*FileManager)(nil)
