package repository

import (
	"io"

	"github.com/ledgerlab/finutil/internal/domain/entity"
)

// LedgerRepository reads delimited files with a header row into raw rows.
type LedgerRepository interface {
	ReadRows(filePath string) ([]entity.RawRow, error)
	DecodeRows(r io.Reader) ([]entity.RawRow, error)
}
