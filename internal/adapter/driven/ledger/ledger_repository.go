package ledger

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/ledgerlab/finutil/internal/domain/entity"
	"github.com/ledgerlab/finutil/internal/domain/repository"
	"github.com/ledgerlab/finutil/internal/shared/types"
)

const utf8BOM = "\ufeff"

// CSVLedgerRepository implementa o LedgerRepository para arquivos CSV.
type CSVLedgerRepository struct {
	comma rune
}

// NewCSVLedgerRepository creates a reader for comma-separated files.
func NewCSVLedgerRepository() repository.LedgerRepository {
	return &CSVLedgerRepository{comma: ','}
}

// ReadRows opens filePath and decodes every data row. Failing to open the
// file is terminal and mapped to ErrInputNotFound / ErrInputPermission.
func (r *CSVLedgerRepository) ReadRows(filePath string) ([]entity.RawRow, error) {
	file, err := os.Open(filePath)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: '%s'", types.ErrInputNotFound, filePath)
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("%w: '%s'", types.ErrInputPermission, filePath)
		default:
			return nil, fmt.Errorf("error opening input file: %w", err)
		}
	}
	defer file.Close()

	rows, err := r.DecodeRows(file)
	if err != nil {
		return nil, fmt.Errorf("error reading '%s': %w", filePath, err)
	}
	return rows, nil
}

// DecodeRows reads a header line followed by data rows. Cells are matched to
// header names; rows shorter than the header simply lack the trailing fields.
// An empty input yields no rows.
func (r *CSVLedgerRepository) DecodeRows(in io.Reader) ([]entity.RawRow, error) {
	reader := csv.NewReader(in)
	reader.Comma = r.comma
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []entity.RawRow
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV record: %w", err)
		}

		line, _ := reader.FieldPos(0)
		fields := make(map[string]string, len(header))
		for i, name := range header {
			if i >= len(record) || name == "" {
				continue
			}
			fields[name] = record[i]
		}
		rows = append(rows, entity.RawRow{Line: line, Fields: fields})
	}

	return rows, nil
}
