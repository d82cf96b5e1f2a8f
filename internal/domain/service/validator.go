package service

import (
	"slices"
	"strings"
	"time"

	"github.com/ledgerlab/finutil/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Header names consumed by the schemas.
const (
	FieldCategory    = "Category"
	FieldAmount      = "Amount"
	FieldDate        = "Date"
	FieldType        = "Type"
	FieldDescription = "Description"
)

// Schema describes which fields a row must carry and how they are checked.
type Schema struct {
	Mode     entity.Mode
	Required []string
	// KeyField is the column whose value becomes Record.Key.
	KeyField string
	// PositiveAmount rejects zero and negative amounts.
	PositiveAmount bool
	// Types, when set, restricts the lower-cased key to these values.
	Types []string
	// StrictDate turns an unparseable date into a rejection instead of an
	// undated record.
	StrictDate bool
}

// ExpenseSchema validates rows of the expense summarizer. Date is optional.
var ExpenseSchema = Schema{
	Mode:     entity.ModeExpense,
	Required: []string{FieldCategory, FieldAmount},
	KeyField: FieldCategory,
}

// ProfitLossSchema validates rows of the profit/loss calculator.
var ProfitLossSchema = Schema{
	Mode:           entity.ModeProfitLoss,
	Required:       []string{FieldDate, FieldType, FieldAmount, FieldDescription},
	KeyField:       FieldType,
	PositiveAmount: true,
	Types:          []string{entity.TypeRevenue, entity.TypeExpense},
	StrictDate:     true,
}

// SchemaFor returns the schema used by mode.
func SchemaFor(mode entity.Mode) Schema {
	if mode == entity.ModeProfitLoss {
		return ProfitLossSchema
	}
	return ExpenseSchema
}

const (
	minAmountExponent = -10
	maxAmountExponent = 18
)

// Validate turns a raw row into a Record. Checks run in a fixed order and stop
// at the first failure; the returned error is always a *entity.Rejection.
func Validate(row entity.RawRow, schema Schema) (entity.Record, error) {
	field := func(name string) string {
		return strings.TrimSpace(row.Fields[name])
	}

	for _, name := range schema.Required {
		if field(name) == "" {
			return entity.Record{}, &entity.Rejection{Err: entity.ErrMissingField, Field: name}
		}
	}

	rawAmount := field(FieldAmount)
	amount, err := decimal.NewFromString(rawAmount)
	// Expoentes fora da faixa viram números com milhões de dígitos ao somar.
	if err != nil || amount.Exponent() < minAmountExponent || amount.Exponent() > maxAmountExponent {
		return entity.Record{}, &entity.Rejection{Err: entity.ErrMalformedAmount, Field: FieldAmount, Value: rawAmount}
	}
	if schema.PositiveAmount && !amount.IsPositive() {
		return entity.Record{}, &entity.Rejection{Err: entity.ErrNonPositiveAmount, Field: FieldAmount, Value: rawAmount}
	}

	key := field(schema.KeyField)
	if len(schema.Types) > 0 {
		key = strings.ToLower(key)
		if !slices.Contains(schema.Types, key) {
			return entity.Record{}, &entity.Rejection{Err: entity.ErrUnknownTransactionType, Field: schema.KeyField, Value: key}
		}
	}

	record := entity.Record{
		Line:        row.Line,
		Key:         key,
		Amount:      amount,
		Description: field(FieldDescription),
	}

	// Data é opcional no modo de despesas: sem data o registro ainda conta
	// nos totais por categoria, mas não entra na tendência mensal.
	if rawDate := field(FieldDate); rawDate != "" {
		if on, err := time.Parse(entity.DateFormat, rawDate); err == nil {
			record.Date = on
			record.HasDate = true
		} else if schema.StrictDate {
			return entity.Record{}, &entity.Rejection{Err: entity.ErrMalformedDate, Field: FieldDate, Value: rawDate}
		}
	}
	if schema.Mode == entity.ModeExpense {
		record.Description = ""
	}

	return record, nil
}
