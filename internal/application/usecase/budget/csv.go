// Package budget contains budget projection matrix use cases.
package budget

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aspal-sistemas/parksys-finance/internal/domain/entity"
	domainerror "github.com/aspal-sistemas/parksys-finance/internal/domain/error"
)

// The CSV contract keeps the Spanish column names the planners' spreadsheets
// use: categoria, tipo, the twelve month names, total.
var csvHeader = []string{
	"categoria", "tipo",
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	"total",
}

// CSV values of the tipo column.
const (
	csvTipoIngreso = "ingreso"
	csvTipoGasto   = "gasto"
)

// CSVRow is one parsed data row of a budget CSV file.
type CSVRow struct {
	Category string
	Type     entity.TransactionType
	Months   [entity.MonthsPerYear]decimal.Decimal
}

// parseCSV reads and validates the raw structure of a budget CSV: header
// row present, every data row with the right column count, amounts numeric.
// Catalog-level validation (category exists, type agrees) happens in the
// import use case.
func parseCSV(r io.Reader) ([]CSVRow, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeCSVMissingHeader,
			"could not read csv header",
			domainerror.ErrCSVMissingHeader,
		)
	}
	if len(header) < 2 || !strings.EqualFold(strings.TrimSpace(header[0]), "categoria") {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeCSVMissingHeader,
			"first column must be 'categoria'",
			domainerror.ErrCSVMissingHeader,
		)
	}

	var rows []CSVRow
	var rowErrors []domainerror.CSVRowError
	rowNum := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			rowErrors = append(rowErrors, domainerror.CSVRowError{
				Row:    rowNum,
				Reason: err.Error(),
			})
			continue
		}
		// The trailing total column is optional on import; it is derived.
		if len(record) < 2+entity.MonthsPerYear {
			rowErrors = append(rowErrors, domainerror.CSVRowError{
				Row:      rowNum,
				Category: strings.TrimSpace(record[0]),
				Reason:   fmt.Sprintf("expected at least %d columns, got %d", 2+entity.MonthsPerYear, len(record)),
			})
			continue
		}

		row := CSVRow{Category: strings.TrimSpace(record[0])}
		if row.Category == "" {
			rowErrors = append(rowErrors, domainerror.CSVRowError{
				Row:    rowNum,
				Reason: "categoria is empty",
			})
			continue
		}

		switch strings.ToLower(strings.TrimSpace(record[1])) {
		case csvTipoIngreso:
			row.Type = entity.TransactionTypeIncome
		case csvTipoGasto:
			row.Type = entity.TransactionTypeExpense
		default:
			rowErrors = append(rowErrors, domainerror.CSVRowError{
				Row:      rowNum,
				Category: row.Category,
				Reason:   fmt.Sprintf("tipo must be %q or %q, got %q", csvTipoIngreso, csvTipoGasto, record[1]),
			})
			continue
		}

		valid := true
		for i := 0; i < entity.MonthsPerYear; i++ {
			raw := strings.TrimSpace(record[2+i])
			if raw == "" {
				row.Months[i] = decimal.Zero
				continue
			}
			amount, err := decimal.NewFromString(raw)
			if err != nil {
				rowErrors = append(rowErrors, domainerror.CSVRowError{
					Row:      rowNum,
					Category: row.Category,
					Reason:   fmt.Sprintf("column %s is not a number: %q", csvHeader[2+i], raw),
				})
				valid = false
				break
			}
			row.Months[i] = amount
		}
		if !valid {
			continue
		}

		rows = append(rows, row)
	}

	if len(rowErrors) > 0 {
		return nil, &domainerror.CSVImportError{Rows: rowErrors}
	}
	return rows, nil
}

// writeCSV renders matrix rows in the same column order parseCSV accepts.
func writeCSV(w io.Writer, rows []MatrixRowOutput) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range rows {
		record := make([]string, 0, len(csvHeader))
		record = append(record, row.CategoryName)
		if row.Type == entity.TransactionTypeIncome {
			record = append(record, csvTipoIngreso)
		} else {
			record = append(record, csvTipoGasto)
		}
		for i := 0; i < entity.MonthsPerYear; i++ {
			record = append(record, row.Months[i].StringFixed(2))
		}
		record = append(record, row.Total.StringFixed(2))
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
