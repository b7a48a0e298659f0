// Package budget contains budget projection matrix use cases.
package budget

import (
	"context"
	"io"
)

// ExportCSVInput represents the input for a CSV budget export.
type ExportCSVInput struct {
	Year   int
	Writer io.Writer
}

// ExportCSVUseCase renders a budget year as CSV: one row per category with
// twelve month columns and a total column, the inverse of the import.
type ExportCSVUseCase struct {
	getMatrix *GetMatrixUseCase
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(getMatrix *GetMatrixUseCase) *ExportCSVUseCase {
	return &ExportCSVUseCase{
		getMatrix: getMatrix,
	}
}

// Execute writes the year's matrix to the writer.
func (uc *ExportCSVUseCase) Execute(ctx context.Context, input ExportCSVInput) error {
	output, err := uc.getMatrix.Execute(ctx, GetMatrixInput{Year: input.Year})
	if err != nil {
		return err
	}
	return writeCSV(input.Writer, output.Matrix.Rows)
}
