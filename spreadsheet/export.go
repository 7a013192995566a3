package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/fitkit/curvefit/dataset"
	"github.com/fitkit/curvefit/models"
)

const (
	dataSheet    = "Data"
	summarySheet = "Summary"
)

// Export writes a workbook with the sample data, one predicted column per
// model, and a summary sheet of the per-model fit scores.
func Export(path string, ds *dataset.Dataset, results []models.FitResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return fmt.Errorf("unable to rename data sheet, %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("unable to create summary sheet, %w", err)
	}

	if err := writeDataSheet(f, ds, results); err != nil {
		return err
	}
	if err := writeSummarySheet(f, results); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("unable to save workbook %s, %w", path, err)
	}
	return nil
}

func writeDataSheet(f *excelize.File, ds *dataset.Dataset, results []models.FitResult) error {
	headers := []any{"x", "y"}
	for _, res := range results {
		headers = append(headers, res.Kind.String())
	}
	if err := f.SetSheetRow(dataSheet, "A1", &headers); err != nil {
		return fmt.Errorf("unable to write data headers, %w", err)
	}

	for i := 0; i < ds.Len(); i++ {
		row := []any{ds.X[i], ds.Y[i]}
		for _, res := range results {
			row = append(row, res.Predicted[i])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(dataSheet, cell, &row); err != nil {
			return fmt.Errorf("unable to write data row %d, %w", i, err)
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, results []models.FitResult) error {
	headers := []any{"model", "formula", "r_squared", "rmse", "mae", "max_abs_error"}
	if err := f.SetSheetRow(summarySheet, "A1", &headers); err != nil {
		return fmt.Errorf("unable to write summary headers, %w", err)
	}

	for i, res := range results {
		row := []any{
			res.Kind.String(),
			res.Formula,
			res.RSquared,
			res.RMSE,
			res.MAE,
			res.MaxAbsError,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("unable to write summary row %d, %w", i, err)
		}
	}
	return nil
}
