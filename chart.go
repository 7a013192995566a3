package curvefit

import (
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/fitkit/curvefit/dataset"
	"github.com/fitkit/curvefit/models"
)

// LineFit generates an echart line chart plotting the sample values along
// with each fitted model's predictions over the same x axis.
func LineFit(title string, ds *dataset.Dataset, results []models.FitResult) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	lineDataActual := make([]opts.LineData, 0, ds.Len())
	for _, y := range ds.Y {
		lineDataActual = append(lineDataActual, opts.LineData{Value: y})
	}

	line = line.SetXAxis(ds.X).
		AddSeries("Samples", lineDataActual)

	for _, res := range results {
		lineData := make([]opts.LineData, 0, len(res.Predicted))
		for _, y := range res.Predicted {
			if math.IsNaN(y) {
				continue
			}
			lineData = append(lineData, opts.LineData{Value: y})
		}
		line = line.AddSeries(res.Kind.String(), lineData)
	}

	return line
}

// LineResiduals generates an echart line chart of per-model residuals against
// the sample values.
func LineResiduals(title string, ds *dataset.Dataset, results []models.FitResult) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
	)

	line = line.SetXAxis(ds.X)
	for _, res := range results {
		lineData := make([]opts.LineData, 0, len(res.Predicted))
		for i, y := range res.Predicted {
			if math.IsNaN(y) {
				continue
			}
			lineData = append(lineData, opts.LineData{Value: ds.Y[i] - y})
		}
		line = line.AddSeries(res.Kind.String(), lineData)
	}

	return line
}

// PlotFit uses the Apache Echarts library to generate an html file showing
// the samples, the fitted curves, and the per-model residuals.
func PlotFit(path string, ds *dataset.Dataset, results []models.FitResult) error {
	page := components.NewPage()
	page.AddCharts(
		LineFit("Model Fits", ds, results),
		LineResiduals("Fit Residuals", ds, results),
	)
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	return page.Render(io.MultiWriter(file))
}
