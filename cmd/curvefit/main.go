// curvefit fits closed-form regression models to two spreadsheet series.
//
// Usage:
//
//	curvefit fit --file data.xlsx --x-range A2:A40 --y-range B2:B40
//	curvefit serve --addr :8080
package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	"github.com/fitkit/curvefit"
	"github.com/fitkit/curvefit/server"
	"github.com/fitkit/curvefit/spreadsheet"
)

func main() {
	app := &cli.App{
		Name:  "curvefit",
		Usage: "fit closed-form regression models to spreadsheet data",
		Commands: []*cli.Command{
			fitCommand(),
			serveCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func fitCommand() *cli.Command {
	return &cli.Command{
		Name:  "fit",
		Usage: "Fit all model families to two series read from a spreadsheet",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "xlsx or csv file holding the sample series",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "sheet",
				Value: "Sheet1",
				Usage: "Worksheet holding the series (ignored for csv)",
			},
			&cli.StringFlag{
				Name:     "x-range",
				Usage:    "Cell range of the x series, e.g. A2:A40",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "y-range",
				Usage:    "Cell range of the y series, e.g. B2:B40",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "plot",
				Usage: "Write an html chart of the fits to this path",
			},
			&cli.StringFlag{
				Name:  "export",
				Usage: "Write an xlsx report of the fits to this path",
			},
			&cli.BoolFlag{
				Name:  "profile",
				Usage: "Write a CPU profile of the fit to the working directory",
			},
		},
		Action: runFit,
	}
}

func runFit(c *cli.Context) error {
	if c.Bool("profile") {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	ds, err := spreadsheet.ReadPair(c.String("file"), c.String("sheet"), c.String("x-range"), c.String("y-range"))
	if err != nil {
		return fmt.Errorf("unable to read sample series, %w", err)
	}

	report := curvefit.NewReport(ds)
	printReport(report)

	if path := c.String("plot"); path != "" {
		if err := curvefit.PlotFit(path, ds, report.Results); err != nil {
			return fmt.Errorf("unable to plot fits, %w", err)
		}
		fmt.Printf("\nchart written to %s\n", path)
	}
	if path := c.String("export"); path != "" {
		if err := spreadsheet.Export(path, ds, report.Results); err != nil {
			return fmt.Errorf("unable to export fits, %w", err)
		}
		fmt.Printf("report written to %s\n", path)
	}
	return nil
}

func printReport(report *curvefit.Report) {
	fmt.Printf("%-12s  %-10s  %-10s  %-10s  %-10s  %s\n", "model", "r2", "rmse", "mae", "max_err", "formula")
	for i, res := range report.Results {
		marker := " "
		if i == report.Best {
			marker = "*"
		}
		fmt.Printf("%s %-12s %-10.6f  %-10.6f  %-10.6f  %-10.6f  %s\n",
			marker, res.Kind, res.RSquared, res.RMSE, res.MAE, res.MaxAbsError, res.Formula)
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the fitting engine over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: ":8080",
				Usage: "Listen address",
			},
		},
		Action: func(c *cli.Context) error {
			opt := server.NewDefaultOptions()
			opt.Addr = c.String("addr")
			return server.New(opt).ListenAndServe()
		},
	}
}
