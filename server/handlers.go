package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/fitkit/curvefit"
	"github.com/fitkit/curvefit/dataset"
	"github.com/fitkit/curvefit/spreadsheet"
)

// FitRequest is the JSON body of the fit endpoint.
type FitRequest struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// UploadResponse wraps a fit report with the id used to fetch its chart.
type UploadResponse struct {
	ID     string           `json:"id"`
	Report *curvefit.Report `json:"report"`
}

func (s *Server) handleFit(w http.ResponseWriter, r *http.Request) {
	var req FitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unable to decode fit request, %w", err))
		return
	}

	ds, err := dataset.New(req.X, req.Y)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unable to create dataset, %w", err))
		return
	}

	id := uuid.NewString()
	s.storeDataset(id, ds)
	writeJSON(w, http.StatusOK, UploadResponse{
		ID:     id,
		Report: curvefit.NewReport(ds),
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opt.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.opt.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unable to parse upload form, %w", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("missing file field, %w", err))
		return
	}
	defer file.Close()

	sheet := r.FormValue("sheet")
	if sheet == "" {
		sheet = "Sheet1"
	}
	xRange := r.FormValue("x_range")
	yRange := r.FormValue("y_range")
	if xRange == "" || yRange == "" {
		writeError(w, http.StatusBadRequest, fmt.Errorf("x_range and y_range form fields are required"))
		return
	}

	id := uuid.NewString()
	tmpPath := filepath.Join(os.TempDir(), id+filepath.Ext(header.Filename))
	tmp, err := os.Create(tmpPath)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("unable to stage upload, %w", err))
		return
	}
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		writeError(w, http.StatusInternalServerError, fmt.Errorf("unable to stage upload, %w", err))
		return
	}
	if err := tmp.Close(); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Errorf("unable to stage upload, %w", err))
		return
	}

	ds, err := spreadsheet.ReadPair(tmpPath, sheet, xRange, yRange)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unable to read series, %w", err))
		return
	}

	s.storeDataset(id, ds)
	writeJSON(w, http.StatusOK, UploadResponse{
		ID:     id,
		Report: curvefit.NewReport(ds),
	})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ds, exists := s.lookupDataset(id)
	if !exists {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown dataset %s", id))
		return
	}

	results := curvefit.FitDataset(ds)
	page := components.NewPage()
	page.AddCharts(
		curvefit.LineFit("Model Fits", ds, results),
		curvefit.LineResiduals("Fit Residuals", ds, results),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		log.Printf("unable to render chart for %s: %v", id, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("unable to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.Printf("request failed: %v", err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
