package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"health-monitor-api/internal/usecase"
	"health-monitor-api/pkg/response"

	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportHandler struct {
	exportUsecase usecase.ExportUsecase
}

func NewExportHandler(exportUsecase usecase.ExportUsecase) *ExportHandler {
	return &ExportHandler{
		exportUsecase: exportUsecase,
	}
}

func (h *ExportHandler) ExportDailyVitals(w http.ResponseWriter, r *http.Request) {
	var patientID *uuid.UUID
	if raw := r.URL.Query().Get("patient"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			response.ValidationError(w, map[string]string{"patient": "patient must be a valid id"})
			return
		}
		patientID = &parsed
	}

	data, err := h.exportUsecase.ExportDailyVitals(r.Context(), patientID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	filename := fmt.Sprintf("daily-vitals-%s.xlsx", time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
