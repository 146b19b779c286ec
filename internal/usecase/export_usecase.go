package usecase

import (
	"context"
	"fmt"

	"health-monitor-api/internal/domain/entity"
	"health-monitor-api/internal/domain/repository"
	"health-monitor-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const dailyVitalSheet = "Daily Vitals"

var DailyVitalExportHeader = []string{
	"Patient",
	"Update Date",
	"Pulse Rate",
	"Blood Pressure",
	"Weight",
	"Temperature",
	"Resp Rate",
}

type ExportUsecase interface {
	// ExportDailyVitals renders daily vitals as an XLSX workbook. An empty result yields a header-only sheet.
	ExportDailyVitals(ctx context.Context, patientID *uuid.UUID) ([]byte, error)
}

type exportUsecase struct {
	log            *logrus.Logger
	dailyVitalRepo repository.DailyVitalRepository
}

func NewExportUsecase(log *logrus.Logger, dailyVitalRepo repository.DailyVitalRepository) ExportUsecase {
	return &exportUsecase{
		log:            log,
		dailyVitalRepo: dailyVitalRepo,
	}
}

func (u *exportUsecase) ExportDailyVitals(ctx context.Context, patientID *uuid.UUID) ([]byte, error) {
	dailyVitals, err := u.dailyVitalRepo.FindAll(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find daily vitals: %+v", err)
		return nil, apperror.Dependency("failed to find daily vitals", err)
	}

	data, err := renderDailyVitals(dailyVitals)
	if err != nil {
		u.log.Warnf("Failed to render daily vitals workbook: %+v", err)
		return nil, apperror.Dependency("failed to render export", err)
	}
	return data, nil
}

func renderDailyVitals(dailyVitals []entity.DailyVital) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(dailyVitalSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetSheetRow(dailyVitalSheet, "A1", &DailyVitalExportHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(DailyVitalExportHeader), 1)
	if err := f.SetCellStyle(dailyVitalSheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}
	if err := f.SetColWidth(dailyVitalSheet, "A", "B", 38); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}

	for i, dv := range dailyVitals {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		row := []interface{}{
			dv.PatientID.String(),
			dv.UpdateDate.UTC().Format("2006-01-02 15:04:05"),
			dv.PulseRate.InexactFloat64(),
			dv.BloodPressure.InexactFloat64(),
			dv.Weight.InexactFloat64(),
			dv.Temperature.InexactFloat64(),
			dv.RespRate.InexactFloat64(),
		}
		if err := f.SetSheetRow(dailyVitalSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
