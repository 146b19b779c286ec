package converter

import (
	"health-monitor-api/internal/delivery/dto"
	"health-monitor-api/internal/domain/entity"
)

func DailyVitalToResponse(dailyVital *entity.DailyVital) *dto.DailyVitalResponse {
	if dailyVital == nil {
		return nil
	}

	return &dto.DailyVitalResponse{
		ID:            dailyVital.ID,
		PulseRate:     dailyVital.PulseRate,
		BloodPressure: dailyVital.BloodPressure,
		Weight:        dailyVital.Weight,
		Temperature:   dailyVital.Temperature,
		RespRate:      dailyVital.RespRate,
		UpdateDate:    dailyVital.UpdateDate,
		Patient:       dailyVital.PatientID,
	}
}

func DailyVitalsToResponses(dailyVitals []entity.DailyVital) []dto.DailyVitalResponse {
	responses := make([]dto.DailyVitalResponse, len(dailyVitals))
	for i := range dailyVitals {
		responses[i] = *DailyVitalToResponse(&dailyVitals[i])
	}
	return responses
}
