package converter

import (
	"health-monitor-api/internal/delivery/dto"
	"health-monitor-api/internal/domain/entity"
)

func AlertToResponse(alert *entity.Alert) *dto.AlertResponse {
	if alert == nil {
		return nil
	}

	return &dto.AlertResponse{
		ID:      alert.ID,
		Message: alert.Message,
		Address: alert.Address,
		Phone:   alert.Phone,
		Patient: alert.PatientID,
	}
}

func AlertsToResponses(alerts []entity.Alert) []dto.AlertResponse {
	responses := make([]dto.AlertResponse, len(alerts))
	for i := range alerts {
		responses[i] = *AlertToResponse(&alerts[i])
	}
	return responses
}
