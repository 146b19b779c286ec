package converter

import (
	"health-monitor-api/internal/delivery/dto"
	"health-monitor-api/internal/domain/entity"
)

func TipToResponse(tip *entity.Tip) *dto.TipResponse {
	if tip == nil {
		return nil
	}

	return &dto.TipResponse{
		ID:          tip.ID,
		Title:       tip.Title,
		Description: tip.Description,
	}
}

func TipsToResponses(tips []entity.Tip) []dto.TipResponse {
	responses := make([]dto.TipResponse, len(tips))
	for i := range tips {
		responses[i] = *TipToResponse(&tips[i])
	}
	return responses
}
