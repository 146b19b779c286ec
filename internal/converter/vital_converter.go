package converter

import (
	"health-monitor-api/internal/delivery/dto"
	"health-monitor-api/internal/domain/entity"
)

func VitalToResponse(vital *entity.Vital) *dto.VitalResponse {
	if vital == nil {
		return nil
	}

	return &dto.VitalResponse{
		ID:         vital.ID,
		Age:        vital.Age,
		Sex:        vital.Sex,
		Cp:         vital.Cp,
		Trestbps:   vital.Trestbps,
		Chol:       vital.Chol,
		Fbs:        vital.Fbs,
		Restecg:    vital.Restecg,
		Thalach:    vital.Thalach,
		Exang:      vital.Exang,
		Oldpeak:    vital.Oldpeak,
		Slope:      vital.Slope,
		Ca:         vital.Ca,
		Thal:       vital.Thal,
		Num:        vital.Num,
		UpdateDate: vital.UpdateDate,
		Patients:   vital.PatientIDs(),
	}
}

func VitalsToResponses(vitals []entity.Vital) []dto.VitalResponse {
	responses := make([]dto.VitalResponse, len(vitals))
	for i := range vitals {
		responses[i] = *VitalToResponse(&vitals[i])
	}
	return responses
}
