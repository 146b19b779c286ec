package usecase

import (
	"context"

	"health-monitor-api/internal/domain/repository"
	"health-monitor-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// mergePatients joins the single and list patient arguments, dropping duplicates.
func mergePatients(patient *string, patients []string) ([]uuid.UUID, error) {
	raw := make([]string, 0, len(patients)+1)
	if patient != nil {
		raw = append(raw, *patient)
	}
	raw = append(raw, patients...)

	seen := make(map[uuid.UUID]struct{}, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fieldError("patients", "patients must contain valid ids")
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

func parsePatient(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fieldError("patient", "patient must be a valid id")
	}
	return id, nil
}

// ensurePatientsExist fails with ErrPatientNotFound unless every id names a user.
func ensurePatientsExist(ctx context.Context, log *logrus.Logger, userRepo repository.UserRepository, ids ...uuid.UUID) error {
	count, err := userRepo.CountByIDs(ctx, ids)
	if err != nil {
		log.Warnf("Failed to count patients: %+v", err)
		return apperror.Dependency("failed to find patients", err)
	}
	if count != int64(len(ids)) {
		return ErrPatientNotFound
	}
	return nil
}
