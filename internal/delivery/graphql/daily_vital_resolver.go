package graphql

import (
	"context"

	"health-monitor-api/internal/delivery/dto"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

type createDailyVitalArgs struct {
	PulseRate     *float64
	BloodPressure *float64
	Weight        *float64
	Temperature   *float64
	RespRate      *float64
	Patient       *graphqlgo.ID
}

type updateDailyVitalArgs struct {
	ID            graphqlgo.ID
	PulseRate     *float64
	BloodPressure *float64
	Weight        *float64
	Temperature   *float64
	RespRate      *float64
	Patient       *graphqlgo.ID
}

func (r *Resolver) GetDailyVital(ctx context.Context, args patientFilterArgs) ([]*dailyVitalResolver, error) {
	patientID, err := parseOptionalID("patient", args.Patient)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	dailyVitals, err := r.dailyVitalUsecase.GetDailyVitals(ctx, patientID)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return dailyVitalsToResolvers(dailyVitals), nil
}

func (r *Resolver) CreateNewDailyVital(ctx context.Context, args createDailyVitalArgs) (*dailyVitalResolver, error) {
	req := &dto.CreateDailyVitalRequest{
		PulseRate:     args.PulseRate,
		BloodPressure: args.BloodPressure,
		Weight:        args.Weight,
		Temperature:   args.Temperature,
		RespRate:      args.RespRate,
		Patient:       deref(idToString(args.Patient)),
	}

	dailyVital, err := r.dailyVitalUsecase.CreateDailyVital(ctx, req)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &dailyVitalResolver{d: dailyVital}, nil
}

func (r *Resolver) UpdateDailyVital(ctx context.Context, args updateDailyVitalArgs) (*dailyVitalResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	req := &dto.UpdateDailyVitalRequest{
		ID:            id,
		PulseRate:     args.PulseRate,
		BloodPressure: args.BloodPressure,
		Weight:        args.Weight,
		Temperature:   args.Temperature,
		RespRate:      args.RespRate,
		Patient:       idToString(args.Patient),
	}

	dailyVital, err := r.dailyVitalUsecase.UpdateDailyVital(ctx, req)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &dailyVitalResolver{d: dailyVital}, nil
}

func (r *Resolver) DeleteDailyVital(ctx context.Context, args idArgs) (*dailyVitalResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	dailyVital, err := r.dailyVitalUsecase.DeleteDailyVital(ctx, id)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &dailyVitalResolver{d: dailyVital}, nil
}
