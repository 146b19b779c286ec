package graphql

import (
	"context"

	"health-monitor-api/internal/delivery/dto"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

type createVitalArgs struct {
	Age      *int32
	Sex      *int32
	Cp       *int32
	Trestbps *float64
	Chol     *float64
	Fbs      *int32
	Restecg  *int32
	Thalach  *float64
	Exang    *int32
	Oldpeak  *float64
	Slope    *int32
	Ca       *int32
	Thal     *int32
	Num      *int32
	Patient  *graphqlgo.ID
	Patients *[]graphqlgo.ID
}

type updateVitalArgs struct {
	ID       graphqlgo.ID
	Age      *int32
	Sex      *int32
	Cp       *int32
	Trestbps *float64
	Chol     *float64
	Fbs      *int32
	Restecg  *int32
	Thalach  *float64
	Exang    *int32
	Oldpeak  *float64
	Slope    *int32
	Ca       *int32
	Thal     *int32
	Num      *int32
	Patient  *graphqlgo.ID
	Patients *[]graphqlgo.ID
}

func (r *Resolver) GetVital(ctx context.Context, args patientFilterArgs) ([]*vitalResolver, error) {
	patientID, err := parseOptionalID("patient", args.Patient)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	vitals, err := r.vitalUsecase.GetVitals(ctx, patientID)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return vitalsToResolvers(vitals), nil
}

func (r *Resolver) CreateNewVital(ctx context.Context, args createVitalArgs) (*vitalResolver, error) {
	req := &dto.CreateVitalRequest{
		Age:      toInt(args.Age),
		Sex:      toInt(args.Sex),
		Cp:       toInt(args.Cp),
		Trestbps: args.Trestbps,
		Chol:     args.Chol,
		Fbs:      toInt(args.Fbs),
		Restecg:  toInt(args.Restecg),
		Thalach:  args.Thalach,
		Exang:    toInt(args.Exang),
		Oldpeak:  args.Oldpeak,
		Slope:    toInt(args.Slope),
		Ca:       toInt(args.Ca),
		Thal:     toInt(args.Thal),
		Num:      toInt(args.Num),
		Patient:  idToString(args.Patient),
		Patients: idsToStrings(args.Patients),
	}

	vital, err := r.vitalUsecase.CreateVital(ctx, req)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &vitalResolver{v: vital}, nil
}

func (r *Resolver) UpdateVital(ctx context.Context, args updateVitalArgs) (*vitalResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	req := &dto.UpdateVitalRequest{
		ID:       id,
		Age:      toInt(args.Age),
		Sex:      toInt(args.Sex),
		Cp:       toInt(args.Cp),
		Trestbps: args.Trestbps,
		Chol:     args.Chol,
		Fbs:      toInt(args.Fbs),
		Restecg:  toInt(args.Restecg),
		Thalach:  args.Thalach,
		Exang:    toInt(args.Exang),
		Oldpeak:  args.Oldpeak,
		Slope:    toInt(args.Slope),
		Ca:       toInt(args.Ca),
		Thal:     toInt(args.Thal),
		Num:      toInt(args.Num),
		Patient:  idToString(args.Patient),
		Patients: idsToStrings(args.Patients),
	}

	vital, err := r.vitalUsecase.UpdateVital(ctx, req)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &vitalResolver{v: vital}, nil
}

func (r *Resolver) DeleteVital(ctx context.Context, args idArgs) (*vitalResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	vital, err := r.vitalUsecase.DeleteVital(ctx, id)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &vitalResolver{v: vital}, nil
}
