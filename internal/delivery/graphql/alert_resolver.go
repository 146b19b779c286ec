package graphql

import (
	"context"

	"health-monitor-api/internal/delivery/dto"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

type createAlertArgs struct {
	Message *string
	Address *string
	Phone   *string
	Patient *graphqlgo.ID
}

type updateAlertArgs struct {
	ID      graphqlgo.ID
	Message *string
	Address *string
	Phone   *string
	Patient *graphqlgo.ID
}

func (r *Resolver) GetAlert(ctx context.Context, args patientFilterArgs) ([]*alertResolver, error) {
	patientID, err := parseOptionalID("patient", args.Patient)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	alerts, err := r.alertUsecase.GetAlerts(ctx, patientID)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return alertsToResolvers(alerts), nil
}

func (r *Resolver) GetAlerts(ctx context.Context) ([]*alertResolver, error) {
	alerts, err := r.alertUsecase.GetAlerts(ctx, nil)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return alertsToResolvers(alerts), nil
}

func (r *Resolver) CreateNewAlert(ctx context.Context, args createAlertArgs) (*alertResolver, error) {
	alert, err := r.alertUsecase.CreateAlert(ctx, &dto.CreateAlertRequest{
		Message: deref(args.Message),
		Address: args.Address,
		Phone:   args.Phone,
		Patient: deref(idToString(args.Patient)),
	})
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &alertResolver{a: alert}, nil
}

func (r *Resolver) UpdateAlert(ctx context.Context, args updateAlertArgs) (*alertResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	alert, err := r.alertUsecase.UpdateAlert(ctx, &dto.UpdateAlertRequest{
		ID:      id,
		Message: args.Message,
		Address: args.Address,
		Phone:   args.Phone,
		Patient: idToString(args.Patient),
	})
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &alertResolver{a: alert}, nil
}

func (r *Resolver) DeleteAlert(ctx context.Context, args idArgs) (*alertResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	alert, err := r.alertUsecase.DeleteAlert(ctx, id)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &alertResolver{a: alert}, nil
}
