package graphql

import (
	"context"

	"health-monitor-api/internal/delivery/dto"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

type createTipArgs struct {
	Title       *string
	Description *string
}

type updateTipArgs struct {
	ID          graphqlgo.ID
	Title       *string
	Description *string
}

func (r *Resolver) GetTip(ctx context.Context) ([]*tipResolver, error) {
	tips, err := r.tipUsecase.GetTips(ctx)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return tipsToResolvers(tips), nil
}

func (r *Resolver) CreateNewTip(ctx context.Context, args createTipArgs) (*tipResolver, error) {
	tip, err := r.tipUsecase.CreateTip(ctx, &dto.CreateTipRequest{
		Title:       deref(args.Title),
		Description: deref(args.Description),
	})
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &tipResolver{t: tip}, nil
}

func (r *Resolver) UpdateTip(ctx context.Context, args updateTipArgs) (*tipResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	tip, err := r.tipUsecase.UpdateTip(ctx, &dto.UpdateTipRequest{
		ID:          id,
		Title:       args.Title,
		Description: args.Description,
	})
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &tipResolver{t: tip}, nil
}

func (r *Resolver) DeleteTip(ctx context.Context, args idArgs) (*tipResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	tip, err := r.tipUsecase.DeleteTip(ctx, id)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &tipResolver{t: tip}, nil
}
