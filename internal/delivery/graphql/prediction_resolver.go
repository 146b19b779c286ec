package graphql

import "context"

func (r *Resolver) Prediction(ctx context.Context, args idArgs) (*predictionResolver, error) {
	userID, err := parseID("id", args.ID)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	prediction, err := r.predictionUsecase.Predict(ctx, userID)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &predictionResolver{p: prediction}, nil
}
