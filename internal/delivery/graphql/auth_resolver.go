package graphql

import (
	"context"

	"health-monitor-api/internal/delivery/dto"
)

type loginArgs struct {
	Email    string
	Password string
}

// Login reports bad credentials in the payload status rather than as an error.
func (r *Resolver) Login(ctx context.Context, args loginArgs) (*authPayloadResolver, error) {
	payload, err := r.authUsecase.Login(ctx, &dto.LoginRequest{
		Email:    args.Email,
		Password: args.Password,
	})
	if err != nil {
		return nil, toGraphQLError(err)
	}

	if payload.Status == dto.StatusSuccess && payload.Token != nil {
		r.setSessionCookie(ctx, *payload.Token)
	}
	return &authPayloadResolver{p: payload}, nil
}

func (r *Resolver) IsSignedIn(ctx context.Context) (*authPayloadResolver, error) {
	payload, err := r.authUsecase.IsSignedIn(ctx, sessionToken(ctx))
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &authPayloadResolver{p: payload}, nil
}

func (r *Resolver) Logout(ctx context.Context) (*authPayloadResolver, error) {
	payload, err := r.authUsecase.Logout(ctx)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	r.clearSessionCookie(ctx)
	return &authPayloadResolver{p: payload}, nil
}
