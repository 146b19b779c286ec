package graphql

import (
	"context"

	"health-monitor-api/internal/delivery/dto"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

type idArgs struct {
	ID graphqlgo.ID
}

type patientFilterArgs struct {
	Patient *graphqlgo.ID
}

type createUserArgs struct {
	Email       *string
	Password    *string
	Roles       *[]string
	FirstName   *string
	LastName    *string
	Active      *bool
	Gender      *string
	DateOfBirth *string
}

type updateUserArgs struct {
	ID          graphqlgo.ID
	Email       *string
	Password    *string
	Roles       *[]string
	FirstName   *string
	LastName    *string
	Active      *bool
	Gender      *string
	DateOfBirth *string
}

func (r *Resolver) GetAllUsers(ctx context.Context) ([]*userResolver, error) {
	users, err := r.userUsecase.GetAllUsers(ctx)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return usersToResolvers(users), nil
}

func (r *Resolver) GetUser(ctx context.Context, args idArgs) (*userResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	user, err := r.userUsecase.GetUser(ctx, id)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &userResolver{u: user}, nil
}

func (r *Resolver) CreateNewUser(ctx context.Context, args createUserArgs) (*userResolver, error) {
	req := &dto.CreateUserRequest{
		Email:       deref(args.Email),
		Password:    deref(args.Password),
		FirstName:   deref(args.FirstName),
		LastName:    deref(args.LastName),
		Active:      args.Active,
		Gender:      args.Gender,
		DateOfBirth: args.DateOfBirth,
	}
	if args.Roles != nil {
		req.Roles = *args.Roles
	}

	user, err := r.userUsecase.CreateUser(ctx, req)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &userResolver{u: user}, nil
}

func (r *Resolver) UpdateUser(ctx context.Context, args updateUserArgs) (*userResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	req := &dto.UpdateUserRequest{
		ID:          id,
		Email:       args.Email,
		Password:    args.Password,
		FirstName:   args.FirstName,
		LastName:    args.LastName,
		Active:      args.Active,
		Gender:      args.Gender,
		DateOfBirth: args.DateOfBirth,
	}
	if args.Roles != nil {
		req.Roles = *args.Roles
	}

	user, err := r.userUsecase.UpdateUser(ctx, req)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &userResolver{u: user}, nil
}

func (r *Resolver) DeleteUser(ctx context.Context, args idArgs) (*userResolver, error) {
	id, err := parseID("id", args.ID)
	if err != nil {
		return nil, toGraphQLError(err)
	}

	user, err := r.userUsecase.DeleteUser(ctx, id)
	if err != nil {
		return nil, toGraphQLError(err)
	}
	return &userResolver{u: user}, nil
}
