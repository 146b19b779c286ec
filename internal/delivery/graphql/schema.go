// Package graphql exposes the usecases through a single GraphQL schema.
package graphql

import (
	"context"
	_ "embed"
	"time"

	"health-monitor-api/internal/usecase"

	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus"
)

//go:embed schema.graphql
var schemaSDL string

const maxQueryDepth = 10

// Resolver is the root resolver for Query and Mutation.
type Resolver struct {
	log               *logrus.Logger
	userUsecase       usecase.UserUsecase
	vitalUsecase      usecase.VitalUsecase
	dailyVitalUsecase usecase.DailyVitalUsecase
	tipUsecase        usecase.TipUsecase
	alertUsecase      usecase.AlertUsecase
	authUsecase       usecase.AuthUsecase
	predictionUsecase usecase.PredictionUsecase
	session           SessionConfig
}

// SessionConfig controls the token cookie written by login.
type SessionConfig struct {
	Expiry time.Duration
	Secure bool
}

func NewResolver(
	log *logrus.Logger,
	userUsecase usecase.UserUsecase,
	vitalUsecase usecase.VitalUsecase,
	dailyVitalUsecase usecase.DailyVitalUsecase,
	tipUsecase usecase.TipUsecase,
	alertUsecase usecase.AlertUsecase,
	authUsecase usecase.AuthUsecase,
	predictionUsecase usecase.PredictionUsecase,
	session SessionConfig,
) *Resolver {
	return &Resolver{
		log:               log,
		userUsecase:       userUsecase,
		vitalUsecase:      vitalUsecase,
		dailyVitalUsecase: dailyVitalUsecase,
		tipUsecase:        tipUsecase,
		alertUsecase:      alertUsecase,
		authUsecase:       authUsecase,
		predictionUsecase: predictionUsecase,
		session:           session,
	}
}

// NewSchema parses the embedded schema against the resolver.
func NewSchema(resolver *Resolver) (*graphqlgo.Schema, error) {
	return graphqlgo.ParseSchema(
		schemaSDL,
		resolver,
		graphqlgo.MaxDepth(maxQueryDepth),
		graphqlgo.Logger(panicLogger{log: resolver.log}),
	)
}

type panicLogger struct {
	log *logrus.Logger
}

func (l panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.log.Errorf("Recovered from resolver panic: %v", value)
}
