package ml

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type predictRequest struct {
	Instances [][]float64 `json:"instances"`
}

type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
	Error       string      `json:"error,omitempty"`
}

// RemotePredictor calls a TensorFlow Serving REST endpoint.
type RemotePredictor struct {
	client *resty.Client
	model  string
}

func NewRemotePredictor(baseURL, model string) *RemotePredictor {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(10*time.Second).
		SetHeader("Content-Type", "application/json")

	return &RemotePredictor{client: client, model: model}
}

func (p *RemotePredictor) Predict(ctx context.Context, features []float64) ([]float64, error) {
	var result predictResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(predictRequest{Instances: [][]float64{features}}).
		SetResult(&result).
		SetError(&result).
		Post(fmt.Sprintf("/v1/models/%s:predict", p.model))
	if err != nil {
		return nil, fmt.Errorf("predict request failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("predict request returned %d: %s", resp.StatusCode(), result.Error)
	}
	if len(result.Predictions) == 0 {
		return nil, errors.New("predict response has no predictions")
	}
	return result.Predictions[0], nil
}
