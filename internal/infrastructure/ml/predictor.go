package ml

import (
	"context"
	"fmt"
	"path"
	"sync"

	"github.com/sirupsen/logrus"
)

// Predictor runs the heart-disease model over one feature vector and returns the raw output row.
type Predictor interface {
	Predict(ctx context.Context, features []float64) ([]float64, error)
}

type LoaderConfig struct {
	Topology string
	// Weights overrides the manifest shard paths with a single file when set.
	Weights string
	Cache   bool
}

// Loader evaluates a tfjs layers model read from an ArtifactSource.
type Loader struct {
	source ArtifactSource
	cfg    LoaderConfig
	log    *logrus.Logger

	mu    sync.Mutex
	model *Model
}

func NewLoader(source ArtifactSource, cfg LoaderConfig, log *logrus.Logger) *Loader {
	return &Loader{
		source: source,
		cfg:    cfg,
		log:    log,
	}
}

func (l *Loader) Predict(ctx context.Context, features []float64) ([]float64, error) {
	model, err := l.Model(ctx)
	if err != nil {
		return nil, err
	}
	return model.Predict(features)
}

// Model returns the parsed model, loading it when not cached.
func (l *Loader) Model(ctx context.Context) (*Model, error) {
	if !l.cfg.Cache {
		return l.load(ctx)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.model != nil {
		return l.model, nil
	}
	model, err := l.load(ctx)
	if err != nil {
		return nil, err
	}
	l.model = model
	return model, nil
}

func (l *Loader) load(ctx context.Context) (*Model, error) {
	raw, err := readAll(ctx, l.source, l.cfg.Topology)
	if err != nil {
		return nil, err
	}

	artifact, err := ParseArtifact(raw)
	if err != nil {
		return nil, err
	}

	paths := artifact.WeightPaths()
	if l.cfg.Weights != "" {
		paths = []string{l.cfg.Weights}
	} else {
		// Manifest paths are relative to the topology file.
		dir := path.Dir(l.cfg.Topology)
		for i, p := range paths {
			paths[i] = path.Join(dir, p)
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("model %s lists no weight files", l.cfg.Topology)
	}

	var weights []byte
	for _, p := range paths {
		shard, err := readAll(ctx, l.source, p)
		if err != nil {
			return nil, err
		}
		weights = append(weights, shard...)
	}

	model, err := BuildModel(artifact, weights)
	if err != nil {
		return nil, fmt.Errorf("build model %s: %w", l.cfg.Topology, err)
	}

	l.log.Infof("Loaded model %s: %d inputs, %d layers", l.cfg.Topology, model.InputSize(), len(model.layers))
	return model, nil
}
