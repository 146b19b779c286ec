package ml

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Artifact is the parsed model.json of a tfjs layers model.
type Artifact struct {
	Format          string          `json:"format"`
	ModelTopology   json.RawMessage `json:"modelTopology"`
	WeightsManifest []WeightGroup   `json:"weightsManifest"`
}

type WeightGroup struct {
	Paths   []string     `json:"paths"`
	Weights []WeightSpec `json:"weights"`
}

type WeightSpec struct {
	Name  string `json:"name"`
	Shape []int  `json:"shape"`
	Dtype string `json:"dtype"`
}

func (w WeightSpec) size() int {
	n := 1
	for _, d := range w.Shape {
		n *= d
	}
	return n
}

type layerSpec struct {
	ClassName string      `json:"class_name"`
	Config    layerConfig `json:"config"`
}

type layerConfig struct {
	Name            string `json:"name"`
	Units           int    `json:"units"`
	Activation      string `json:"activation"`
	UseBias         *bool  `json:"use_bias"`
	BatchInputShape []*int `json:"batch_input_shape"`
}

// ParseArtifact decodes the model.json document.
func ParseArtifact(raw []byte) (*Artifact, error) {
	var a Artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode model topology: %w", err)
	}
	if len(a.ModelTopology) == 0 {
		return nil, errors.New("model topology is missing")
	}
	return &a, nil
}

// WeightPaths lists the manifest shard paths in load order.
func (a *Artifact) WeightPaths() []string {
	var paths []string
	for _, g := range a.WeightsManifest {
		paths = append(paths, g.Paths...)
	}
	return paths
}

func (a *Artifact) layers() ([]layerSpec, error) {
	topology := a.ModelTopology

	// Older exports wrap the model under model_config.
	var wrapped struct {
		ModelConfig json.RawMessage `json:"model_config"`
	}
	if err := json.Unmarshal(topology, &wrapped); err == nil && len(wrapped.ModelConfig) > 0 {
		topology = wrapped.ModelConfig
	}

	var model struct {
		ClassName string          `json:"class_name"`
		Config    json.RawMessage `json:"config"`
	}
	if err := json.Unmarshal(topology, &model); err != nil {
		return nil, fmt.Errorf("decode model config: %w", err)
	}
	if model.ClassName != "" && model.ClassName != "Sequential" {
		return nil, fmt.Errorf("unsupported model class %q", model.ClassName)
	}

	var layers []layerSpec
	if err := json.Unmarshal(model.Config, &layers); err == nil {
		return layers, nil
	}
	var withLayers struct {
		Layers []layerSpec `json:"layers"`
	}
	if err := json.Unmarshal(model.Config, &withLayers); err != nil {
		return nil, fmt.Errorf("decode layers: %w", err)
	}
	return withLayers.Layers, nil
}

type dense struct {
	name     string
	in, out  int
	kernel   *mat.Dense // [in][out]
	bias     *mat.VecDense
	activate activation
}

// forward computes activate(kernelᵀ·x + bias).
func (d *dense) forward(x *mat.VecDense) *mat.VecDense {
	y := mat.NewVecDense(d.out, nil)
	y.MulVec(d.kernel.T(), x)
	if d.bias != nil {
		y.AddVec(y, d.bias)
	}
	d.activate(y.RawVector().Data)
	return y
}

// Model is an evaluable feed-forward network. It is immutable once built.
type Model struct {
	inputSize int
	layers    []*dense
}

// BuildModel binds the topology in a to the little-endian float32 weight data.
func BuildModel(a *Artifact, weightData []byte) (*Model, error) {
	tensors, err := decodeWeights(a.WeightsManifest, weightData)
	if err != nil {
		return nil, err
	}

	specs, err := a.layers()
	if err != nil {
		return nil, err
	}

	m := &Model{}
	for _, spec := range specs {
		switch spec.ClassName {
		case "InputLayer":
			if n := lastDim(spec.Config.BatchInputShape); n > 0 {
				m.inputSize = n
			}
		case "Dropout", "Flatten":
			// No-ops at inference time for a flat input vector.
		case "Dense":
			if m.inputSize == 0 && len(m.layers) == 0 {
				m.inputSize = lastDim(spec.Config.BatchInputShape)
			}
			layer, err := buildDense(spec, tensors)
			if err != nil {
				return nil, err
			}
			if prev := m.outputSize(); prev > 0 && prev != layer.in {
				return nil, fmt.Errorf("layer %s expects %d inputs, previous layer yields %d", layer.name, layer.in, prev)
			}
			m.layers = append(m.layers, layer)
		default:
			return nil, fmt.Errorf("unsupported layer %q", spec.ClassName)
		}
	}

	if len(m.layers) == 0 {
		return nil, errors.New("model has no dense layers")
	}
	if m.inputSize == 0 {
		m.inputSize = m.layers[0].in
	}
	return m, nil
}

func (m *Model) outputSize() int {
	if len(m.layers) == 0 {
		return m.inputSize
	}
	return m.layers[len(m.layers)-1].out
}

func (m *Model) InputSize() int {
	return m.inputSize
}

// Predict runs one forward pass over a single input row.
func (m *Model) Predict(input []float64) ([]float64, error) {
	if len(input) != m.inputSize {
		return nil, fmt.Errorf("model expects %d features, got %d", m.inputSize, len(input))
	}
	x := mat.NewVecDense(len(input), append([]float64(nil), input...))
	for _, layer := range m.layers {
		x = layer.forward(x)
	}
	return mat.Col(nil, 0, x), nil
}

func buildDense(spec layerSpec, tensors map[string]tensor) (*dense, error) {
	name := spec.Config.Name
	kernel, err := findTensor(tensors, name, "kernel")
	if err != nil {
		return nil, err
	}
	if len(kernel.shape) != 2 {
		return nil, fmt.Errorf("%s/kernel has rank %d, want 2", name, len(kernel.shape))
	}
	if kernel.shape[0] <= 0 || kernel.shape[1] <= 0 {
		return nil, fmt.Errorf("%s/kernel has empty shape %v", name, kernel.shape)
	}
	if spec.Config.Units != 0 && kernel.shape[1] != spec.Config.Units {
		return nil, fmt.Errorf("%s/kernel has %d units, want %d", name, kernel.shape[1], spec.Config.Units)
	}

	act, err := lookupActivation(spec.Config.Activation)
	if err != nil {
		return nil, fmt.Errorf("layer %s: %w", name, err)
	}

	layer := &dense{
		name:     name,
		in:       kernel.shape[0],
		out:      kernel.shape[1],
		kernel:   mat.NewDense(kernel.shape[0], kernel.shape[1], kernel.values),
		activate: act,
	}

	useBias := spec.Config.UseBias == nil || *spec.Config.UseBias
	if useBias {
		bias, err := findTensor(tensors, name, "bias")
		if err != nil {
			return nil, err
		}
		if len(bias.values) != layer.out {
			return nil, fmt.Errorf("%s/bias has %d values, want %d", name, len(bias.values), layer.out)
		}
		layer.bias = mat.NewVecDense(layer.out, bias.values)
	}
	return layer, nil
}

type tensor struct {
	shape  []int
	values []float64
}

func decodeWeights(manifest []WeightGroup, data []byte) (map[string]tensor, error) {
	tensors := make(map[string]tensor)
	offset := 0
	for _, group := range manifest {
		for _, spec := range group.Weights {
			if spec.Dtype != "" && spec.Dtype != "float32" {
				return nil, fmt.Errorf("weight %s has unsupported dtype %s", spec.Name, spec.Dtype)
			}
			n := spec.size()
			end := offset + n*4
			if end > len(data) {
				return nil, fmt.Errorf("weight data too short: %s needs bytes [%d:%d], have %d", spec.Name, offset, end, len(data))
			}
			values := make([]float64, n)
			for i := range values {
				bits := binary.LittleEndian.Uint32(data[offset+i*4:])
				values[i] = float64(math.Float32frombits(bits))
			}
			tensors[spec.Name] = tensor{shape: spec.Shape, values: values}
			offset = end
		}
	}
	if offset != len(data) {
		return nil, fmt.Errorf("weight data has %d trailing bytes", len(data)-offset)
	}
	return tensors, nil
}

// findTensor matches "layer/kind" exactly or as a path suffix, e.g. "sequential/dense_1/kernel".
// A suffix shared by several weights is an error.
func findTensor(tensors map[string]tensor, layer, kind string) (tensor, error) {
	want := layer + "/" + kind
	if t, ok := tensors[want]; ok {
		return t, nil
	}

	var matches []string
	for name := range tensors {
		if strings.HasSuffix(name, "/"+want) {
			matches = append(matches, name)
		}
	}
	switch len(matches) {
	case 0:
		return tensor{}, fmt.Errorf("weights for %s not found", want)
	case 1:
		return tensors[matches[0]], nil
	default:
		sort.Strings(matches)
		return tensor{}, fmt.Errorf("weights for %s are ambiguous: %s", want, strings.Join(matches, ", "))
	}
}

func lastDim(shape []*int) int {
	if len(shape) == 0 || shape[len(shape)-1] == nil {
		return 0
	}
	return *shape[len(shape)-1]
}

// Score reduces a model output to the positive-class probability.
// A single unit is the probability itself; two units are a softmax pair.
func Score(output []float64) (float64, error) {
	switch len(output) {
	case 1:
		return output[0], nil
	case 2:
		return output[1], nil
	default:
		return 0, fmt.Errorf("unexpected model output width %d", len(output))
	}
}
