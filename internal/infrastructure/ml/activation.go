package ml

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

type activation func(v []float64)

func lookupActivation(name string) (activation, error) {
	switch name {
	case "", "linear":
		return func([]float64) {}, nil
	case "relu":
		return each(func(x float64) float64 { return math.Max(0, x) }), nil
	case "sigmoid":
		return each(sigmoid), nil
	case "tanh":
		return each(math.Tanh), nil
	case "softmax":
		return softmax, nil
	case "elu":
		return each(func(x float64) float64 {
			if x > 0 {
				return x
			}
			return math.Exp(x) - 1
		}), nil
	case "selu":
		const alpha = 1.6732632423543772848170429916717
		const scale = 1.0507009873554804934193349852946
		return each(func(x float64) float64 {
			if x > 0 {
				return scale * x
			}
			return scale * alpha * (math.Exp(x) - 1)
		}), nil
	case "softplus":
		return each(func(x float64) float64 { return math.Log1p(math.Exp(x)) }), nil
	case "softsign":
		return each(func(x float64) float64 { return x / (1 + math.Abs(x)) }), nil
	case "hard_sigmoid", "hardSigmoid":
		return each(func(x float64) float64 { return math.Min(1, math.Max(0, 0.2*x+0.5)) }), nil
	default:
		return nil, fmt.Errorf("unsupported activation %q", name)
	}
}

func each(f func(float64) float64) activation {
	return func(v []float64) {
		for i := range v {
			v[i] = f(v[i])
		}
	}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func softmax(v []float64) {
	if len(v) == 0 {
		return
	}
	floats.AddConst(-floats.LogSumExp(v), v)
	each(math.Exp)(v)
}
