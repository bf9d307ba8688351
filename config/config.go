package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/growthmod/growth"
)

// ModelConfig describes a growth model: which variant, the initial parameter
// values, optional per-parameter bounds, and the response at time zero for
// initial-value variants.
type ModelConfig struct {
	Model  string             `yaml:"model"`
	Params map[string]float64 `yaml:"params"`
	Bounds []BoundConfig      `yaml:"bounds,omitempty"`
	Y0     *float64           `yaml:"y0,omitempty"`
}

// BoundConfig is a named box constraint; a nil side means unconstrained.
type BoundConfig struct {
	Param string   `yaml:"param"`
	Lower *float64 `yaml:"lower,omitempty"`
	Upper *float64 `yaml:"upper,omitempty"`
}

// Load reads a model configuration from a YAML file.
func Load(path string) (*ModelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &ModelConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a model configuration to a YAML file.
func Save(path string, cfg *ModelConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build constructs the configured growth variant. Bounds are reordered to
// the variant's parameter signature; unnamed parameters stay unconstrained.
func (c *ModelConfig) Build() (growth.Model, error) {
	var (
		m   growth.Model
		err error
	)
	switch c.Model {
	case "exponential":
		b, berr := c.orderedBounds([]string{"a"})
		if berr != nil {
			return nil, berr
		}
		m, err = growth.NewExponential(c.Params, b)
	case "exponential_generalized":
		b, berr := c.orderedBounds([]string{"a", "p"})
		if berr != nil {
			return nil, berr
		}
		m, err = growth.NewExponentialGeneralized(c.Params, b)
	case "logistic":
		b, berr := c.orderedBounds([]string{"a", "t_0", "K"})
		if berr != nil {
			return nil, berr
		}
		m, err = growth.NewLogistic(c.Params, b)
	case "richards":
		b, berr := c.orderedBounds([]string{"a", "b", "d", "K"})
		if berr != nil {
			return nil, berr
		}
		m, err = growth.NewRichards(c.Params, b)
	case "logistic_sigmoid":
		b, berr := c.orderedBounds([]string{"a", "c", "K"})
		if berr != nil {
			return nil, berr
		}
		m, err = growth.NewLogisticSigmoid(c.Params, b)
	default:
		return nil, fmt.Errorf("config: unknown model: %s", c.Model)
	}
	if err != nil {
		return nil, err
	}
	if iv, ok := m.(growth.InitialValueModel); ok && c.Y0 != nil {
		iv.SetInitialResponse(*c.Y0)
	}
	return m, nil
}

func (c *ModelConfig) orderedBounds(sig []string) ([]growth.Bounds, error) {
	out := make([]growth.Bounds, len(sig))
	for i := range out {
		out[i] = growth.Unbounded()
	}
	for _, bc := range c.Bounds {
		found := false
		for i, name := range sig {
			if bc.Param == name {
				b := growth.Unbounded()
				if bc.Lower != nil {
					b.Lower = *bc.Lower
				}
				if bc.Upper != nil {
					b.Upper = *bc.Upper
				}
				out[i] = b
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("config: bound for unknown parameter %q", bc.Param)
		}
	}
	return out, nil
}
