package config

// Presets holds ready-to-fit starting configurations per model variant,
// keyed by model name then preset name.
var Presets = map[string]map[string]*ModelConfig{
	"logistic": {
		"standard": {
			Model:  "logistic",
			Params: map[string]float64{"a": 0.5, "t_0": 10, "K": 100},
			Bounds: []BoundConfig{
				{Param: "a", Lower: ptr(0), Upper: ptr(10)},
				{Param: "K", Lower: ptr(0)},
			},
		},
		"microbial": {
			Model:  "logistic",
			Params: map[string]float64{"a": 0.8, "t_0": 6, "K": 1e9},
			Bounds: []BoundConfig{
				{Param: "a", Lower: ptr(0), Upper: ptr(5)},
				{Param: "t_0", Lower: ptr(0)},
				{Param: "K", Lower: ptr(0)},
			},
		},
	},
	"richards": {
		"standard": {
			Model:  "richards",
			Params: map[string]float64{"a": 0.5, "b": 1, "d": 5, "K": 100},
			Bounds: []BoundConfig{
				{Param: "a", Lower: ptr(0), Upper: ptr(10)},
				{Param: "b", Lower: ptr(0.05), Upper: ptr(10)},
				{Param: "K", Lower: ptr(0)},
			},
		},
	},
	"exponential": {
		"standard": {
			Model:  "exponential",
			Params: map[string]float64{"a": 0.1},
			Bounds: []BoundConfig{{Param: "a", Lower: ptr(0), Upper: ptr(5)}},
			Y0:     ptr(1),
		},
	},
	"exponential_generalized": {
		"subexponential": {
			Model:  "exponential_generalized",
			Params: map[string]float64{"a": 0.5, "p": 0.5},
			Bounds: []BoundConfig{
				{Param: "a", Lower: ptr(0), Upper: ptr(10)},
				{Param: "p", Lower: ptr(0), Upper: ptr(0.95)},
			},
			Y0: ptr(1),
		},
	},
	"logistic_sigmoid": {
		"symmetric": {
			Model:  "logistic_sigmoid",
			Params: map[string]float64{"a": 0.5, "c": 1, "K": 100},
			Bounds: []BoundConfig{
				{Param: "a", Lower: ptr(0), Upper: ptr(10)},
				{Param: "c", Lower: ptr(0.05), Upper: ptr(20)},
				{Param: "K", Lower: ptr(0)},
			},
			Y0: ptr(1),
		},
		"asymmetric": {
			Model:  "logistic_sigmoid",
			Params: map[string]float64{"a": 0.5, "c": 4, "K": 100},
			Bounds: []BoundConfig{
				{Param: "a", Lower: ptr(0), Upper: ptr(10)},
				{Param: "c", Lower: ptr(0.05), Upper: ptr(20)},
				{Param: "K", Lower: ptr(0)},
			},
			Y0: ptr(1),
		},
	},
}

// GetPreset returns the named preset for a model, or nil if unknown.
func GetPreset(model, name string) *ModelConfig {
	presets, ok := Presets[model]
	if !ok {
		return nil
	}
	return presets[name]
}

// ListPresets returns the preset names for a model, or nil if unknown.
func ListPresets(model string) []string {
	presets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}

func ptr(v float64) *float64 { return &v }
