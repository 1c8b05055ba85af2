package element

import (
	"fmt"
	"sort"
	"strings"
)

// Model supplies the scalar prefactors applied to the shared element
// structure K = f_K·Bᵗ·Aᵗ·A·B and b = f_b·[1,1,1,1].
type Model interface {
	Name() string
	StiffnessFactor(conductivity, volume, jacobian float64) float64
	LoadFactor(source, jacobian float64) float64
}

// HeatTransfer is steady heat conduction: f_K = k·V/J², f_b = Q·J/24
type HeatTransfer struct{}

func (HeatTransfer) Name() string { return "heat" }

func (HeatTransfer) StiffnessFactor(conductivity, volume, jacobian float64) float64 {
	return conductivity * volume / (jacobian * jacobian)
}

func (HeatTransfer) LoadFactor(source, jacobian float64) float64 {
	return source * jacobian / 24
}

// SecondEquation is the coefficient-free second model: f_K = 1/(3360·J),
// f_b = J/105. Conductivity and source are ignored.
type SecondEquation struct{}

func (SecondEquation) Name() string { return "second-equation" }

func (SecondEquation) StiffnessFactor(_, _, jacobian float64) float64 {
	return 1 / (3360 * jacobian)
}

func (SecondEquation) LoadFactor(_, jacobian float64) float64 {
	return jacobian / 105
}

var models = map[string]Model{
	HeatTransfer{}.Name():   HeatTransfer{},
	SecondEquation{}.Name(): SecondEquation{},
}

// ModelByName looks up a model; the empty name selects HeatTransfer
func ModelByName(name string) (Model, error) {
	if name == "" {
		return HeatTransfer{}, nil
	}
	if m, ok := models[strings.ToLower(name)]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("unknown model %q, available: %s", name, strings.Join(ModelNames(), ", "))
}

func ModelNames() []string {
	names := make([]string, 0, len(models))
	for n := range models {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
