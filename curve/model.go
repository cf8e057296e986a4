package curve

import (
	"fmt"
	"math"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libeasing/easing"
)

// MaxSteps bounds Preset.Steps. Curves.Samples holds every value of a
// preset in memory.
const MaxSteps = 1 << 20

type Preset struct {
	Name  string  `yaml:"name" json:"name"`
	Start float64 `yaml:"start" json:"start"`
	End   float64 `yaml:"end" json:"end"`
	Steps uint64  `yaml:"steps" json:"steps"`
}

func (p *Preset) Validate() error {
	if p == nil {
		return commerr.ErrInvalidArgument
	}

	if _, err := easing.ParseName(p.Name); err != nil {
		return err
	}

	if p.Steps > MaxSteps {
		return fmt.Errorf("%w: steps %d exceeds %d", commerr.ErrInvalidArgument, p.Steps, MaxSteps)
	}

	if !isFinite(p.Start) || !isFinite(p.End) {
		return fmt.Errorf("%w: start/end must be finite, got %g, %g", commerr.ErrInvalidArgument, p.Start, p.End)
	}

	return nil
}

func (p *Preset) Sequence() (*easing.Sequence, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n, _ := easing.ParseName(p.Name)

	return easing.Ease(n, p.Start, p.End, p.Steps), nil
}

type Storage interface {
	Load(key string) (*Preset, error)
	Save(key string, p *Preset) error
	Remove(key string) error
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
