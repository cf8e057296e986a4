package curve

import (
	"errors"
	"math"
	"os"
	"path"
	"sync"
	"testing"
	"time"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/stretchr/testify/assert"
)

func TestPresetValidate(t *testing.T) {
	assert.Nil(t, (&Preset{Name: "cubic_out", Start: 0, End: 1, Steps: 4}).Validate())
	assert.Nil(t, (&Preset{Name: "linear", Steps: 0}).Validate())

	for _, p := range []*Preset{
		nil,
		{Name: "bounce_in", Steps: 3},
		{Name: "quad_in", Start: math.NaN(), End: 1, Steps: 3},
		{Name: "quad_in", Start: 0, End: math.Inf(1), Steps: 3},
	} {
		assert.True(t, errors.Is(p.Validate(), commerr.ErrInvalidArgument))
	}
}

func TestPresetSequence(t *testing.T) {
	seq, err := (&Preset{Name: "quad_in", Start: 0, End: 10, Steps: 3}).Sequence()
	assert.Nil(t, err)
	assert.Equal(t, []float64{0, 2.5, 10}, seq.Collect())

	_, err = (&Preset{Name: "nope"}).Sequence()
	assert.NotNil(t, err)
}

func TestPresetFromMap(t *testing.T) {
	p, err := PresetFromMap(map[string]interface{}{
		"name":  "Sin-InOut",
		"start": "-1",
		"end":   1,
		"steps": 5.0,
	})
	assert.Nil(t, err)
	assert.EqualValues(t, &Preset{Name: "Sin-InOut", Start: -1, End: 1, Steps: 5}, p)

	_, err = PresetFromMap(map[string]interface{}{
		"name":  "quad_in",
		"start": "abc",
		"end":   1,
		"steps": 5,
	})
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	_, err = PresetFromMap(map[string]interface{}{
		"name":  "quad_in",
		"start": 0,
		"end":   1,
		"steps": -5,
	})
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	_, err = PresetFromMap(map[string]interface{}{
		"name":  "wobble",
		"start": 0,
		"end":   1,
		"steps": 5,
	})
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}

func TestCommStorage(t *testing.T) {
	root := path.Join(t.TempDir(), "presets")
	stg := NewCommonStorage(root)

	_, err := stg.Load("fade")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	p := &Preset{Name: "exp_out", Start: 1.5, End: -2.25, Steps: 30}
	assert.Nil(t, stg.Save("fade", p))

	_, err = os.Stat(path.Join(root, "fade.yaml"))
	assert.Nil(t, err)

	loaded, err := stg.Load("fade")
	assert.Nil(t, err)
	assert.Equal(t, p, loaded)

	assert.Nil(t, stg.Remove("fade"))
	assert.Nil(t, stg.Remove("fade"))

	_, err = stg.Load("fade")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))
}

func TestCurves(t *testing.T) {
	c := NewCurves(NewCommonStorage(t.TempDir()), time.Minute, l.NewConsoleLoggerWrapper())

	_, err := c.Get("slide")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	assert.True(t, errors.Is(c.Set("", &Preset{Name: "linear"}), commerr.ErrInvalidArgument))
	assert.True(t, errors.Is(c.Set("slide", &Preset{Name: "jump"}), commerr.ErrInvalidArgument))

	assert.Nil(t, c.Set("slide", &Preset{Name: "quad_in", Start: 0, End: 10, Steps: 3}))
	assert.Nil(t, c.Set("fade", &Preset{Name: "linear", Start: 0, End: 1000, Steps: 10}))
	assert.Equal(t, []string{"fade", "slide"}, c.Keys())

	vs, err := c.Samples("slide")
	assert.Nil(t, err)
	assert.Equal(t, []float64{0, 2.5, 10}, vs)

	vs[1] = 42

	vs, err = c.Samples("slide")
	assert.Nil(t, err)
	assert.Equal(t, []float64{0, 2.5, 10}, vs)

	assert.Nil(t, c.Set("slide", &Preset{Name: "quad_out", Start: 0, End: 10, Steps: 3}))

	vs, err = c.Samples("slide")
	assert.Nil(t, err)
	assert.Equal(t, []float64{0, 7.5, 10}, vs)

	seq, err := c.Sequence("fade")
	assert.Nil(t, err)
	assert.Equal(t, 10, seq.Len())

	p, err := c.Get("fade")
	assert.Nil(t, err)
	p.End = 1

	p, err = c.Get("fade")
	assert.Nil(t, err)
	assert.Equal(t, 1000.0, p.End)

	assert.Nil(t, c.Remove("slide"))

	_, err = c.Samples("slide")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))
	assert.Equal(t, []string{"fade"}, c.Keys())
}

func TestCurvesReload(t *testing.T) {
	root := t.TempDir()

	c1 := NewCurves(NewCommonStorage(root), 0, nil)
	assert.Nil(t, c1.Set("bounce", &Preset{Name: "cubic_inout", Start: -1, End: 1, Steps: 5}))

	c2 := NewCurves(NewCommonStorage(root), 0, nil)
	assert.Empty(t, c2.Keys())

	vs, err := c2.Samples("bounce")
	assert.Nil(t, err)
	assert.Equal(t, []float64{-1, -0.875, 0, 0.875, 1}, vs)
	assert.Equal(t, []string{"bounce"}, c2.Keys())
}

func TestCurvesMemoryOnly(t *testing.T) {
	c := NewCurves(nil, time.Second, nil)

	assert.Nil(t, c.Set("a", &Preset{Name: "sin_out", Start: 0, End: 1, Steps: 2}))

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				vs, err := c.Samples("a")
				assert.Nil(t, err)
				assert.Equal(t, []float64{0, 1}, vs)
			}
		}()
	}

	wg.Wait()

	assert.Nil(t, c.Remove("a"))
	assert.Nil(t, c.Remove("a"))

	_, err := c.Sequence("a")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))
}

func TestPresetStepsBound(t *testing.T) {
	assert.Nil(t, (&Preset{Name: "linear", Steps: MaxSteps}).Validate())
	assert.True(t, errors.Is((&Preset{Name: "linear", Steps: MaxSteps + 1}).Validate(), commerr.ErrInvalidArgument))

	_, err := PresetFromMap(map[string]interface{}{
		"name":  "quad_in",
		"start": 0,
		"end":   1,
		"steps": uint64(math.MaxUint64),
	})
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	root := t.TempDir()
	err = os.WriteFile(path.Join(root, "huge.yaml"),
		[]byte("name: linear\nstart: 0\nend: 1\nsteps: 18446744073709551615\n"), 0600)
	assert.Nil(t, err)

	c := NewCurves(NewCommonStorage(root), 0, nil)

	assert.NotPanics(t, func() {
		_, err = c.Samples("huge")
	})
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
	assert.Empty(t, c.Keys())
}

func TestCommStorageKeys(t *testing.T) {
	base := t.TempDir()
	root := path.Join(base, "presets")
	s := NewCommonStorage(root)

	p := &Preset{Name: "linear", Steps: 2}

	for _, key := range []string{"", ".", "..", "../escape", "a/b", `a\b`} {
		assert.True(t, errors.Is(s.Save(key, p), commerr.ErrInvalidArgument), key)

		_, err := s.Load(key)
		assert.True(t, errors.Is(err, commerr.ErrInvalidArgument), key)
		assert.True(t, errors.Is(s.Remove(key), commerr.ErrInvalidArgument), key)
	}

	_, err := os.Stat(path.Join(base, "escape.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	c := NewCurves(s, 0, nil)
	assert.True(t, errors.Is(c.Set("../escape", p), commerr.ErrInvalidArgument))
	assert.Empty(t, c.Keys())
}

func TestCommStorageReadError(t *testing.T) {
	root := t.TempDir()
	assert.Nil(t, os.Mkdir(path.Join(root, "dir.yaml"), 0700))

	_, err := NewCommonStorage(root).Load("dir")
	assert.NotNil(t, err)
	assert.False(t, errors.Is(err, commerr.ErrNotFound))
}

func TestCurvesGetRemoveConcurrent(t *testing.T) {
	root := t.TempDir()
	stg := NewCommonStorage(root)
	c := NewCurves(stg, 0, nil)

	p := &Preset{Name: "cubic_out", Start: 0, End: 1, Steps: 4}

	for round := 0; round < 200; round++ {
		assert.Nil(t, stg.Save("slide", p))

		var wg sync.WaitGroup

		wg.Add(2)

		go func() {
			defer wg.Done()

			_, _ = c.Get("slide")
		}()

		go func() {
			defer wg.Done()

			assert.Nil(t, c.Remove("slide"))
		}()

		wg.Wait()

		assert.Empty(t, c.Keys(), "round %d", round)

		_, err := c.Get("slide")
		assert.True(t, errors.Is(err, commerr.ErrNotFound), "round %d", round)
	}
}
