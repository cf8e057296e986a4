package curve

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasing/easing"
)

// Curves is a registry of named easing presets. Presets are written
// through to the storage, their sampled values are cached for cacheDuration.
type Curves struct {
	logger l.Wrapper

	storage Storage

	presetsLock sync.RWMutex
	presets     map[string]*Preset

	cachedSamples *cache.Cache
}

func NewCurves(storage Storage, cacheDuration time.Duration, logger l.Wrapper) *Curves {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "Curves"))

	if storage == nil {
		logger.Debug("no storage, presets are kept in memory only")
	}

	if cacheDuration <= 0 {
		cacheDuration = time.Minute
	}

	return &Curves{
		logger:        logger,
		storage:       storage,
		presets:       make(map[string]*Preset),
		cachedSamples: cache.New(cacheDuration, cacheDuration*2),
	}
}

func (impl *Curves) Set(key string, p *Preset) error {
	if key == "" {
		return commerr.ErrInvalidArgument
	}

	if err := p.Validate(); err != nil {
		impl.logger.WithFields(l.StringField("key", key), l.ErrorField(err)).Error("invalid preset")

		return err
	}

	cp := *p

	impl.presetsLock.Lock()
	defer impl.presetsLock.Unlock()

	if impl.storage != nil {
		if err := impl.storage.Save(key, &cp); err != nil {
			impl.logger.WithFields(l.StringField("key", key), l.ErrorField(err)).Error("save preset failed")

			return err
		}
	}

	impl.presets[key] = &cp
	impl.cachedSamples.Delete(key)

	return nil
}

// Get returns a copy of the preset stored under key. Presets missing from
// memory are looked up in the storage.
func (impl *Curves) Get(key string) (*Preset, error) {
	p, err := impl.get(key)
	if err != nil {
		return nil, err
	}

	cp := *p

	return &cp, nil
}

func (impl *Curves) get(key string) (*Preset, error) {
	impl.presetsLock.RLock()
	p, ok := impl.presets[key]
	impl.presetsLock.RUnlock()

	if ok {
		return p, nil
	}

	if impl.storage == nil {
		return nil, commerr.ErrNotFound
	}

	// Set and Remove hold the write lock around their storage calls too, so
	// a preset removed meanwhile cannot be loaded back into memory.
	impl.presetsLock.Lock()
	defer impl.presetsLock.Unlock()

	if p, ok = impl.presets[key]; ok {
		return p, nil
	}

	p, err := impl.storage.Load(key)
	if err != nil {
		if !errors.Is(err, commerr.ErrNotFound) {
			impl.logger.WithFields(l.StringField("key", key), l.ErrorField(err)).Error("load preset failed")
		}

		return nil, err
	}

	if err = p.Validate(); err != nil {
		impl.logger.WithFields(l.StringField("key", key), l.ErrorField(err)).Error("stored preset is invalid")

		return nil, err
	}

	impl.presets[key] = p

	return p, nil
}

func (impl *Curves) Remove(key string) error {
	impl.presetsLock.Lock()
	defer impl.presetsLock.Unlock()

	if impl.storage != nil {
		if err := impl.storage.Remove(key); err != nil {
			impl.logger.WithFields(l.StringField("key", key), l.ErrorField(err)).Error("remove preset failed")

			return err
		}
	}

	delete(impl.presets, key)
	impl.cachedSamples.Delete(key)

	return nil
}

// Keys returns the keys of the presets held in memory, sorted.
func (impl *Curves) Keys() []string {
	impl.presetsLock.RLock()
	keys := make([]string, 0, len(impl.presets))

	for key := range impl.presets {
		keys = append(keys, key)
	}
	impl.presetsLock.RUnlock()

	sort.Strings(keys)

	return keys
}

// Sequence returns a fresh sequence for the preset stored under key.
func (impl *Curves) Sequence(key string) (*easing.Sequence, error) {
	p, err := impl.get(key)
	if err != nil {
		return nil, err
	}

	return p.Sequence()
}

// Samples returns all values of the preset stored under key. The caller
// owns the returned slice.
func (impl *Curves) Samples(key string) ([]float64, error) {
	if i, ok := impl.cachedSamples.Get(key); ok {
		if vs, ok := i.([]float64); ok {
			return append([]float64(nil), vs...), nil
		}
	}

	p, err := impl.get(key)
	if err != nil {
		return nil, err
	}

	seq, err := p.Sequence()
	if err != nil {
		return nil, err
	}

	vs := seq.Collect()

	impl.presetsLock.RLock()
	if cur, ok := impl.presets[key]; ok && cur == p {
		impl.cachedSamples.Set(key, vs, cache.DefaultExpiration)

		impl.logger.WithFields(l.StringField("key", key), l.IntField("count", len(vs))).Debug("samples cached")
	}
	impl.presetsLock.RUnlock()

	return append([]float64(nil), vs...), nil
}
