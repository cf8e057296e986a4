package curve

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// PresetFromMap builds a preset from loosely typed values, e.g. a decoded
// JSON object or a flag set: {"name": "cubic_out", "start": "0", "end": 10, "steps": 5.0}.
func PresetFromMap(m map[string]interface{}) (p *Preset, err error) {
	name, err := cast.ToStringE(m["name"])
	if err != nil {
		err = fmt.Errorf("%w: name: %v", commerr.ErrInvalidArgument, err)

		return
	}

	start, err := cast.ToFloat64E(m["start"])
	if err != nil {
		err = fmt.Errorf("%w: start: %v", commerr.ErrInvalidArgument, err)

		return
	}

	end, err := cast.ToFloat64E(m["end"])
	if err != nil {
		err = fmt.Errorf("%w: end: %v", commerr.ErrInvalidArgument, err)

		return
	}

	steps, err := cast.ToUint64E(m["steps"])
	if err != nil {
		err = fmt.Errorf("%w: steps: %v", commerr.ErrInvalidArgument, err)

		return
	}

	p = &Preset{
		Name:  name,
		Start: start,
		End:   end,
		Steps: steps,
	}

	err = p.Validate()
	if err != nil {
		p = nil
	}

	return
}

//
//
//

// NewCommonStorage keeps one YAML file per key below root.
func NewCommonStorage(root string) *CommStorage {
	return &CommStorage{
		root:    root,
		storage: rawfs.NewFSStorage(""),
	}
}

type CommStorage struct {
	root    string
	storage stg.FileStorage
}

// fileNameByKey keeps every key a plain file name below root.
func (s *CommStorage) fileNameByKey(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, "/\\") {
		return "", fmt.Errorf("%w: invalid key %q", commerr.ErrInvalidArgument, key)
	}

	return path.Join(s.root, key+".yaml"), nil
}

func (s *CommStorage) Load(key string) (p *Preset, err error) {
	fileName, err := s.fileNameByKey(key)
	if err != nil {
		return
	}

	d, err := s.storage.ReadFile(fileName)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = commerr.ErrNotFound
		}

		return
	}

	p = &Preset{}

	err = yaml.Unmarshal(d, p)
	if err != nil {
		p = nil
	}

	return
}

func (s *CommStorage) Save(key string, p *Preset) (err error) {
	fileName, err := s.fileNameByKey(key)
	if err != nil {
		return
	}

	_ = os.MkdirAll(s.root, 0700)

	d, err := yaml.Marshal(p)
	if err != nil {
		return
	}

	err = s.storage.WriteFile(fileName, d)

	return
}

func (s *CommStorage) Remove(key string) error {
	fileName, err := s.fileNameByKey(key)
	if err != nil {
		return err
	}

	err = os.Remove(fileName)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return err
}
