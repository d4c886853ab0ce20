// Package config reads and writes the software definitions file.
package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ImSingee/go-ex/ee"
	"github.com/ysmood/gson"

	"github.com/aboe026/software-update-checker-sub000/internal/migrations"
	"github.com/aboe026/software-update-checker-sub000/internal/software"
)

const (
	AppDirName  = "software-update-checker"
	ConfigFile  = "config.json"
	versionKey  = "version"
	softwareKey = "software"
)

// DefaultPath is <user config dir>/software-update-checker/config.json
func DefaultPath() (string, error) {
	d, err := os.UserConfigDir()
	if err != nil {
		return "", ee.Wrap(err, "cannot get user config directory")
	}

	return filepath.Join(d, AppDirName, ConfigFile), nil
}

type file struct {
	Version  int                    `json:"version"`
	Software []*software.Definition `json:"software"`
}

type Store struct {
	Path string
}

func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load returns the stored definitions upgraded to the current schema.
//
// A missing or blank file holds no definitions. Files written by an older
// schema are rewritten after migration.
func (s *Store) Load() ([]*software.Definition, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if IsNotExist(err) {
			slog.Debug("Config file does not exist", "path", s.Path)
			return nil, nil
		}
		return nil, ee.Wrapf(err, "cannot read config file %s", s.Path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	records, version, err := decodeRecords(data)
	if err != nil {
		return nil, ee.Wrapf(err, "invalid config file %s", s.Path)
	}

	records, err = migrations.Migrate(records, version)
	if err != nil {
		return nil, ee.Wrapf(err, "cannot migrate config file %s", s.Path)
	}

	definitions := make([]*software.Definition, 0, len(records))
	for i, record := range records {
		d, err := decodeDefinition(record)
		if err != nil {
			return nil, ee.Wrapf(err, "invalid software #%d in config file %s", i+1, s.Path)
		}
		definitions = append(definitions, d)
	}

	if version < migrations.Current && len(definitions) != 0 {
		slog.Debug("Persist migrated config", "path", s.Path, "from", version, "to", migrations.Current)

		if err := s.Save(definitions); err != nil {
			return nil, ee.Wrap(err, "cannot save migrated config")
		}
	}

	return definitions, nil
}

func decodeRecords(data []byte) ([]migrations.Record, int, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, 0, err
	}

	switch root := root.(type) {
	case []any: // oldest layout: a bare list
		records, err := asRecords(root)
		return records, 0, err
	case map[string]any:
		c := gson.New(root).Map()

		version := 0
		if v := c[versionKey].Val(); v != nil {
			f, ok := v.(float64)
			if !ok || f != float64(int(f)) {
				return nil, 0, ee.Errorf("invalid `%s` value %v", versionKey, v)
			}
			version = int(f)
		}

		list := c[softwareKey].Val()
		if list == nil {
			return nil, version, nil
		}
		items, ok := list.([]any)
		if !ok {
			return nil, 0, ee.Errorf("invalid `%s` value: must be a list", softwareKey)
		}

		records, err := asRecords(items)
		return records, version, err
	default:
		return nil, 0, ee.New("config must be an object or a list")
	}
}

func asRecords(items []any) ([]migrations.Record, error) {
	objects := make([]map[string]any, len(items))
	for i, item := range items {
		o, ok := item.(map[string]any)
		if !ok {
			return nil, ee.Errorf("software #%d is not an object", i+1)
		}
		objects[i] = o
	}

	return migrations.AsRecords(objects), nil
}

func decodeDefinition(record migrations.Record) (*software.Definition, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	var d software.Definition
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Save writes definitions at the current schema version, replacing the file atomically
func (s *Store) Save(definitions []*software.Definition) error {
	if definitions == nil {
		definitions = []*software.Definition{}
	}

	data, err := json.MarshalIndent(file{Version: migrations.Current, Software: definitions}, "", "  ")
	if err != nil {
		return ee.Wrap(err, "cannot encode config")
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return ee.Wrapf(err, "cannot create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.Path)+".*")
	if err != nil {
		return ee.Wrap(err, "cannot create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return ee.Wrapf(err, "cannot write data to %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		return ee.Wrapf(err, "cannot save and close file %s", tmp.Name())
	}

	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return ee.Wrapf(err, "cannot replace %s", s.Path)
	}

	return nil
}

// Get returns the definition named name
func (s *Store) Get(name string) (*software.Definition, error) {
	definitions, err := s.Load()
	if err != nil {
		return nil, err
	}

	if i := indexOf(definitions, name); i >= 0 {
		return definitions[i], nil
	}
	return nil, ee.Wrapf(ErrNotFound, "%q", name)
}

// Add appends d, names are unique
func (s *Store) Add(d *software.Definition) error {
	definitions, err := s.Load()
	if err != nil {
		return err
	}

	if indexOf(definitions, d.Name) >= 0 {
		return ee.Wrapf(ErrDuplicate, "%q", d.Name)
	}

	return s.Save(append(definitions, d))
}

// Replace swaps the definition named name for d, keeping its position
func (s *Store) Replace(name string, d *software.Definition) error {
	definitions, err := s.Load()
	if err != nil {
		return err
	}

	i := indexOf(definitions, name)
	if i < 0 {
		return ee.Wrapf(ErrNotFound, "%q", name)
	}
	if d.Name != name && indexOf(definitions, d.Name) >= 0 {
		return ee.Wrapf(ErrDuplicate, "%q", d.Name)
	}

	definitions[i] = d
	return s.Save(definitions)
}

// Remove deletes the named definitions, all of them must exist
func (s *Store) Remove(names ...string) error {
	definitions, err := s.Load()
	if err != nil {
		return err
	}

	for _, name := range names {
		i := indexOf(definitions, name)
		if i < 0 {
			return ee.Wrapf(ErrNotFound, "%q", name)
		}
		definitions = append(definitions[:i], definitions[i+1:]...)
	}

	return s.Save(definitions)
}

func indexOf(definitions []*software.Definition, name string) int {
	for i, d := range definitions {
		if d.Name == name {
			return i
		}
	}
	return -1
}
