// Package catalog describes prototypes and spawn requests in YAML or JSON and
// feeds them through a prototype.Registry.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/bestiary/internal/core/prototype"
)

//go:embed default.yaml
var defaultCatalog []byte

var (
	ErrUnknownKind        = errors.New("unknown prototype kind")
	ErrMissingName        = errors.New("prototype name is required")
	ErrDuplicatePrototype = errors.New("duplicate prototype")
)

// Catalog lists prototypes to register and monsters to spawn from them.
type Catalog struct {
	Prototypes []PrototypeSpec `json:"prototypes" yaml:"prototypes"`
	Spawns     []SpawnSpec     `json:"spawns" yaml:"spawns"`
}

type PrototypeSpec struct {
	Name       string         `json:"name" yaml:"name"`
	Kind       string         `json:"kind" yaml:"kind"`
	Attributes map[string]any `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

type SpawnSpec struct {
	Label     string         `json:"label,omitempty" yaml:"label,omitempty"`
	Prototype string         `json:"prototype" yaml:"prototype"`
	Overrides map[string]any `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// Spawned is one monster produced by Spawn.
type Spawned struct {
	Label   string
	Monster prototype.Prototype
}

var kinds = map[string]func() prototype.Prototype{
	prototype.KindMonster:        func() prototype.Prototype { return &prototype.Monster{} },
	prototype.KindSpecialMonster: func() prototype.Prototype { return &prototype.SpecialMonster{} },
}

// Kinds returns the prototype kinds a catalog may reference.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for k := range kinds {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LoadJSON loads a catalog from a JSON reader.
func LoadJSON(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadYAML loads a catalog from a YAML reader.
func LoadYAML(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadFile picks the decoder from the file extension; anything other than
// .json is read as YAML.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c *Catalog
	if strings.EqualFold(filepath.Ext(path), ".json") {
		c, err = LoadJSON(f)
	} else {
		c, err = LoadYAML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Default returns the built-in catalog: two prototypes and four spawns.
func Default() *Catalog {
	c, err := LoadYAML(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Build registers every prototype of the catalog. Nothing is registered when
// any prototype is invalid.
func (c *Catalog) Build(reg *prototype.Registry) error {
	built := make([]prototype.Prototype, len(c.Prototypes))
	seen := make(map[string]struct{}, len(c.Prototypes))
	for i, spec := range c.Prototypes {
		if spec.Name == "" {
			return fmt.Errorf("prototype #%d: %w", i, ErrMissingName)
		}
		if _, dup := seen[spec.Name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicatePrototype, spec.Name)
		}
		seen[spec.Name] = struct{}{}

		p, err := spec.build()
		if err != nil {
			return fmt.Errorf("prototype %s: %w", spec.Name, err)
		}
		built[i] = p
	}
	for i, p := range built {
		reg.Register(c.Prototypes[i].Name, p)
	}
	return nil
}

func (s PrototypeSpec) build() (prototype.Prototype, error) {
	newFn, ok := kinds[s.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}
	p := newFn()

	keys := make([]string, 0, len(s.Attributes))
	for k := range s.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := p.Set(k, s.Attributes[k]); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Spawn creates every monster in the spawn list, in order. It stops at the
// first failure and returns the *prototype.CreationError unchanged.
func (c *Catalog) Spawn(reg *prototype.Registry) ([]Spawned, error) {
	out := make([]Spawned, 0, len(c.Spawns))
	for _, s := range c.Spawns {
		m, err := reg.Create(s.Prototype, s.Overrides)
		if err != nil {
			return nil, err
		}
		label := s.Label
		if label == "" {
			label = s.Prototype
		}
		out = append(out, Spawned{Label: label, Monster: m})
	}
	return out, nil
}
