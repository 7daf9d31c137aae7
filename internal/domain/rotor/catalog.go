package rotor

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// ErrUnknownWheel is returned when a wheel name is not in the catalog.
var ErrUnknownWheel = errors.New("unknown wheel")

// ErrUnknownReflector is returned when a reflector name is not in the catalog.
var ErrUnknownReflector = errors.New("unknown reflector")

// WheelSpec is the static description of a wheel.
type WheelSpec struct {
	Name   string `yaml:"name"`
	Wiring string `yaml:"wiring"`
	Pegs   string `yaml:"pegs"`
}

// ReflectorSpec is the static description of a reflector.
type ReflectorSpec struct {
	Name  string `yaml:"name"`
	Pairs string `yaml:"pairs"`
}

// CatalogDocument is the on-disk shape of a wiring catalog.
type CatalogDocument struct {
	Wheels     []WheelSpec     `yaml:"wheels"`
	Reflectors []ReflectorSpec `yaml:"reflectors"`
}

// Catalog is an immutable set of named, validated wheel and reflector
// wirings. It is safe to share between goroutines.
type Catalog struct {
	wheelNames     []string
	reflectorNames []string
	wheels         map[string]catalogWheel
	reflectors     map[string]catalogReflector
}

type catalogWheel struct {
	spec   WheelSpec
	wiring Permutation
}

type catalogReflector struct {
	spec   ReflectorSpec
	wiring Permutation
}

// DefaultDocument holds the historical wheel and reflector tables.
var DefaultDocument = CatalogDocument{
	Wheels: []WheelSpec{
		{Name: "I", Wiring: "ekmflgdqvzntowyhxuspaibrcj", Pegs: "q"},
		{Name: "II", Wiring: "ajdksiruxblhwtmcqgznpyfvoe", Pegs: "e"},
		{Name: "III", Wiring: "bdfhjlcprtxvznyeiwgakmusqo", Pegs: "v"},
		{Name: "IV", Wiring: "esovpzjayquirhxlnftgkdcmwb", Pegs: "j"},
		{Name: "V", Wiring: "vzbrgityupsdnhlxawmjqofeck", Pegs: "z"},
		{Name: "VI", Wiring: "jpgvoumfyqbenhzrdkasxlictw", Pegs: "zm"},
		{Name: "VII", Wiring: "nzjhgrcxmyswboufaivlpekqdt", Pegs: "zm"},
		{Name: "VIII", Wiring: "fkqhtlxocbjspdzramewniuygv", Pegs: "zm"},
		{Name: "beta", Wiring: "leyjvcnixwpbqmdrtakzgfuhos"},
		{Name: "gamma", Wiring: "fsokanuerhmbtiycwlqpzxvgjd"},
	},
	Reflectors: []ReflectorSpec{
		{Name: "A", Pairs: "ae bj cm dz fl gy hx iv kw nr oq pu st"},
		{Name: "B", Pairs: "ay br cu dh eq fs gl ip jx kn mo tz vw"},
		{Name: "C", Pairs: "af bv cp dj ei go hy kr lz mx nw tq su"},
	},
}

// DefaultCatalog returns the catalog built from DefaultDocument.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultDocument)
	if err != nil {
		panic(fmt.Sprintf("default catalog: %v", err))
	}

	return c
}

// ParseCatalog reads a YAML catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc CatalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return NewCatalog(doc)
}

// NewCatalog validates every entry of doc.
func NewCatalog(doc CatalogDocument) (*Catalog, error) {
	c := &Catalog{
		wheels:     make(map[string]catalogWheel, len(doc.Wheels)),
		reflectors: make(map[string]catalogReflector, len(doc.Reflectors)),
	}

	for _, spec := range doc.Wheels {
		if _, dup := c.wheels[spec.Name]; dup || spec.Name == "" {
			return nil, fmt.Errorf("%w: wheel name %q missing or repeated", ErrInvalidSpecification, spec.Name)
		}

		wiring, err := NewPermutation(spec.Wiring)
		if err != nil {
			return nil, fmt.Errorf("wheel %s: %w", spec.Name, err)
		}

		if _, err := NewWheel(wiring, spec.Pegs, 1); err != nil {
			return nil, fmt.Errorf("wheel %s: %w", spec.Name, err)
		}

		c.wheels[spec.Name] = catalogWheel{spec: spec, wiring: wiring}
		c.wheelNames = append(c.wheelNames, spec.Name)
	}

	for _, spec := range doc.Reflectors {
		if _, dup := c.reflectors[spec.Name]; dup || spec.Name == "" {
			return nil, fmt.Errorf("%w: reflector name %q missing or repeated", ErrInvalidSpecification, spec.Name)
		}

		wiring, err := NewReflector(spec.Pairs)
		if err != nil {
			return nil, fmt.Errorf("reflector %s: %w", spec.Name, err)
		}

		c.reflectors[spec.Name] = catalogReflector{spec: spec, wiring: wiring}
		c.reflectorNames = append(c.reflectorNames, spec.Name)
	}

	return c, nil
}

// WheelNames lists wheel names in catalog order.
func (c *Catalog) WheelNames() []string {
	return slices.Clone(c.wheelNames)
}

// ReflectorNames lists reflector names in catalog order.
func (c *Catalog) ReflectorNames() []string {
	return slices.Clone(c.reflectorNames)
}

// WheelSpec returns the named wheel's specification.
func (c *Catalog) WheelSpec(name string) (WheelSpec, error) {
	w, ok := c.wheels[name]
	if !ok {
		return WheelSpec{}, fmt.Errorf("%w: %q", ErrUnknownWheel, name)
	}

	return w.spec, nil
}

// ReflectorSpec returns the named reflector's specification.
func (c *Catalog) ReflectorSpec(name string) (ReflectorSpec, error) {
	r, ok := c.reflectors[name]
	if !ok {
		return ReflectorSpec{}, fmt.Errorf("%w: %q", ErrUnknownReflector, name)
	}

	return r.spec, nil
}

// WheelWiring returns the named wheel's core wiring.
func (c *Catalog) WheelWiring(name string) (Permutation, error) {
	w, ok := c.wheels[name]
	if !ok {
		return Permutation{}, fmt.Errorf("%w: %q", ErrUnknownWheel, name)
	}

	return w.wiring, nil
}

// Reflector returns the named reflector.
func (c *Catalog) Reflector(name string) (Permutation, error) {
	r, ok := c.reflectors[name]
	if !ok {
		return Permutation{}, fmt.Errorf("%w: %q", ErrUnknownReflector, name)
	}

	return r.wiring, nil
}

// Wheel builds a fresh wheel for the named wiring and ring setting.
func (c *Catalog) Wheel(name string, ringSetting int) (*Wheel, error) {
	w, ok := c.wheels[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWheel, name)
	}

	return NewWheel(w.wiring, w.spec.Pegs, ringSetting)
}

// Settings selects and configures the parts of a machine.
type Settings struct {
	Reflector string
	Wheels    [3]string
	Rings     [3]int
	Plugboard string
}

// Machine builds a machine from settings, with every window showing 'a'.
func (c *Catalog) Machine(settings Settings) (*Machine, error) {
	reflector, err := c.Reflector(settings.Reflector)
	if err != nil {
		return nil, err
	}

	var wheels [3]*Wheel

	for i, name := range settings.Wheels {
		wheel, err := c.Wheel(name, settings.Rings[i])
		if err != nil {
			return nil, err
		}

		wheels[i] = wheel
	}

	plugboard, err := NewPlugboard(settings.Plugboard)
	if err != nil {
		return nil, fmt.Errorf("plugboard: %w", err)
	}

	return NewMachine(reflector, wheels[0], wheels[1], wheels[2], plugboard), nil
}
