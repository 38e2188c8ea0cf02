package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DeityInfo is one entry of the deity catalog.
type DeityInfo struct {
	Name      string `json:"name" yaml:"name"`
	Mandatory bool   `json:"mandatory" yaml:"mandatory"`
}

// Catalog is the ordered, read-only list of deity slots. Position in the
// list is the performance rank of the slot.
type Catalog struct {
	deities []DeityInfo
	index   map[string]int
}

// NewCatalog validates and indexes an ordered deity list.
// Names must be non-empty and unique ignoring case.
func NewCatalog(deities []DeityInfo) (Catalog, error) {
	if len(deities) == 0 {
		return Catalog{}, errors.New("catalog has no deities")
	}
	c := Catalog{
		deities: make([]DeityInfo, 0, len(deities)),
		index:   make(map[string]int, len(deities)),
	}
	for _, d := range deities {
		name := strings.TrimSpace(d.Name)
		if name == "" {
			return Catalog{}, errors.New("catalog deity name is empty")
		}
		key := DeityKey(name)
		if _, dup := c.index[key]; dup {
			return Catalog{}, fmt.Errorf("catalog deity %q listed twice", name)
		}
		c.index[key] = len(c.deities)
		c.deities = append(c.deities, DeityInfo{Name: name, Mandatory: d.Mandatory})
	}
	return c, nil
}

// DefaultCatalog is the weekly session's deity order.
func DefaultCatalog() Catalog {
	c, _ := NewCatalog([]DeityInfo{
		{Name: "Ganesha", Mandatory: true},
		{Name: "Guru", Mandatory: true},
		{Name: "Mata", Mandatory: true},
		{Name: "SarvaDharma", Mandatory: true},
		{Name: "Sai", Mandatory: true},
		{Name: "Shiva", Mandatory: true},
		{Name: "Krishna", Mandatory: true},
		{Name: "Rama", Mandatory: true},
		{Name: "Vitthala", Mandatory: true},
		{Name: "Hanuman", Mandatory: false},
	})
	return c
}

// Lookup finds a deity ignoring case and returns its catalog entry and rank.
func (c Catalog) Lookup(name string) (DeityInfo, int, bool) {
	i, ok := c.index[DeityKey(name)]
	if !ok {
		return DeityInfo{}, 0, false
	}
	return c.deities[i], i, true
}

// Rank is the catalog index of name, or Len() for deities outside the catalog.
func (c Catalog) Rank(name string) int {
	if i, ok := c.index[DeityKey(name)]; ok {
		return i
	}
	return len(c.deities)
}

func (c Catalog) Len() int {
	return len(c.deities)
}

// Deities returns a copy of the catalog entries in rank order.
func (c Catalog) Deities() []DeityInfo {
	out := make([]DeityInfo, len(c.deities))
	copy(out, c.deities)
	return out
}
