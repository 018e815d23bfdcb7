// Package region holds the per-region field applicability table: which
// financial fields exist in each market, what they are called there, and
// whether they apply to sale listings, rentals, or both.
package region

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"listmate/internal/model"
)

//go:embed regions.yaml
var defaultTable []byte

// DefaultRegion is assumed when a request does not name one.
const DefaultRegion = "US"

// FieldOrder fixes the order in which region fields appear in prompts and
// listings. Map iteration order is random; output must not be.
var FieldOrder = []string{
	"hoa_fees",
	"property_taxes",
	"council_tax",
	"rates",
	"strata_fees",
	"security_deposit",
	"billing_cycle",
	"lease_term",
}

// Field describes one financial field in one region.
type Field struct {
	Label string `yaml:"label"`
	Unit  string `yaml:"unit"`
	Sale  bool   `yaml:"sale"`
	Rent  bool   `yaml:"rent"`
}

// AppliesTo reports whether the field is shown for the given listing type.
func (f Field) AppliesTo(t model.ListingType) bool {
	if t == model.ListingTypeRent {
		return f.Rent
	}
	return f.Sale
}

// Config describes one supported region.
type Config struct {
	Code        string           `yaml:"-"`
	Name        string           `yaml:"name"`
	Currency    string           `yaml:"currency"`
	Symbol      string           `yaml:"symbol"`
	AddressHint string           `yaml:"address_hint"`
	Fields      map[string]Field `yaml:"fields"`
}

// FieldsFor returns the field keys applicable to the listing type, in
// FieldOrder.
func (c Config) FieldsFor(t model.ListingType) []string {
	keys := make([]string, 0, len(c.Fields))
	for _, key := range FieldOrder {
		f, ok := c.Fields[key]
		if !ok {
			continue
		}
		if f.AppliesTo(t) {
			keys = append(keys, key)
		}
	}
	return keys
}

// Table maps region codes to their configuration.
type Table struct {
	Regions map[string]Config `yaml:"regions"`
}

// Load reads a region table from path, or the embedded defaults when path
// is empty.
func Load(path string) (*Table, error) {
	data := defaultTable
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read region table: %w", err)
		}
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse region table: %w", err)
	}
	if len(t.Regions) == 0 {
		return nil, fmt.Errorf("region table is empty")
	}
	if _, ok := t.Regions[DefaultRegion]; !ok {
		return nil, fmt.Errorf("region table missing default region %s", DefaultRegion)
	}
	for code, cfg := range t.Regions {
		cfg.Code = code
		t.Regions[code] = cfg
	}
	return &t, nil
}

// MustLoad loads the embedded defaults and panics on failure. The embedded
// table is part of the binary, so failure is a programming error.
func MustLoad() *Table {
	t, err := Load("")
	if err != nil {
		panic(err)
	}
	return t
}

// Get returns the configuration for code, falling back to the default
// region when the code is unknown or empty.
func (t *Table) Get(code string) Config {
	if cfg, ok := t.Regions[code]; ok {
		return cfg
	}
	return t.Regions[DefaultRegion]
}

// Known reports whether code names a supported region.
func (t *Table) Known(code string) bool {
	_, ok := t.Regions[code]
	return ok
}

// Codes returns the supported region codes in sorted order.
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.Regions))
	for code := range t.Regions {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
