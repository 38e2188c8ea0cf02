package config

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"gitlab.com/bhajan-roster.net/internal/domain"
)

type CatalogConfig struct {
	// File is an optional YAML deity list; empty means the built-in catalog.
	File string
	// Locale drives singer-name collation.
	Locale string
}

func NewCatalogConfig() *CatalogConfig {
	return &CatalogConfig{
		File:   os.Getenv("CATALOG_FILE"),
		Locale: getEnv("COLLATION_LOCALE", "en"),
	}
}

type catalogFile struct {
	Deities []domain.DeityInfo `yaml:"deities"`
}

// LoadCatalog returns the built-in catalog, or the one described by File:
//
//	deities:
//	  - name: Ganesha
//	    mandatory: true
func (c *CatalogConfig) LoadCatalog() (domain.Catalog, error) {
	if c.File == "" {
		return domain.DefaultCatalog(), nil
	}
	data, err := os.ReadFile(c.File)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Catalog{}, fmt.Errorf("parse catalog file %s: %w", c.File, err)
	}
	catalog, err := domain.NewCatalog(file.Deities)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("catalog file %s: %w", c.File, err)
	}
	return catalog, nil
}

// CollationTag parses Locale, falling back to English.
func (c *CatalogConfig) CollationTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.English
	}
	return tag
}
