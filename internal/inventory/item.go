package inventory

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ItemType classifies shop items.
type ItemType string

const (
	TypePotion    ItemType = "potion"
	TypeWeapon    ItemType = "weapon"
	TypeArmor     ItemType = "armor"
	TypeAccessory ItemType = "accessory"
)

// Item is a purchasable shop entry.
type Item struct {
	Name         string   `yaml:"name"`
	Type         ItemType `yaml:"type"`
	Price        int      `yaml:"price"`
	AttackBonus  int      `yaml:"attackBonus"`
	DefenseBonus int      `yaml:"defenseBonus"`
	HealAmount   int      `yaml:"healAmount"`
	MaxHPBonus   int      `yaml:"maxHPBonus"`
	Description  string   `yaml:"description"`
}

// Catalog is the list of items the shop sells.
type Catalog struct {
	Items []Item `yaml:"items"`
}

// LoadCatalog loads the shop catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	b, err := os.ReadFile(filepath.Clean(path)) //nolint:gosec // path comes from trusted config
	if err != nil {
		return nil, err
	}
	return ParseCatalog(b)
}

// ParseCatalog decodes catalog YAML.
func ParseCatalog(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	seen := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		if it.Name == "" {
			return nil, fmt.Errorf("parse catalog: item without name")
		}
		if seen[it.Name] {
			return nil, fmt.Errorf("parse catalog: duplicate item %q", it.Name)
		}
		seen[it.Name] = true
	}
	return &c, nil
}

// Find returns the item with the given name.
func (c *Catalog) Find(name string) (Item, bool) {
	if c == nil {
		return Item{}, false
	}
	for _, it := range c.Items {
		if it.Name == name {
			return it, true
		}
	}
	return Item{}, false
}

// DefaultPotion returns the first potion in the catalog. It is used to
// rebuild saved potion stacks, which only persist a count.
func (c *Catalog) DefaultPotion() (Item, bool) {
	if c == nil {
		return Item{}, false
	}
	for _, it := range c.Items {
		if it.Type == TypePotion {
			return it, true
		}
	}
	return Item{}, false
}
