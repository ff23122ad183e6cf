package inventory

import (
	"os"
	"path/filepath"
	"testing"
)

const testCatalogYAML = `
items:
  - name: Healing Potion
    type: potion
    price: 15
    healAmount: 30
  - name: Iron Sword
    type: weapon
    price: 60
    attackBonus: 5
`

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.yaml")
	if err := os.WriteFile(path, []byte(testCatalogYAML), 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(c.Items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(c.Items))
	}

	sword, ok := c.Find("Iron Sword")
	if !ok || sword.Type != TypeWeapon || sword.AttackBonus != 5 {
		t.Errorf("Expected Iron Sword weapon +5, got %+v (ok=%v)", sword, ok)
	}
	potion, ok := c.DefaultPotion()
	if !ok || potion.HealAmount != 30 {
		t.Errorf("Expected default potion healing 30, got %+v (ok=%v)", potion, ok)
	}
	if _, ok := c.Find("Nothing"); ok {
		t.Error("Expected unknown item lookup to fail")
	}
}

func TestParseCatalog_Duplicate(t *testing.T) {
	_, err := ParseCatalog([]byte("items:\n  - name: A\n    type: potion\n  - name: A\n    type: potion\n"))
	if err == nil {
		t.Error("Expected error for duplicate item")
	}
}

func TestCatalog_NilSafe(t *testing.T) {
	var c *Catalog
	if _, ok := c.Find("x"); ok {
		t.Error("Expected nil catalog lookup to fail")
	}
	if _, ok := c.DefaultPotion(); ok {
		t.Error("Expected nil catalog to have no potion")
	}
}

func TestLoadCatalog_ShippedData(t *testing.T) {
	c, err := LoadCatalog(filepath.Join("..", "..", "data", "items.yaml"))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	potion, ok := c.DefaultPotion()
	if !ok || potion.Name != "Health Potion" {
		t.Errorf("Expected Health Potion as default potion, got %+v", potion)
	}
	for _, it := range c.Items {
		switch it.Type {
		case TypePotion, TypeWeapon, TypeArmor:
		default:
			t.Errorf("Item %s has type %q the shop cannot sell", it.Name, it.Type)
		}
	}
}
