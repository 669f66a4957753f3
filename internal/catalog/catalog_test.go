package catalog

import "testing"

func TestFindItem(t *testing.T) {
	item, ok := FindItem("electronics", "phone")
	if !ok {
		t.Fatal("expected to find phone in electronics")
	}
	if item.Name != "Smartphone" {
		t.Errorf("expected Smartphone, got %q", item.Name)
	}

	if _, ok := FindItem("clothing", "phone"); ok {
		t.Error("phone should not be in clothing")
	}
	if _, ok := FindItem("nope", "phone"); ok {
		t.Error("unknown category should not match")
	}
}

func TestConditionsOrderedBestFirst(t *testing.T) {
	conds := Conditions()
	if len(conds) != 3 {
		t.Fatalf("expected 3 conditions, got %d", len(conds))
	}
	for i := 1; i < len(conds); i++ {
		if conds[i].Factor >= conds[i-1].Factor {
			t.Errorf("condition %s factor %v not below %s factor %v",
				conds[i].ID, conds[i].Factor, conds[i-1].ID, conds[i-1].Factor)
		}
	}
}

func TestFindDropoffPoint(t *testing.T) {
	p, ok := FindDropoffPoint("City Mart Yangon")
	if !ok {
		t.Fatal("expected to find City Mart Yangon")
	}
	if p.Lat != 16.84 || p.Lng != 96.17 {
		t.Errorf("unexpected coordinates: %v, %v", p.Lat, p.Lng)
	}
	if _, ok := FindDropoffPoint("Nowhere"); ok {
		t.Error("unknown point should not match")
	}
}
