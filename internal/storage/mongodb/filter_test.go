package mongodb

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"realestate_api/internal/domain"
)

func pstr(s string) *string     { return &s }
func pfloat(f float64) *float64 { return &f }

func TestSearchFilter_Empty(t *testing.T) {
	got := searchFilter(domain.PropertyFilter{})
	if len(got) != 0 {
		t.Fatalf("empty filter must match all, got %v", got)
	}
	// empty strings count as absent too
	got = searchFilter(domain.PropertyFilter{Name: pstr(""), OwnerID: pstr("")})
	if len(got) != 0 {
		t.Fatalf("blank constraints must be ignored, got %v", got)
	}
}

func TestSearchFilter_SubstringIsCaseInsensitiveAndLiteral(t *testing.T) {
	got := searchFilter(domain.PropertyFilter{Name: pstr("casa (mar)")})
	clauses := got["$and"].([]bson.M)
	if len(clauses) != 1 {
		t.Fatalf("expected one clause, got %v", got)
	}
	re := clauses[0]["name"].(primitive.Regex)
	if re.Options != "i" {
		t.Fatalf("expected case-insensitive regex, got options %q", re.Options)
	}
	// metacharacters in user input must be quoted
	if re.Pattern != `casa \(mar\)` {
		t.Fatalf("expected quoted pattern, got %q", re.Pattern)
	}
}

func TestSearchFilter_PriceRange(t *testing.T) {
	got := searchFilter(domain.PropertyFilter{MinPrice: pfloat(400000), MaxPrice: pfloat(800000)})
	clauses := got["$and"].([]bson.M)
	if len(clauses) != 1 {
		t.Fatalf("min and max must fold into one price clause, got %v", got)
	}
	price := clauses[0]["price"].(bson.M)
	if price["$gte"] != 400000.0 || price["$lte"] != 800000.0 {
		t.Fatalf("unexpected bounds: %v", price)
	}

	// single-sided bounds stay independent
	got = searchFilter(domain.PropertyFilter{MinPrice: pfloat(100)})
	price = got["$and"].([]bson.M)[0]["price"].(bson.M)
	if _, hasLte := price["$lte"]; hasLte || price["$gte"] != 100.0 {
		t.Fatalf("unexpected single-sided bound: %v", price)
	}
}

func TestSearchFilter_Conjunction(t *testing.T) {
	got := searchFilter(domain.PropertyFilter{
		Name:     pstr("casa"),
		Address:  pstr("miami"),
		OwnerID:  pstr("66f0a1b2c3d4e5f6a7b8c9d1"),
		MinPrice: pfloat(100000),
	})
	clauses := got["$and"].([]bson.M)
	if len(clauses) != 4 {
		t.Fatalf("expected 4 clauses, got %d: %v", len(clauses), got)
	}
	found := map[string]bool{}
	for _, c := range clauses {
		for k := range c {
			found[k] = true
		}
	}
	for _, k := range []string{"name", "address", "idOwner", "price"} {
		if !found[k] {
			t.Fatalf("missing %s clause: %v", k, got)
		}
	}
}
