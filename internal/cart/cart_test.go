package cart

import "testing"

func line(id string, price int64) Line {
	return Line{PlantID: id, Name: "Plant " + id, PriceCents: price}
}

func TestAddLineDistinctIDsKeepOrder(t *testing.T) {
	var c Cart
	for _, id := range []string{"p1", "p2", "p3"} {
		if !c.AddLine(line(id, 100)) {
			t.Fatalf("add %s: expected cart to change", id)
		}
	}
	lines := c.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, id := range []string{"p1", "p2", "p3"} {
		if lines[i].PlantID != id {
			t.Fatalf("expected %s at position %d, got %s", id, i, lines[i].PlantID)
		}
		if lines[i].Quantity != 1 {
			t.Fatalf("expected quantity 1 for %s, got %d", id, lines[i].Quantity)
		}
	}
}

func TestAddLineDuplicateIgnored(t *testing.T) {
	var c Cart
	c.AddLine(line("p1", 100))
	c.SetQuantity("p1", 4)

	dup := line("p1", 999)
	dup.Quantity = 7
	if c.AddLine(dup) {
		t.Fatalf("expected duplicate add to be ignored")
	}
	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 4 || lines[0].PriceCents != 100 {
		t.Fatalf("duplicate add mutated the line: %+v", lines[0])
	}
}

func TestSetQuantityUpdatesOnlyThatLine(t *testing.T) {
	var c Cart
	c.AddLine(line("p1", 150))
	c.AddLine(line("p2", 300))
	c.SetQuantity("p1", 2)

	lines := c.Lines()
	if lines[0].Quantity != 2 || lines[1].Quantity != 1 {
		t.Fatalf("unexpected quantities: %+v", lines)
	}
	if got := LineTotal(lines[0]); got != 300 {
		t.Fatalf("expected line total 300, got %d", got)
	}
}

func TestSetQuantityBelowOneRemoves(t *testing.T) {
	var c Cart
	c.AddLine(line("p1", 150))
	c.SetQuantity("p1", 0)
	if !c.Empty() {
		t.Fatalf("expected empty cart after quantity 0")
	}
}

func TestRemoveThenReAddYieldsFreshLine(t *testing.T) {
	var c Cart
	c.AddLine(line("p1", 150))
	c.SetQuantity("p1", 5)
	c.Remove("p1")
	c.AddLine(line("p1", 150))

	lines := c.Lines()
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("expected fresh line with quantity 1, got %+v", lines)
	}
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	var c Cart
	c.AddLine(line("p1", 150))
	c.Remove("missing")
	if c.Len() != 1 {
		t.Fatalf("expected remove of absent id to be a no-op")
	}
}

func TestGrandTotal(t *testing.T) {
	var c Cart
	if got := c.GrandTotal(); got != 0 {
		t.Fatalf("expected empty cart total 0, got %d", got)
	}

	c.AddLine(line("p1", 150))
	c.SetQuantity("p1", 2)
	c.AddLine(line("p2", 300))
	if got := c.GrandTotal(); got != 600 {
		t.Fatalf("expected total 600, got %d", got)
	}
}

func TestClear(t *testing.T) {
	var c Cart
	c.AddLine(line("p1", 150))
	c.AddLine(line("p2", 300))
	c.Clear()
	if !c.Empty() || c.GrandTotal() != 0 {
		t.Fatalf("expected empty cart after clear")
	}
}

func TestFingerprintTracksContents(t *testing.T) {
	var c Cart
	c.AddLine(line("p1", 150))
	before := c.Fingerprint()
	c.SetQuantity("p1", 3)
	if c.Fingerprint() == before {
		t.Fatalf("expected fingerprint to change with quantity")
	}
}

func TestStoreIsolatesProfiles(t *testing.T) {
	s := NewStore()
	s.AddLine("alice", line("p1", 150))
	s.AddLine("bob", line("p2", 300))

	if got := s.GrandTotal("alice"); got != 150 {
		t.Fatalf("expected alice total 150, got %d", got)
	}
	s.Clear("alice")
	if len(s.Lines("alice")) != 0 {
		t.Fatalf("expected alice cart cleared")
	}
	if len(s.Lines("bob")) != 1 {
		t.Fatalf("expected bob cart untouched")
	}
}
