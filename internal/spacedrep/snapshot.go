package spacedrep

// Reconcile aligns a restored deck with the configured item universe.
// Cards for unknown items are dropped, missing items get fresh cards, boxes
// are clamped into [0, maxBox] and counters are made consistent. Cards come
// back in itemIDs order.
func Reconcile(d Deck, itemIDs []string, maxBox int) Deck {
	byID := make(map[string]Card, len(d.Cards))
	for _, c := range d.Cards {
		if _, dup := byID[c.ItemID]; dup {
			continue
		}
		byID[c.ItemID] = c
	}

	fresh := NewDeck(itemIDs)
	for i, nc := range fresh.Cards {
		c, ok := byID[nc.ItemID]
		if !ok {
			continue
		}
		fresh.Cards[i] = sanitize(c, maxBox)
	}
	return fresh
}

func sanitize(c Card, maxBox int) Card {
	if c.Box < 0 {
		c.Box = 0
	}
	if c.Box > maxBox {
		c.Box = maxBox
	}
	if c.SeenCount < 0 {
		c.SeenCount = 0
	}
	if c.CorrectCount < 0 {
		c.CorrectCount = 0
	}
	if c.CorrectCount > c.SeenCount {
		c.CorrectCount = c.SeenCount
	}
	if c.NextDueAt.IsZero() {
		c.NextDueAt = Epoch
	}
	return c
}
