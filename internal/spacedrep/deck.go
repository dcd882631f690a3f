package spacedrep

// Deck is the ordered set of cards for a fixed item universe, one card per
// item.
type Deck struct {
	Cards []Card
}

// NewDeck builds a fresh deck with one new card per item id, preserving
// order. Duplicate ids are collapsed to their first occurrence.
func NewDeck(itemIDs []string) Deck {
	seen := make(map[string]bool, len(itemIDs))
	cards := make([]Card, 0, len(itemIDs))
	for _, id := range itemIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		cards = append(cards, NewCard(id))
	}
	return Deck{Cards: cards}
}

// Len returns the number of cards.
func (d Deck) Len() int {
	return len(d.Cards)
}

// Clone returns a copy that shares no memory with d.
func (d Deck) Clone() Deck {
	cards := make([]Card, len(d.Cards))
	copy(cards, d.Cards)
	return Deck{Cards: cards}
}

// Card returns the card for itemID.
func (d Deck) Card(itemID string) (Card, bool) {
	for _, c := range d.Cards {
		if c.ItemID == itemID {
			return c, true
		}
	}
	return Card{}, false
}

// Replace returns a new deck in which the card with the same ItemID as card
// is swapped for card. Every other card is carried over unchanged. A card for
// an unknown item leaves the deck as is.
func (d Deck) Replace(card Card) Deck {
	out := d.Clone()
	for i := range out.Cards {
		if out.Cards[i].ItemID == card.ItemID {
			out.Cards[i] = card
			break
		}
	}
	return out
}

// ItemIDs returns the item id of every card, in deck order.
func (d Deck) ItemIDs() []string {
	ids := make([]string, len(d.Cards))
	for i, c := range d.Cards {
		ids[i] = c.ItemID
	}
	return ids
}
