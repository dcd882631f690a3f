package cardstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/letterz/internal/spacedrep"
)

// DeckData is the persisted form of a deck.
type DeckData struct {
	Cards []CardData `json:"cards"`
}

// CardData is the persisted form of a card. NextDueAt is Unix milliseconds.
type CardData struct {
	ItemID       string `json:"itemId"`
	Box          int    `json:"box"`
	NextDueAt    int64  `json:"nextDueAt"`
	SeenCount    int    `json:"seenCount"`
	CorrectCount int    `json:"correctCount"`
}

// deckSchema describes the shape Load accepts. Anything else is treated as
// absent data.
var deckSchema = map[string]any{
	"type":     "object",
	"required": []any{"cards"},
	"properties": map[string]any{
		"cards": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"itemId", "box", "nextDueAt", "seenCount", "correctCount"},
				"properties": map[string]any{
					"itemId":       map[string]any{"type": "string", "minLength": 1},
					"box":          map[string]any{"type": "integer", "minimum": 0},
					"nextDueAt":    map[string]any{"type": "integer"},
					"seenCount":    map[string]any{"type": "integer", "minimum": 0},
					"correctCount": map[string]any{"type": "integer", "minimum": 0},
				},
			},
		},
	},
}

const deckSchemaURL = "schema://letterz/deck.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(deckSchemaURL, deckSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(deckSchemaURL)
	})
	return compiledSchema, compileErr
}

// Encode serializes a deck to its persisted JSON form.
func Encode(d spacedrep.Deck) ([]byte, error) {
	data := DeckData{Cards: make([]CardData, len(d.Cards))}
	for i, c := range d.Cards {
		data.Cards[i] = CardData{
			ItemID:       c.ItemID,
			Box:          c.Box,
			NextDueAt:    c.NextDueAt.UnixMilli(),
			SeenCount:    c.SeenCount,
			CorrectCount: c.CorrectCount,
		}
	}
	return json.Marshal(data)
}

// Decode parses persisted JSON into a deck. It fails when raw is not JSON or
// does not match the deck schema. Numbers are read the way the schema reads
// them, so an integral value such as 2.0 or 1.7e12 is accepted.
func Decode(raw []byte) (spacedrep.Deck, error) {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return spacedrep.Deck{}, fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := getCompiledSchema()
	if err != nil {
		return spacedrep.Deck{}, fmt.Errorf("compile deck schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return spacedrep.Deck{}, fmt.Errorf("schema validation failed: %w", err)
	}

	cards := parsed.(map[string]any)["cards"].([]any)
	d := spacedrep.Deck{Cards: make([]spacedrep.Card, len(cards))}
	for i, item := range cards {
		cd, err := decodeCard(item.(map[string]any))
		if err != nil {
			return spacedrep.Deck{}, fmt.Errorf("decode card %d: %w", i, err)
		}
		d.Cards[i] = spacedrep.Card{
			ItemID:       cd.ItemID,
			Box:          cd.Box,
			NextDueAt:    time.UnixMilli(cd.NextDueAt).UTC(),
			SeenCount:    cd.SeenCount,
			CorrectCount: cd.CorrectCount,
		}
	}
	return d, nil
}

// decodeCard reads a schema-validated card object.
func decodeCard(m map[string]any) (CardData, error) {
	due, err := integer(m["nextDueAt"])
	if err != nil {
		return CardData{}, fmt.Errorf("nextDueAt: %w", err)
	}
	cd := CardData{ItemID: m["itemId"].(string), NextDueAt: due}

	counters := []struct {
		name string
		dst  *int
	}{
		{"box", &cd.Box},
		{"seenCount", &cd.SeenCount},
		{"correctCount", &cd.CorrectCount},
	}
	for _, f := range counters {
		n, err := integer(m[f.name])
		if err != nil {
			return CardData{}, fmt.Errorf("%s: %w", f.name, err)
		}
		if n > math.MaxInt32 {
			return CardData{}, fmt.Errorf("%s: %d out of range", f.name, n)
		}
		*f.dst = int(n)
	}
	return cd, nil
}

// maxExactFloat is the largest integer a float64 holds exactly.
const maxExactFloat = 1 << 53

func integer(v any) (int64, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("not a number: %v", v)
	}
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.Abs(f) > maxExactFloat {
		return 0, fmt.Errorf("%s is not an integer", n)
	}
	return int64(f), nil
}
