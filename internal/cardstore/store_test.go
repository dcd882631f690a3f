package cardstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/letterz/internal/spacedrep"
	"github.com/abhisek/letterz/internal/store/memkv"
)

var ids = []string{"A", "B", "C"}

func newTestStore(kv KV) *Store {
	return New(kv, ids)
}

func assertFresh(t *testing.T, d spacedrep.Deck) {
	t.Helper()
	require.Equal(t, ids, d.ItemIDs())
	for _, c := range d.Cards {
		assert.Equal(t, spacedrep.NewCard(c.ItemID), c)
	}
}

func TestLoadEmptyReturnsFreshDeck(t *testing.T) {
	s := newTestStore(memkv.New())
	assertFresh(t, s.Load(context.Background()))
}

func TestLoadMalformedReturnsFreshDeck(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{{{`},
		{"missing cards", `{"deck":[]}`},
		{"cards not array", `{"cards":{"A":1}}`},
		{"card missing field", `{"cards":[{"itemId":"A","box":1}]}`},
		{"wrong field type", `{"cards":[{"itemId":"A","box":"one","nextDueAt":0,"seenCount":0,"correctCount":0}]}`},
		{"top level array", `[1,2,3]`},
		{"null", `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := memkv.New()
			require.NoError(t, kv.Set(context.Background(), DefaultKey, []byte(tt.raw)))
			assertFresh(t, newTestStore(kv).Load(context.Background()))
		})
	}
}

func TestLoadGetErrorReturnsFreshDeck(t *testing.T) {
	kv := memkv.New()
	kv.GetErr = errors.New("disk on fire")
	assertFresh(t, newTestStore(kv).Load(context.Background()))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	kv := memkv.New()
	s := newTestStore(kv)
	ctx := context.Background()

	due := time.Date(2025, 6, 15, 10, 0, 15, 123_000_000, time.UTC)
	d := s.Fresh()
	d = d.Replace(spacedrep.Card{ItemID: "B", Box: 2, NextDueAt: due, SeenCount: 5, CorrectCount: 3})
	s.Save(ctx, d)

	got := newTestStore(kv).Load(ctx)
	require.Equal(t, d.Len(), got.Len())
	for i := range d.Cards {
		want, have := d.Cards[i], got.Cards[i]
		assert.Equal(t, want.ItemID, have.ItemID)
		assert.Equal(t, want.Box, have.Box)
		assert.Equal(t, want.SeenCount, have.SeenCount)
		assert.Equal(t, want.CorrectCount, have.CorrectCount)
		assert.True(t, want.NextDueAt.Equal(have.NextDueAt), "%s due %v != %v", want.ItemID, want.NextDueAt, have.NextDueAt)
	}
}

func TestSaveLoadRoundTripAfterAnswerAtSubMillisecond(t *testing.T) {
	kv := memkv.New()
	s := newTestStore(kv)
	ctx := context.Background()

	now := time.Date(2025, 6, 15, 10, 0, 0, 123_456_789, time.UTC)
	d := s.Fresh()
	a, _ := d.Card("A")
	answered, _ := spacedrep.Apply(a, "A", "A", now, spacedrep.DefaultIntervals)
	d = d.Replace(answered)
	s.Save(ctx, d)

	got, ok := newTestStore(kv).Load(ctx).Card("A")
	require.True(t, ok)
	assert.True(t, answered.NextDueAt.Equal(got.NextDueAt), "due %v != %v", answered.NextDueAt, got.NextDueAt)
	assert.Equal(t, answered.Box, got.Box)
}

func TestLoadAcceptsIntegralFloats(t *testing.T) {
	kv := memkv.New()
	raw := `{"cards":[{"itemId":"A","box":2.0,"nextDueAt":1.7e12,"seenCount":3.0,"correctCount":2}]}`
	require.NoError(t, kv.Set(context.Background(), DefaultKey, []byte(raw)))

	a, ok := newTestStore(kv).Load(context.Background()).Card("A")
	require.True(t, ok)
	assert.Equal(t, 2, a.Box)
	assert.Equal(t, 3, a.SeenCount)
	assert.Equal(t, 2, a.CorrectCount)
	assert.Equal(t, int64(1_700_000_000_000), a.NextDueAt.UnixMilli())
}

func TestLoadFractionalNumberReturnsFreshDeck(t *testing.T) {
	kv := memkv.New()
	raw := `{"cards":[{"itemId":"A","box":1.5,"nextDueAt":0,"seenCount":0,"correctCount":0}]}`
	require.NoError(t, kv.Set(context.Background(), DefaultKey, []byte(raw)))

	assertFresh(t, newTestStore(kv).Load(context.Background()))
}

func TestSaveFailureIsSwallowed(t *testing.T) {
	kv := memkv.New()
	kv.SetErr = errors.New("quota exceeded")
	s := newTestStore(kv)

	s.Save(context.Background(), s.Fresh())
	assert.Equal(t, 1, kv.Sets())

	kv.SetErr = nil
	s.Save(context.Background(), s.Fresh())
	_, ok, _ := kv.Get(context.Background(), DefaultKey)
	assert.True(t, ok, "later save supersedes the failed one")
}

func TestLoadReconcilesUniverse(t *testing.T) {
	kv := memkv.New()
	raw := `{"cards":[
		{"itemId":"C","box":7,"nextDueAt":1000,"seenCount":9,"correctCount":9},
		{"itemId":"Z","box":1,"nextDueAt":0,"seenCount":1,"correctCount":1}
	]}`
	require.NoError(t, kv.Set(context.Background(), DefaultKey, []byte(raw)))

	d := newTestStore(kv).Load(context.Background())
	require.Equal(t, ids, d.ItemIDs())
	c, _ := d.Card("C")
	assert.Equal(t, 3, c.Box)
	assert.True(t, c.NextDueAt.Equal(time.UnixMilli(1000)))
	a, _ := d.Card("A")
	assert.Equal(t, spacedrep.NewCard("A"), a)
}

func TestResetPersistsFreshDeck(t *testing.T) {
	kv := memkv.New()
	s := newTestStore(kv)
	ctx := context.Background()

	played := s.Fresh().Replace(spacedrep.Card{ItemID: "A", Box: 3, SeenCount: 3, CorrectCount: 3})
	s.Save(ctx, played)

	assertFresh(t, s.Reset(ctx))
	assertFresh(t, s.Load(ctx))
}

func TestWithKey(t *testing.T) {
	kv := memkv.New()
	s := New(kv, ids, WithKey("custom"), WithMaxBox(3), WithLogger(nil))
	s.Save(context.Background(), s.Fresh())

	_, ok, _ := kv.Get(context.Background(), "custom")
	assert.True(t, ok)
	_, ok, _ = kv.Get(context.Background(), DefaultKey)
	assert.False(t, ok)
}

func TestEncodeWireFormat(t *testing.T) {
	d := spacedrep.Deck{Cards: []spacedrep.Card{{
		ItemID: "A", Box: 1, NextDueAt: time.UnixMilli(115_000), SeenCount: 1, CorrectCount: 1,
	}}}
	raw, err := Encode(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"cards":[{"itemId":"A","box":1,"nextDueAt":115000,"seenCount":1,"correctCount":1}]}`, string(raw))
}

func TestLoadNegativeCountersReturnsFreshDeck(t *testing.T) {
	kv := memkv.New()
	raw := `{"cards":[{"itemId":"A","box":-1,"nextDueAt":0,"seenCount":0,"correctCount":0}]}`
	require.NoError(t, kv.Set(context.Background(), DefaultKey, []byte(raw)))
	assertFresh(t, newTestStore(kv).Load(context.Background()))
}
