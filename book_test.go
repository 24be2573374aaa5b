package bankroll

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings(t *testing.T) {
	s := Settings{HandsPerHourLive: 25}.Normalize()
	assert.Equal(t, Settings{BaseCurrency: "USD", HandsPerHourOnline: 60, HandsPerHourLive: 25}, s)

	merged := DefaultSettings().Merge(Settings{BaseCurrency: "EUR"})
	assert.Equal(t, "EUR", merged.BaseCurrency)
	assert.Equal(t, float64(DefaultHandsPerHourOnline), merged.HandsPerHourOnline)

	assert.NoError(t, merged.Validate())
	assert.Error(t, Settings{BaseCurrency: "EU"}.Validate())
}

func TestBook(t *testing.T) {
	book := sampleBook()

	id, ok := book.Resolve("stars")
	require.True(t, ok)
	assert.Equal(t, starsID, id)
	_, ok = book.Resolve(starsID.String())
	assert.True(t, ok)
	_, ok = book.Resolve("Party")
	assert.False(t, ok)

	_, ok = book.Platform(uuid.New())
	assert.False(t, ok)

	assert.Len(t, book.OnlineSessions(), 1)
	assert.Len(t, book.AllAdjustments(), 2)
	assert.Len(t, book.Valuations("USD"), 1)

	// 1485 CAD at 1/1.35
	assert.InDelta(t, 1100, book.TotalBankroll().InexactFloat64(), 1e-6)
	// 1100 - 1000 - 3.7
	assert.InDelta(t, 96.3, book.TotalNetResult().InexactFloat64(), 1e-6)

	r := book.Stats(Query{Now: on("2025-12-31"), ShowAdjustments: true})
	assert.Equal(t, 2, r.SessionCount)
	// online 100, live 480*1.12 - 300*1.1 = 207.6, adjustments -3.7 + 50
	assertDecimal(t, dec("307.6"), r.NetResultNoAdj)
	assertDecimal(t, dec("353.9"), r.NetResult)
}
