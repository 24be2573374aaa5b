package bankroll

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	starsID   = uuid.MustParse("5f0c7e4e-52a4-4f7e-9c1e-2d3f1a6b8c01")
	depositID = uuid.MustParse("0b7d3f6a-1c2e-4d5f-8a9b-0c1d2e3f4a5b")
)

func sampleBook() *Book {
	end := on("2025-02-01").Add(22 * time.Hour)
	liveEnd := on("2025-02-03").Add(23 * time.Hour)
	return &Book{
		Settings: Settings{BaseCurrency: "USD", HandsPerHourOnline: 75},
		Platforms: []Platform{{
			ID:             starsID,
			Name:           "Stars",
			Currency:       "CAD",
			CurrentBalance: dec("1485"),
			Created:        on("2025-01-01"),
			Deposits: []Deposit{
				{ID: depositID, PlatformID: starsID, Date: on("2025-01-02"), AmountSent: dec("1000"), AmountReceived: dec("1350"), IsForeignExchange: true, EffectiveExchangeRate: R(1.35), Method: "card"},
			},
			Sessions: []OnlineCash{{
				ID:                uuid.New(),
				PlatformID:        starsID,
				Game:              "NLHE",
				timing:            timing{Start: on("2025-02-01").Add(20 * time.Hour), End: &end, BreakMinutes: 10},
				Tables:            3,
				TableSize:         6,
				Blinds:            Blinds{Small: dec("0.05"), Big: dec("0.1")},
				BalanceBefore:     dec("1350"),
				BalanceAfter:      dec("1485"),
				NetProfitLoss:     dec("135"),
				NetProfitLossBase: dec("100"),
			}},
			Adjustments: []Adjustment{
				{ID: uuid.New(), PlatformID: starsID, Date: on("2025-02-02"), Amount: dec("-5"), Currency: "CAD", AmountBase: dec("-3.7"), Kind: Online, Notes: "rakeback fix"},
			},
		}},
		Live: []LiveCash{{
			ID:                  uuid.New(),
			Game:                "NLHE",
			Location:            "Casino",
			timing:              timing{Start: on("2025-02-03").Add(19 * time.Hour), End: &liveEnd},
			HandsCount:          110,
			Blinds:              Blinds{Small: dec("1"), Big: dec("2"), Straddle: dec("4")},
			BuyIn:               dec("300"),
			CashOut:             dec("480"),
			Tips:                dec("20"),
			ExchangeRateBuyIn:   R(1.1),
			ExchangeRateCashOut: R(1.12),
		}},
		Adjustments: []Adjustment{
			{ID: uuid.New(), Date: on("2025-03-01"), Amount: dec("50"), AmountBase: dec("50"), Kind: Live},
		},
	}
}

func TestEncodeBook_RoundTrip(t *testing.T) {
	book := sampleBook()

	var first bytes.Buffer
	require.NoError(t, EncodeBook(&first, book))

	decoded, err := DecodeBook(bytes.NewReader(first.Bytes()))
	require.NoError(t, err)

	var second bytes.Buffer
	require.NoError(t, EncodeBook(&second, decoded))
	assert.Equal(t, first.String(), second.String())

	require.Len(t, decoded.Platforms, 1)
	p := decoded.Platforms[0]
	assert.Equal(t, "Stars", p.Name)
	require.Len(t, p.Deposits, 1)
	require.Len(t, p.Sessions, 1)
	require.Len(t, p.Adjustments, 1)
	assertDecimal(t, book.Platforms[0].NetResult(), p.NetResult())
	assert.InDelta(t, 1.8333333, p.Sessions[0].ComputedDuration(), 1e-6)
	assert.Equal(t, 3, p.Sessions[0].Tables)

	require.Len(t, decoded.Live, 1)
	assertDecimal(t, book.Live[0].NetResultBase(), decoded.Live[0].NetResultBase())
	assert.Equal(t, "1/2/4", decoded.Live[0].DisplayBlinds())
	require.Len(t, decoded.Adjustments, 1)
	assert.Equal(t, uuid.Nil, decoded.Adjustments[0].PlatformID)

	assert.Equal(t, book.Settings, decoded.Settings)
}

func TestEncodeBook_Format(t *testing.T) {
	book := &Book{Platforms: []Platform{{
		ID:       starsID,
		Name:     "Stars",
		Currency: "CAD",
		Deposits: []Deposit{
			{ID: depositID, PlatformID: starsID, Date: on("2025-01-02"), AmountSent: dec("1000"), AmountReceived: dec("1350"), IsForeignExchange: true, EffectiveExchangeRate: R(1.35)},
		},
	}}}
	var buf bytes.Buffer
	require.NoError(t, EncodeBook(&buf, book))

	want := `{"record":"platform","id":"5f0c7e4e-52a4-4f7e-9c1e-2d3f1a6b8c01","name":"Stars","currency":"CAD"}
{"record":"deposit","id":"0b7d3f6a-1c2e-4d5f-8a9b-0c1d2e3f4a5b","platform":"5f0c7e4e-52a4-4f7e-9c1e-2d3f1a6b8c01","date":"2025-01-02T00:00:00Z","sent":1000,"received":1350,"fx":true,"rate":1.35}
`
	assert.Equal(t, want, buf.String())
}

func TestEncodeBook_SortsChildrenByDate(t *testing.T) {
	book := &Book{Platforms: []Platform{{
		ID: starsID,
		Deposits: []Deposit{
			{ID: uuid.New(), PlatformID: starsID, Date: on("2025-03-01"), AmountSent: dec("3")},
			{ID: uuid.New(), PlatformID: starsID, Date: on("2025-01-01"), AmountSent: dec("1")},
			{ID: uuid.New(), PlatformID: starsID, Date: on("2025-02-01"), AmountSent: dec("2")},
		},
	}}}
	var buf bytes.Buffer
	require.NoError(t, EncodeBook(&buf, book))

	decoded, err := DecodeBook(&buf)
	require.NoError(t, err)
	var sent []string
	for _, d := range decoded.Platforms[0].Deposits {
		sent = append(sent, d.AmountSent.String())
	}
	assert.Equal(t, []string{"1", "2", "3"}, sent)
	assert.Equal(t, "2025-01-01", book.Platforms[0].Deposits[1].Date.Format(time.DateOnly), "input is left untouched")
}

func TestDecodeBook(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name: "children before their platform",
			input: `{"record":"deposit","platform":"5f0c7e4e-52a4-4f7e-9c1e-2d3f1a6b8c01","date":"2025-01-02T00:00:00Z","sent":10}

{"record":"platform","id":"5f0c7e4e-52a4-4f7e-9c1e-2d3f1a6b8c01"}`,
		},
		{
			name:    "unknown platform",
			input:   `{"record":"online","platform":"0b7d3f6a-1c2e-4d5f-8a9b-0c1d2e3f4a5b","start":"2025-01-02T00:00:00Z"}`,
			wantErr: "unknown platform",
		},
		{
			name:    "platform without id",
			input:   `{"record":"platform","name":"Stars"}`,
			wantErr: "line 1: platform without id",
		},
		{
			name: "duplicate platform",
			input: `{"record":"platform","id":"5f0c7e4e-52a4-4f7e-9c1e-2d3f1a6b8c01"}
{"record":"platform","id":"5f0c7e4e-52a4-4f7e-9c1e-2d3f1a6b8c01"}`,
			wantErr: "line 2: platform",
		},
		{
			name:    "unknown record",
			input:   `{"record":"tournament"}`,
			wantErr: `unknown record type "tournament"`,
		},
		{
			name:    "not json",
			input:   `record=live`,
			wantErr: "could not identify record",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			book, err := DecodeBook(strings.NewReader(tc.input))
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, book.Platforms, 1)
			require.Len(t, book.Platforms[0].Deposits, 1)
			assert.NotEqual(t, uuid.Nil, book.Platforms[0].Deposits[0].ID, "missing ids are generated")
		})
	}
}

func TestOpenBook_SaveBook(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "book.jsonl")

	_, err := OpenBook(filename)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	book := sampleBook()
	require.NoError(t, SaveBook(filename, book))

	got, err := OpenBook(filename)
	require.NoError(t, err)
	assertDecimal(t, book.TotalNetResult(), got.TotalNetResult())
	assert.Len(t, got.Live, 1)
}
