package bankroll

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonObjectWriter(t *testing.T) {
	testCases := []struct {
		name  string
		write func(w *jsonObjectWriter)
		want  string
	}{
		{
			name:  "empty object",
			write: func(w *jsonObjectWriter) {},
			want:  `{}`,
		},
		{
			name: "keeps insertion order",
			write: func(w *jsonObjectWriter) {
				w.Append("b", "hello").Append("a", 1)
			},
			want: `{"b":"hello","a":1}`,
		},
		{
			name: "optional fields",
			write: func(w *jsonObjectWriter) {
				w.Append("a", 0) // a zero value is still written by Append.
				w.Optional("b", "")
				w.Optional("c", 0)
				w.Optional("d", "hello")
			},
			want: `{"a":0,"d":"hello"}`,
		},
		{
			name: "decimal fields",
			write: func(w *jsonObjectWriter) {
				w.Decimal("zero", decimal.NewFromInt(0))
				w.Decimal("unset", decimal.Decimal{})
				w.Decimal("amount", decimal.RequireFromString("12.5"))
			},
			want: `{"amount":12.5}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var w jsonObjectWriter
			tc.write(&w)
			got, err := w.MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestJsonObjectWriter_Error(t *testing.T) {
	var w jsonObjectWriter
	w.Append("nan", math.NaN())
	w.Append("b", 2)
	_, err := w.MarshalJSON()
	assert.Error(t, err)
}
