package ebay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractItemID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "bare id", input: "166123456789", want: "166123456789"},
		{name: "bare id with whitespace", input: "  166123456789\n", want: "166123456789"},
		{
			name:  "itm url",
			input: "https://www.ebay.com/itm/166123456789",
			want:  "166123456789",
		},
		{
			name:  "itm url with slug",
			input: "https://www.ebay.com/itm/vintage-levis-501/166123456789?hash=item26ae",
			want:  "166123456789",
		},
		{
			name:  "itm url with query",
			input: "https://www.ebay.com/itm/166123456789?mkcid=16&mkevt=1",
			want:  "166123456789",
		},
		{
			name:  "legacy item param",
			input: "https://cgi.ebay.com/ws/eBayISAPI.dll?ViewItem&item=166123456789",
			want:  "166123456789",
		},
		{
			name:  "hash item param",
			input: "https://www.ebay.com/p/2255432?hash=item166123456789",
			want:  "166123456789",
		},
		{name: "too short", input: "1234567", wantErr: true},
		{name: "not numeric", input: "SKU-0042", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "unrelated url", input: "https://www.depop.com/products/foo/", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ExtractItemID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
