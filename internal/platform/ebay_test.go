package platform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resellops/resell-sync/internal/ebay"
	ebayMocks "github.com/resellops/resell-sync/internal/ebay/mocks"
	domain "github.com/resellops/resell-sync/pkg/types"
)

func TestEbayAdapter_Platform(t *testing.T) {
	t.Parallel()

	a := NewEbayAdapter(ebayMocks.NewMockTradingClient(t), ebay.EndReasonNotAvailable)
	assert.Equal(t, domain.PlatformEbay, a.Platform())
}

func TestEbayAdapter_DefaultReason(t *testing.T) {
	t.Parallel()

	mc := ebayMocks.NewMockTradingClient(t)
	mc.EXPECT().
		EndItem(context.Background(), "166123456789", ebay.EndReasonNotAvailable).
		Return(nil).Once()

	a := NewEbayAdapter(mc, "")
	require.NoError(t, a.Delist(context.Background(), "166123456789"))
}

func TestEbayAdapter_Delist(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantKind ErrorKind
	}{
		{
			name: "success",
			err:  nil,
		},
		{
			name:     "listing already ended",
			err:      &ebay.APIError{Call: "EndItem", Code: "1047", Message: "already ended"},
			wantKind: KindItemNotFound,
		},
		{
			name:     "item does not exist",
			err:      &ebay.APIError{Call: "EndItem", Code: "17", Message: "invalid item"},
			wantKind: KindItemNotFound,
		},
		{
			name:     "invalid token",
			err:      &ebay.APIError{Call: "EndItem", Code: "931", Message: "invalid token"},
			wantKind: KindAuthFailure,
		},
		{
			name:     "expired token",
			err:      &ebay.APIError{Call: "EndItem", Code: "932", Message: "hard expired"},
			wantKind: KindAuthFailure,
		},
		{
			name:     "deadline exceeded",
			err:      context.DeadlineExceeded,
			wantKind: KindTransientFailure,
		},
		{
			name:     "unclassified API error",
			err:      &ebay.APIError{Call: "EndItem", Code: "10007", Message: "internal error"},
			wantKind: KindTransientFailure,
		},
		{
			name:     "plain network error",
			err:      assert.AnError,
			wantKind: KindTransientFailure,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mc := ebayMocks.NewMockTradingClient(t)
			mc.EXPECT().
				EndItem(context.Background(), "166123456789", ebay.EndReasonNotAvailable).
				Return(tt.err).Once()

			a := NewEbayAdapter(mc, ebay.EndReasonNotAvailable)
			err := a.Delist(context.Background(), "166123456789")

			if tt.err == nil {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, KindOf(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
