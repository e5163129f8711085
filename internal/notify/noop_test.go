package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/resellops/resell-sync/pkg/types"
)

func TestNoOpNotifier(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))

	alert := CleanupAlert{
		ItemID:   "SKU-1",
		SoldOn:   domain.PlatformDepop,
		Platform: domain.PlatformEbay,
		Kind:     KindDelistFailed,
	}

	require.NoError(t, n.SendAlert(context.Background(), alert))
	require.NoError(t, n.SendBatchAlert(context.Background(), []CleanupAlert{alert, alert}, "SKU-1"))
}
