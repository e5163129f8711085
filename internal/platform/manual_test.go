package platform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/resellops/resell-sync/pkg/types"
)

func TestManualAdapter(t *testing.T) {
	t.Parallel()

	a := NewManualAdapter(domain.PlatformDepop)
	assert.Equal(t, domain.PlatformDepop, a.Platform())

	err := a.Delist(context.Background(), "SKU-1")
	require.Error(t, err)
	assert.Equal(t, KindUnsupported, KindOf(err))
	assert.ErrorIs(t, err, ErrManualActionRequired)
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{
			name: "classified error",
			err:  &Error{Kind: KindAuthFailure, Platform: domain.PlatformEbay},
			want: KindAuthFailure,
		},
		{
			name: "plain error defaults to transient",
			err:  assert.AnError,
			want: KindTransientFailure,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestError_Message(t *testing.T) {
	t.Parallel()

	withCause := &Error{Kind: KindAuthFailure, Platform: domain.PlatformEbay, Err: assert.AnError}
	assert.Contains(t, withCause.Error(), "ebay")
	assert.Contains(t, withCause.Error(), "auth_failure")
	assert.Contains(t, withCause.Error(), assert.AnError.Error())

	bare := &Error{Kind: KindUnsupported, Platform: domain.PlatformPoshmark}
	assert.Equal(t, "poshmark: unsupported", bare.Error())
}
