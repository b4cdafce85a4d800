package focus_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/focus/pkg/focus"
)

func TestNormalizeColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "", want: "#ef4444"},
		{in: "violet", want: "#8b5cf6"},
		{in: "Violet", want: "#8b5cf6"},
		{in: "#3B82F6", want: "#3b82f6"},
		{in: "#123ABC", want: "#123abc"},
		{in: "#123", wantErr: focus.ErrUnknownColor},
		{in: "mauve", wantErr: focus.ErrUnknownColor},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := focus.NormalizeColor(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestColorName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Green", focus.ColorName("#22C55E"))
	require.Equal(t, "#010203", focus.ColorName("#010203"))
	require.Len(t, focus.ColorPresets, 9)
	require.Equal(t, focus.ColorPresets[0].Hex, focus.DefaultColor())
}
