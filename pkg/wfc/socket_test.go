package wfc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSocketMatchHorizontal(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want bool
	}{
		{"asymmetric mates with flipped", "3", "3F", true},
		{"asymmetric does not mate with itself", "3", "3", false},
		{"flipped mates with unflipped", "3F", "3", true},
		{"flipped does not mate with itself", "3F", "3F", false},
		{"symmetrical mates with identical", "wallS", "wallS", true},
		{"symmetrical does not mate with different", "wallS", "doorS", false},
		{"dash sentinel mates with identical", "-1", "-1", true},
		{"dash sentinel does not mate with other", "-1", "2", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, socketMatch(tc.a, tc.b, PosX))
		})
	}
}

func TestSocketMatchVerticalIsPlainEquality(t *testing.T) {
	require.True(t, socketMatch("roofF", "roofF", PosY))
	require.False(t, socketMatch("roofF", "roof", PosY))
	require.True(t, socketMatch("-1", "-1", NegY))
}

func TestFaceOpposite(t *testing.T) {
	pairs := map[Face]Face{PosX: NegX, NegX: PosX, PosZ: NegZ, NegZ: PosZ, PosY: NegY, NegY: PosY}
	for f, want := range pairs {
		require.Equal(t, want, f.opposite())
		require.Equal(t, f, f.opposite().opposite())
	}
}
