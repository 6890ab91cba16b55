/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaattr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/visaattrs/pkg/visaconsts"
)

func TestNamedValues(t *testing.T) {
	require := require.New(t)

	r := visaconsts.New(map[string]int64{"A": 1, "B": 2, "C": 3})
	nv, err := NewNamedValues(r, "A", "B", "C")
	require.NoError(err)

	require.Equal(ConstraintKind_Enum, nv.Kind())
	require.Equal(3, nv.Len())
	require.Equal([]string{"A", "B", "C"}, nv.Names())
	require.Equal("{A, B, C}", nv.String())

	t.Run("should convert between names and values", func(t *testing.T) {
		n, ok := nv.ToString(2)
		require.True(ok)
		require.Equal("B", n)

		v, ok := nv.FromString("B")
		require.True(ok)
		require.EqualValues(2, v)
	})

	t.Run("should return not found for unknown members", func(t *testing.T) {
		n, ok := nv.ToString(99)
		require.False(ok)
		require.Empty(n)

		_, ok = nv.FromString("D")
		require.False(ok)

		_, err := nv.Format(99)
		require.ErrorIs(err, ErrNotFoundError)

		_, err = nv.Parse("D")
		require.ErrorIs(err, ErrNotFoundError)
	})

	t.Run("should check membership by name", func(t *testing.T) {
		require.True(nv.Contains("A"))
		require.True(nv.Contains("C"))
		require.False(nv.Contains("D"))
		require.False(nv.Contains("a"))
	})

	t.Run("should round trip every name", func(t *testing.T) {
		for _, n := range nv.Names() {
			v, ok := nv.FromString(n)
			require.True(ok)
			s, ok := nv.ToString(v)
			require.True(ok)
			got, ok := nv.FromString(s)
			require.True(ok)
			require.Equal(v, got)

			s, err := nv.Format(v)
			require.NoError(err)
			require.Equal(n, s)
			got, err = nv.Parse(s)
			require.NoError(err)
			require.Equal(v, got)
		}
	})

	t.Run("names returned should be a copy", func(t *testing.T) {
		nn := nv.Names()
		nn[0] = "X"
		require.Equal([]string{"A", "B", "C"}, nv.Names())
	})
}

func TestNewNamedValuesErrors(t *testing.T) {
	r := visaconsts.New(map[string]int64{"A": 1, "B": 2, "AA": 1})

	tests := []struct {
		name  string
		names []string
		err   error
	}{
		{"unresolved name", []string{"A", "Z"}, ErrUnresolvedNameError},
		{"empty list", nil, ErrIncompatibleError},
		{"duplicate name", []string{"A", "B", "A"}, ErrIncompatibleError},
		{"duplicate value", []string{"A", "AA"}, ErrIncompatibleError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			nv, err := NewNamedValues(r, tt.names...)
			require.ErrorIs(err, tt.err)
			require.Nil(nv)
			require.Panics(func() { MustNamedValues(r, tt.names...) })
		})
	}

	t.Run("unresolved name should be reported", func(t *testing.T) {
		_, err := NewNamedValues(r, "A", "Z")
		require.ErrorContains(t, err, "«Z»")
	})
}

func TestNamedValuesStandard(t *testing.T) {
	require := require.New(t)

	nv := MustNamedValues(visaconsts.Provide(), "VI_STATE_ASSERTED", "VI_STATE_UNASSERTED", "VI_STATE_UNKNOWN")

	n, ok := nv.ToString(-1)
	require.True(ok)
	require.Equal("VI_STATE_UNKNOWN", n)

	v, ok := nv.FromString("VI_STATE_ASSERTED")
	require.True(ok)
	require.EqualValues(visaconsts.VI_STATE_ASSERTED, v)
}
