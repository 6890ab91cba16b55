/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaattr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/visaattrs/pkg/visaconsts"
)

func TestProvide(t *testing.T) {
	require := require.New(t)

	c, err := Provide()
	require.NoError(err)
	require.Equal(27, c.Len())

	t.Run("identifiers should be unique and resolved", func(t *testing.T) {
		r := visaconsts.Provide()
		ids := map[visaconsts.AttrID]bool{}
		c.Attributes(func(a IAttribute) bool {
			require.False(ids[a.ID()], a.Name())
			ids[a.ID()] = true

			v, ok := r.Resolve(a.Name())
			require.True(ok)
			require.EqualValues(v, a.ID())
			return true
		})
		require.Len(ids, 27)
	})

	t.Run("every descriptor should be complete", func(t *testing.T) {
		c.Attributes(func(a IAttribute) bool {
			require.NotEqual(AccessKind_null, a.Access(), a.Name())
			require.NotEqual(ScopeKind_null, a.Scope(), a.Name())
			require.NotEqual(DataKind_null, a.Data(), a.Name())
			require.NotEmpty(a.ShortDesc(), a.Name())
			require.NotEmpty(a.Description(), a.Name())
			return true
		})
	})

	t.Run("each call should build new catalog", func(t *testing.T) {
		c2 := MustProvide()
		require.NotSame(c, c2)
		require.Equal(c.Names(), c2.Names())
	})
}

func TestStandardAttributes(t *testing.T) {
	c := MustProvide()

	t.Run("serial data bits", func(t *testing.T) {
		require := require.New(t)
		a, ok := c.Attribute(visaconsts.VI_ATTR_ASRL_DATA_BITS)
		require.True(ok)
		require.Equal("VI_ATTR_ASRL_DATA_BITS", a.Name())
		require.True(a.Writable())
		require.Equal(ScopeKind_Global, a.Scope())
		require.Equal(DataKind_UInt16, a.Data())

		for v := int64(5); v <= 8; v++ {
			_, err := a.Format(v)
			require.NoError(err)
		}
		for _, v := range []int64{4, 9} {
			_, err := a.Format(v)
			require.ErrorIs(err, ErrOutOfBoundsError)
		}
	})

	t.Run("serial parity", func(t *testing.T) {
		require := require.New(t)
		s, err := c.Format(visaconsts.VI_ATTR_ASRL_PARITY, visaconsts.VI_ASRL_PAR_EVEN)
		require.NoError(err)
		require.Equal("VI_ASRL_PAR_EVEN", s)

		v, err := c.Parse(visaconsts.VI_ATTR_ASRL_PARITY, "VI_ASRL_PAR_MARK")
		require.NoError(err)
		require.EqualValues(visaconsts.VI_ASRL_PAR_MARK, v)
	})

	t.Run("line states", func(t *testing.T) {
		require := require.New(t)
		for _, id := range []visaconsts.AttrID{
			visaconsts.VI_ATTR_ASRL_CTS_STATE,
			visaconsts.VI_ATTR_ASRL_DCD_STATE,
			visaconsts.VI_ATTR_ASRL_DSR_STATE,
			visaconsts.VI_ATTR_ASRL_DTR_STATE,
			visaconsts.VI_ATTR_ASRL_RI_STATE,
			visaconsts.VI_ATTR_ASRL_RTS_STATE,
		} {
			s, err := c.Format(id, -1)
			require.NoError(err)
			require.Equal("VI_STATE_UNKNOWN", s)
		}
	})

	t.Run("session local attributes", func(t *testing.T) {
		require := require.New(t)
		local := []string{}
		c.Attributes(func(a IAttribute) bool {
			if a.Scope() == ScopeKind_Local {
				local = append(local, a.Name())
			}
			return true
		})
		require.ElementsMatch([]string{
			"VI_ATTR_ASRL_END_IN",
			"VI_ATTR_ASRL_END_OUT",
			"VI_ATTR_ASRL_REPLACE_CHAR",
			"VI_ATTR_ASRL_XON_CHAR",
			"VI_ATTR_ASRL_XOFF_CHAR",
		}, local)
	})

	t.Run("characters are limited by data kind", func(t *testing.T) {
		require := require.New(t)
		s, err := c.Format(visaconsts.VI_ATTR_ASRL_XON_CHAR, 0x11)
		require.NoError(err)
		require.Equal("17", s)

		_, err = c.Format(visaconsts.VI_ATTR_ASRL_XON_CHAR, 0x100)
		require.ErrorIs(err, ErrOutOfBoundsError)
	})

	t.Run("string attributes have no numeric form", func(t *testing.T) {
		require := require.New(t)
		_, err := c.Format(visaconsts.VI_ATTR_RSRC_NAME, 0)
		require.ErrorIs(err, ErrIncompatibleError)
	})

	t.Run("enumerations round trip", func(t *testing.T) {
		c.Attributes(func(a IAttribute) bool {
			nv, ok := a.Constraint().(*NamedValues)
			if !ok {
				return true
			}
			for _, n := range nv.Names() {
				v, err := a.Parse(n)
				require.NoError(t, err)
				s, err := a.Format(v)
				require.NoError(t, err)
				require.Equal(t, n, s)
			}
			return true
		})
	})
}

func TestProvideWithIncompleteResolver(t *testing.T) {
	t.Run("missed enumeration member", func(t *testing.T) {
		require := require.New(t)
		symbols := map[string]int64{}
		r := visaconsts.Provide()
		for _, n := range r.Symbols() {
			if n != "VI_ASRL_PAR_SPACE" {
				symbols[n], _ = r.Resolve(n)
			}
		}
		c, err := ProvideWith(visaconsts.New(symbols))
		require.ErrorIs(err, ErrUnresolvedNameError)
		require.ErrorContains(err, "VI_ASRL_PAR_SPACE")
		require.Nil(c)
	})

	t.Run("missed attribute", func(t *testing.T) {
		require := require.New(t)
		symbols := map[string]int64{}
		r := visaconsts.Provide()
		for _, n := range r.Symbols() {
			if n != "VI_ATTR_ASRL_BAUD" {
				symbols[n], _ = r.Resolve(n)
			}
		}
		c, err := ProvideWith(visaconsts.New(symbols))
		require.ErrorIs(err, ErrUnresolvedNameError)
		require.ErrorContains(err, "VI_ATTR_ASRL_BAUD")
		require.Nil(c)
	})

	t.Run("attributes sharing identifier", func(t *testing.T) {
		require := require.New(t)
		r := visaconsts.Merge(visaconsts.Provide(), map[string]int64{
			"VI_ATTR_ASRL_XOFF_CHAR": int64(visaconsts.VI_ATTR_ASRL_XON_CHAR),
		})
		c, err := ProvideWith(r)
		require.ErrorIs(err, ErrAlreadyExistsError)
		require.Nil(c)
	})
}
