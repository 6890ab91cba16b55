/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execForTest(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	err := execRootCmdTo(out, append([]string{"visaattr", "--no-color"}, args...), "1.0.0")
	return out.String(), err
}

func TestBasicUsage(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "list all attributes",
			args:     []string{"list"},
			contains: []string{"VI_ATTR_ASRL_BAUD", "VI_ATTR_RSRC_CLASS", "0x3FFF0021", "[5, 8]"},
		},
		{
			name:     "describe by name",
			args:     []string{"describe", "VI_ATTR_ASRL_PARITY"},
			contains: []string{"VI_ATTR_ASRL_PARITY (0x3FFF0023)", "Parity", "ReadWrite", "VI_ASRL_PAR_SPACE"},
		},
		{
			name:     "describe by short name",
			args:     []string{"describe", "asrl_data_bits"},
			contains: []string{"VI_ATTR_ASRL_DATA_BITS", "Number Of Data Bits", "range:  [5, 8]"},
		},
		{
			name:     "describe by id",
			args:     []string{"describe", "0x3FFF00C1"},
			contains: []string{"VI_ATTR_ASRL_XON_CHAR", "Local", "(UInt8) [0, 255]"},
		},
		{
			name:     "format enumeration value",
			args:     []string{"format", "VI_ATTR_ASRL_STOP_BITS", "15"},
			contains: []string{"VI_ASRL_STOP_ONE5"},
		},
		{
			name:     "format hexadecimal value",
			args:     []string{"format", "VI_ATTR_ASRL_XOFF_CHAR", "0x13"},
			contains: []string{"19"},
		},
		{
			name:     "parse enumeration name",
			args:     []string{"parse", "VI_ATTR_ASRL_FLOW_CNTRL", "VI_ASRL_FLOW_DTR_DSR"},
			contains: []string{"4"},
		},
		{
			name:     "parse line state",
			args:     []string{"parse", "0x3FFF00AE", "VI_STATE_UNKNOWN"},
			contains: []string{"-1"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require := require.New(t)
			out, err := execForTest(t, tc.args...)
			require.NoError(err)
			for _, s := range tc.contains {
				require.Contains(out, s)
			}
		})
	}
}

func TestListFilters(t *testing.T) {
	require := require.New(t)

	out, err := execForTest(t, "list", "--scope", "local", "--access", "rw", "-o", "json")
	require.NoError(err)

	vv := []attributeView{}
	require.NoError(json.Unmarshal([]byte(out), &vv))
	names := []string{}
	for _, v := range vv {
		require.Equal("Local", v.Scope)
		require.Equal("ReadWrite", v.Access)
		names = append(names, v.Name)
	}
	require.ElementsMatch([]string{
		"VI_ATTR_ASRL_END_IN",
		"VI_ATTR_ASRL_END_OUT",
		"VI_ATTR_ASRL_REPLACE_CHAR",
		"VI_ATTR_ASRL_XON_CHAR",
		"VI_ATTR_ASRL_XOFF_CHAR",
	}, names)
}

func TestListYAML(t *testing.T) {
	require := require.New(t)

	out, err := execForTest(t, "list", "--output", "yaml")
	require.NoError(err)

	vv := []attributeView{}
	require.NoError(yaml.Unmarshal([]byte(out), &vv))
	require.Len(vv, 27)

	for _, v := range vv {
		switch v.Name {
		case "VI_ATTR_RSRC_MANF_ID":
			require.Equal(&rangeView{Min: 0, Max: 0x3FFF}, v.Range)
		case "VI_ATTR_RSRC_LOCK_STATE":
			require.Equal([]namedValueView{
				{"VI_NO_LOCK", 0},
				{"VI_EXCLUSIVE_LOCK", 1},
				{"VI_SHARED_LOCK", 2},
			}, v.Values)
		}
	}
}

func TestErrors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		err  error
		msg  string
	}{
		{"unknown attribute with suggestion", []string{"describe", "VI_ATTR_ASRL_BUAD"}, errUnknownAttribute, "did you mean VI_ATTR_ASRL_BAUD?"},
		{"unknown identifier", []string{"describe", "0x3FFF0000"}, errUnknownAttribute, "0x3FFF0000"},
		{"invalid identifier", []string{"describe", "0xZZ"}, errUnknownAttribute, "0xZZ"},
		{"unknown output", []string{"list", "-o", "xml"}, errUnknownOutput, "xml"},
		{"unknown scope", []string{"list", "--scope", "remote"}, errUnknownFilter, "remote"},
		{"unknown access", []string{"list", "--access", "wo"}, errUnknownFilter, "wo"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require := require.New(t)
			_, err := execForTest(t, tc.args...)
			require.ErrorIs(err, tc.err)
			require.ErrorContains(err, tc.msg)
		})
	}

	t.Run("conversion errors", func(t *testing.T) {
		require := require.New(t)

		_, err := execForTest(t, "format", "VI_ATTR_ASRL_DATA_BITS", "9")
		require.ErrorContains(err, "out of bounds")

		_, err = execForTest(t, "parse", "VI_ATTR_ASRL_PARITY", "VI_ASRL_PAR_ANY")
		require.ErrorContains(err, "not found")

		_, err = execForTest(t, "format", "VI_ATTR_ASRL_BAUD", "fast")
		require.Error(err)

		_, err = execForTest(t, "parse", "VI_ATTR_RSRC_NAME", "GPIB0::1::INSTR")
		require.ErrorContains(err, "incompatible")
	})
}

func TestSuggest(t *testing.T) {
	require := require.New(t)

	catalog, err := wireCatalog()
	require.NoError(err)

	require.Equal("VI_ATTR_ASRL_PARITY", suggest(catalog, "VI_ATTR_ASRL_PARTY"))
	require.Equal("VI_ATTR_INTF_NUM", suggest(catalog, "VI_ATTR_INTF_NUMBER"))
	require.Empty(suggest(catalog, "VI_ATTR_SOMETHING_COMPLETELY_DIFFERENT"))
}
