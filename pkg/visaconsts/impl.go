/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaconsts

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func newResolver(symbols map[string]int64) *resolver {
	r := &resolver{symbols: make(map[string]int64, len(symbols))}
	maps.Copy(r.symbols, symbols)
	return r
}

func (r *resolver) Resolve(name string) (int64, bool) {
	v, ok := r.symbols[name]
	return v, ok
}

// Returns sorted names of all constants known by resolver
func (r *resolver) Symbols() []string {
	nn := maps.Keys(r.symbols)
	slices.Sort(nn)
	return nn
}

func (r *mergedResolver) Resolve(name string) (int64, bool) {
	if v, ok := r.overrides.Resolve(name); ok {
		return v, true
	}
	return r.base.Resolve(name)
}

// Standard symbol table
var standardSymbols = map[string]int64{
	"VI_ATTR_RSRC_CLASS":        int64(VI_ATTR_RSRC_CLASS),
	"VI_ATTR_RSRC_NAME":         int64(VI_ATTR_RSRC_NAME),
	"VI_ATTR_RSRC_IMPL_VERSION": int64(VI_ATTR_RSRC_IMPL_VERSION),
	"VI_ATTR_RSRC_LOCK_STATE":   int64(VI_ATTR_RSRC_LOCK_STATE),
	"VI_ATTR_RSRC_SPEC_VERSION": int64(VI_ATTR_RSRC_SPEC_VERSION),
	"VI_ATTR_RSRC_MANF_NAME":    int64(VI_ATTR_RSRC_MANF_NAME),
	"VI_ATTR_RSRC_MANF_ID":      int64(VI_ATTR_RSRC_MANF_ID),

	"VI_ATTR_INTF_TYPE":      int64(VI_ATTR_INTF_TYPE),
	"VI_ATTR_INTF_NUM":       int64(VI_ATTR_INTF_NUM),
	"VI_ATTR_INTF_INST_NAME": int64(VI_ATTR_INTF_INST_NAME),

	"VI_ATTR_ASRL_BAUD":         int64(VI_ATTR_ASRL_BAUD),
	"VI_ATTR_ASRL_DATA_BITS":    int64(VI_ATTR_ASRL_DATA_BITS),
	"VI_ATTR_ASRL_PARITY":       int64(VI_ATTR_ASRL_PARITY),
	"VI_ATTR_ASRL_STOP_BITS":    int64(VI_ATTR_ASRL_STOP_BITS),
	"VI_ATTR_ASRL_FLOW_CNTRL":   int64(VI_ATTR_ASRL_FLOW_CNTRL),
	"VI_ATTR_ASRL_AVAIL_NUM":    int64(VI_ATTR_ASRL_AVAIL_NUM),
	"VI_ATTR_ASRL_CTS_STATE":    int64(VI_ATTR_ASRL_CTS_STATE),
	"VI_ATTR_ASRL_DCD_STATE":    int64(VI_ATTR_ASRL_DCD_STATE),
	"VI_ATTR_ASRL_DSR_STATE":    int64(VI_ATTR_ASRL_DSR_STATE),
	"VI_ATTR_ASRL_DTR_STATE":    int64(VI_ATTR_ASRL_DTR_STATE),
	"VI_ATTR_ASRL_END_IN":       int64(VI_ATTR_ASRL_END_IN),
	"VI_ATTR_ASRL_END_OUT":      int64(VI_ATTR_ASRL_END_OUT),
	"VI_ATTR_ASRL_REPLACE_CHAR": int64(VI_ATTR_ASRL_REPLACE_CHAR),
	"VI_ATTR_ASRL_RI_STATE":     int64(VI_ATTR_ASRL_RI_STATE),
	"VI_ATTR_ASRL_RTS_STATE":    int64(VI_ATTR_ASRL_RTS_STATE),
	"VI_ATTR_ASRL_XON_CHAR":     int64(VI_ATTR_ASRL_XON_CHAR),
	"VI_ATTR_ASRL_XOFF_CHAR":    int64(VI_ATTR_ASRL_XOFF_CHAR),

	"VI_NO_LOCK":        VI_NO_LOCK,
	"VI_EXCLUSIVE_LOCK": VI_EXCLUSIVE_LOCK,
	"VI_SHARED_LOCK":    VI_SHARED_LOCK,

	"VI_INTF_GPIB":     VI_INTF_GPIB,
	"VI_INTF_VXI":      VI_INTF_VXI,
	"VI_INTF_GPIB_VXI": VI_INTF_GPIB_VXI,
	"VI_INTF_ASRL":     VI_INTF_ASRL,
	"VI_INTF_TCPIP":    VI_INTF_TCPIP,
	"VI_INTF_USB":      VI_INTF_USB,

	"VI_ASRL_PAR_NONE":  VI_ASRL_PAR_NONE,
	"VI_ASRL_PAR_ODD":   VI_ASRL_PAR_ODD,
	"VI_ASRL_PAR_EVEN":  VI_ASRL_PAR_EVEN,
	"VI_ASRL_PAR_MARK":  VI_ASRL_PAR_MARK,
	"VI_ASRL_PAR_SPACE": VI_ASRL_PAR_SPACE,

	"VI_ASRL_STOP_ONE":  VI_ASRL_STOP_ONE,
	"VI_ASRL_STOP_ONE5": VI_ASRL_STOP_ONE5,
	"VI_ASRL_STOP_TWO":  VI_ASRL_STOP_TWO,

	"VI_ASRL_FLOW_NONE":     VI_ASRL_FLOW_NONE,
	"VI_ASRL_FLOW_XON_XOFF": VI_ASRL_FLOW_XON_XOFF,
	"VI_ASRL_FLOW_RTS_CTS":  VI_ASRL_FLOW_RTS_CTS,
	"VI_ASRL_FLOW_DTR_DSR":  VI_ASRL_FLOW_DTR_DSR,

	"VI_ASRL_END_NONE":     VI_ASRL_END_NONE,
	"VI_ASRL_END_LAST_BIT": VI_ASRL_END_LAST_BIT,
	"VI_ASRL_END_TERMCHAR": VI_ASRL_END_TERMCHAR,
	"VI_ASRL_END_BREAK":    VI_ASRL_END_BREAK,

	"VI_STATE_ASSERTED":   VI_STATE_ASSERTED,
	"VI_STATE_UNASSERTED": VI_STATE_UNASSERTED,
	"VI_STATE_UNKNOWN":    VI_STATE_UNKNOWN,
}
