/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaconsts

// Template attributes, VPP-4.3 table 3.2.1
const (
	VI_ATTR_RSRC_CLASS        AttrID = 0xBFFF0001
	VI_ATTR_RSRC_NAME         AttrID = 0xBFFF0002
	VI_ATTR_RSRC_IMPL_VERSION AttrID = 0x3FFF0003
	VI_ATTR_RSRC_LOCK_STATE   AttrID = 0x3FFF0004
	VI_ATTR_RSRC_SPEC_VERSION AttrID = 0x3FFF0170
	VI_ATTR_RSRC_MANF_NAME    AttrID = 0xBFFF0174
	VI_ATTR_RSRC_MANF_ID      AttrID = 0x3FFF0175
)

// Generic INSTR resource attributes
const (
	VI_ATTR_INTF_TYPE      AttrID = 0x3FFF0171
	VI_ATTR_INTF_NUM       AttrID = 0x3FFF0176
	VI_ATTR_INTF_INST_NAME AttrID = 0xBFFF00E9
)

// ASRL specific INSTR resource attributes
const (
	VI_ATTR_ASRL_BAUD         AttrID = 0x3FFF0021
	VI_ATTR_ASRL_DATA_BITS    AttrID = 0x3FFF0022
	VI_ATTR_ASRL_PARITY       AttrID = 0x3FFF0023
	VI_ATTR_ASRL_STOP_BITS    AttrID = 0x3FFF0024
	VI_ATTR_ASRL_FLOW_CNTRL   AttrID = 0x3FFF0025
	VI_ATTR_ASRL_AVAIL_NUM    AttrID = 0x3FFF00AC
	VI_ATTR_ASRL_CTS_STATE    AttrID = 0x3FFF00AE
	VI_ATTR_ASRL_DCD_STATE    AttrID = 0x3FFF00AF
	VI_ATTR_ASRL_DSR_STATE    AttrID = 0x3FFF00B1
	VI_ATTR_ASRL_DTR_STATE    AttrID = 0x3FFF00B2
	VI_ATTR_ASRL_END_IN       AttrID = 0x3FFF00B3
	VI_ATTR_ASRL_END_OUT      AttrID = 0x3FFF00B4
	VI_ATTR_ASRL_REPLACE_CHAR AttrID = 0x3FFF00BE
	VI_ATTR_ASRL_RI_STATE     AttrID = 0x3FFF00BF
	VI_ATTR_ASRL_RTS_STATE    AttrID = 0x3FFF00C0
	VI_ATTR_ASRL_XON_CHAR     AttrID = 0x3FFF00C1
	VI_ATTR_ASRL_XOFF_CHAR    AttrID = 0x3FFF00C2
)

// Lock states
const (
	VI_NO_LOCK        = 0
	VI_EXCLUSIVE_LOCK = 1
	VI_SHARED_LOCK    = 2
)

// Interface types
const (
	VI_INTF_GPIB     = 1
	VI_INTF_VXI      = 2
	VI_INTF_GPIB_VXI = 3
	VI_INTF_ASRL     = 4
	VI_INTF_TCPIP    = 6
	VI_INTF_USB      = 7
)

// Serial parity
const (
	VI_ASRL_PAR_NONE  = 0
	VI_ASRL_PAR_ODD   = 1
	VI_ASRL_PAR_EVEN  = 2
	VI_ASRL_PAR_MARK  = 3
	VI_ASRL_PAR_SPACE = 4
)

// Serial stop bits, in tenths of a bit
const (
	VI_ASRL_STOP_ONE  = 10
	VI_ASRL_STOP_ONE5 = 15
	VI_ASRL_STOP_TWO  = 20
)

// Serial flow control
const (
	VI_ASRL_FLOW_NONE     = 0
	VI_ASRL_FLOW_XON_XOFF = 1
	VI_ASRL_FLOW_RTS_CTS  = 2
	VI_ASRL_FLOW_DTR_DSR  = 4
)

// Serial end-of-transfer modes
const (
	VI_ASRL_END_NONE     = 0
	VI_ASRL_END_LAST_BIT = 1
	VI_ASRL_END_TERMCHAR = 2
	VI_ASRL_END_BREAK    = 3
)

// Line states
const (
	VI_STATE_ASSERTED   = 1
	VI_STATE_UNASSERTED = 0
	VI_STATE_UNKNOWN    = -1
)
