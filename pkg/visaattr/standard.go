/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaattr

import "github.com/voedger/visaattrs/pkg/visaconsts"

// Returns definitions of standard VISA attributes, keyed by symbolic name.
//
// Enumeration members are resolved by specified resolver.
//
// # Errors:
//   - ErrUnresolvedNameError if resolver does not know some enumeration member
func StandardAttributes(r visaconsts.IResolver) (map[string]AttributeDef, error) {
	var err error
	enum := func(names ...string) IConstraint {
		nv, e := NewNamedValues(r, names...)
		if e != nil {
			if err == nil {
				err = e
			}
			return nil
		}
		return nv
	}
	lineState := func() IConstraint {
		return enum("VI_STATE_ASSERTED", "VI_STATE_UNASSERTED", "VI_STATE_UNKNOWN")
	}

	const (
		ro     = AccessKind_ReadOnly
		rw     = AccessKind_ReadWrite
		global = ScopeKind_Global
		local  = ScopeKind_Local
	)

	defs := map[string]AttributeDef{
		// Template attributes

		"VI_ATTR_RSRC_IMPL_VERSION": Define(ro, global, DataKind_Version,
			MustRange(0, 0xFFFFFFFF),
			"implementation version",
			"Resource version that uniquely identifies each of the different "+
				"revisions or implementations of a resource."),

		"VI_ATTR_RSRC_LOCK_STATE": Define(ro, global, DataKind_AccessMode,
			enum("VI_NO_LOCK", "VI_EXCLUSIVE_LOCK", "VI_SHARED_LOCK"),
			"lock state",
			"The current locking state of the resource. The resource can be "+
				"unlocked, locked with an exclusive lock, or locked with a shared lock."),

		"VI_ATTR_RSRC_MANF_ID": Define(ro, global, DataKind_UInt16,
			MustRange(0, 0x3FFF),
			"resource manufacturer ID",
			"A value that corresponds to the VXI manufacturer ID of the "+
				"manufacturer that created the implementation."),

		"VI_ATTR_RSRC_MANF_NAME": Define(ro, global, DataKind_String, nil,
			"resource manufacturer name",
			"A string that corresponds to the VXI manufacturer name of the "+
				"manufacturer that created the implementation."),

		"VI_ATTR_RSRC_NAME": Define(ro, global, DataKind_Rsrc, nil,
			"resource name",
			"The unique identifier for a resource compliant with the address "+
				"structure presented in Section 4.4.1, Address String."),

		"VI_ATTR_RSRC_SPEC_VERSION": Define(ro, global, DataKind_Version, nil,
			"resource specification version",
			"Resource version that uniquely identifies the version of the VISA "+
				"specification to which the implementation is compliant."),

		"VI_ATTR_RSRC_CLASS": Define(ro, global, DataKind_String, nil,
			"resource class",
			"Specifies the resource class (for example, INSTR)."),

		// Generic INSTR resource attributes

		"VI_ATTR_INTF_NUM": Define(ro, global, DataKind_UInt16,
			MustRange(0, 0xFFFF),
			"interface number",
			"Board number for the given interface."),

		"VI_ATTR_INTF_TYPE": Define(ro, global, DataKind_UInt16,
			enum("VI_INTF_VXI", "VI_INTF_GPIB", "VI_INTF_GPIB_VXI", "VI_INTF_ASRL", "VI_INTF_TCPIP", "VI_INTF_USB"),
			"interface type",
			"Interface type of the given session."),

		"VI_ATTR_INTF_INST_NAME": Define(ro, global, DataKind_String, nil,
			"interface name",
			"Human-readable text describing the given interface."),

		// ASRL specific INSTR resource attributes

		"VI_ATTR_ASRL_AVAIL_NUM": Define(ro, global, DataKind_UInt32, nil,
			"number of bytes available at serial port",
			"Shows the number of bytes available in the low-level I/O receive buffer."),

		"VI_ATTR_ASRL_BAUD": Define(rw, global, DataKind_UInt32, nil,
			"serial baud rate",
			"Baud rate of the interface. Any rate representable as an unsigned "+
				"32-bit integer is accepted, usually a common one such as 9600."),

		"VI_ATTR_ASRL_DATA_BITS": Define(rw, global, DataKind_UInt16,
			MustRange(5, 8),
			"number of data bits",
			"Number of data bits contained in each frame, from 5 to 8."),

		"VI_ATTR_ASRL_PARITY": Define(rw, global, DataKind_UInt16,
			enum("VI_ASRL_PAR_NONE", "VI_ASRL_PAR_ODD", "VI_ASRL_PAR_EVEN", "VI_ASRL_PAR_MARK", "VI_ASRL_PAR_SPACE"),
			"parity",
			"Parity used with every frame transmitted and received."),

		"VI_ATTR_ASRL_STOP_BITS": Define(rw, global, DataKind_UInt16,
			enum("VI_ASRL_STOP_ONE", "VI_ASRL_STOP_ONE5", "VI_ASRL_STOP_TWO"),
			"number of stop bits",
			"Number of stop bits used to indicate the end of a frame. "+
				"VI_ASRL_STOP_ONE5 stands for one and a half stop bits."),

		"VI_ATTR_ASRL_FLOW_CNTRL": Define(rw, global, DataKind_UInt16,
			enum("VI_ASRL_FLOW_NONE", "VI_ASRL_FLOW_XON_XOFF", "VI_ASRL_FLOW_RTS_CTS", "VI_ASRL_FLOW_DTR_DSR"),
			"flow control",
			"Type of flow control used by the transfer mechanism."),

		"VI_ATTR_ASRL_END_IN": Define(rw, local, DataKind_UInt16,
			enum("VI_ASRL_END_NONE", "VI_ASRL_END_LAST_BIT", "VI_ASRL_END_TERMCHAR"),
			"input end mode",
			"Method used to terminate read operations."),

		"VI_ATTR_ASRL_END_OUT": Define(rw, local, DataKind_UInt16,
			enum("VI_ASRL_END_NONE", "VI_ASRL_END_LAST_BIT", "VI_ASRL_END_TERMCHAR", "VI_ASRL_END_BREAK"),
			"output end mode",
			"Method used to terminate write operations."),

		"VI_ATTR_ASRL_CTS_STATE": Define(ro, global, DataKind_Int16, lineState(),
			"clear to send state",
			"Current state of the Clear To Send (CTS) input signal."),

		"VI_ATTR_ASRL_DCD_STATE": Define(ro, global, DataKind_Int16, lineState(),
			"data carrier detect state",
			"Current state of the Data Carrier Detect (DCD) input signal."),

		"VI_ATTR_ASRL_DSR_STATE": Define(ro, global, DataKind_Int16, lineState(),
			"data set ready state",
			"Current state of the Data Set Ready (DSR) input signal."),

		"VI_ATTR_ASRL_DTR_STATE": Define(rw, global, DataKind_Int16, lineState(),
			"data terminal ready state",
			"Asserts or unasserts the Data Terminal Ready (DTR) output signal."),

		"VI_ATTR_ASRL_RI_STATE": Define(ro, global, DataKind_Int16, lineState(),
			"ring indicator state",
			"Current state of the Ring Indicator (RI) input signal."),

		"VI_ATTR_ASRL_RTS_STATE": Define(rw, global, DataKind_Int16, lineState(),
			"request to send state",
			"Asserts or unasserts the Request To Send (RTS) output signal."),

		"VI_ATTR_ASRL_REPLACE_CHAR": Define(rw, local, DataKind_UInt8, nil,
			"error replacement character",
			"Character used to replace incoming characters that arrive with errors, such as parity errors."),

		"VI_ATTR_ASRL_XON_CHAR": Define(rw, local, DataKind_UInt8, nil,
			"XON character",
			"Value of the XON character used for XON/XOFF flow control in both directions."),

		"VI_ATTR_ASRL_XOFF_CHAR": Define(rw, local, DataKind_UInt8, nil,
			"XOFF character",
			"Value of the XOFF character used for XON/XOFF flow control in both directions."),
	}

	if err != nil {
		return nil, err
	}
	return defs, nil
}
