/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package visaattr

import "math"

// Numeric data kinds bounds
var dataKindBounds = map[DataKind]struct{ minimum, maximum int64 }{
	DataKind_Version:    {0, math.MaxUint32},
	DataKind_UInt8:      {0, math.MaxUint8},
	DataKind_UInt16:     {0, math.MaxUint16},
	DataKind_UInt32:     {0, math.MaxUint32},
	DataKind_Int16:      {math.MinInt16, math.MaxInt16},
	DataKind_AccessMode: {0, math.MaxUint32},
}

// Base for display strings of numeric values
const displayBase = 10
