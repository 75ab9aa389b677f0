package floatfmt

// Well-known IEEE 754 binary interchange layouts. Each call returns a fresh
// mutable value, so callers can tweak a copy without affecting later callers.

// IEEEHalf returns the binary16 layout.
func IEEEHalf() *Format {
	return &Format{
		TotalSize: 16,
		SignStart: 0,
		ExpStart:  1,
		ExpLen:    5,
		ExpBias:   15,
		ExpNaN:    31,
		ManStart:  6,
		ManLen:    10,
		IntBit:    IntBitImplicit,
		Name:      "ieee_half",
	}
}

// IEEESingle returns the binary32 layout.
func IEEESingle() *Format {
	return &Format{
		TotalSize: 32,
		SignStart: 0,
		ExpStart:  1,
		ExpLen:    8,
		ExpBias:   127,
		ExpNaN:    255,
		ManStart:  9,
		ManLen:    23,
		IntBit:    IntBitImplicit,
		Name:      "ieee_single",
	}
}

// IEEEDouble returns the binary64 layout.
func IEEEDouble() *Format {
	return &Format{
		TotalSize: 64,
		SignStart: 0,
		ExpStart:  1,
		ExpLen:    11,
		ExpBias:   1023,
		ExpNaN:    2047,
		ManStart:  12,
		ManLen:    52,
		IntBit:    IntBitImplicit,
		Name:      "ieee_double",
	}
}

// IEEEQuad returns the binary128 layout.
func IEEEQuad() *Format {
	return &Format{
		TotalSize: 128,
		SignStart: 0,
		ExpStart:  1,
		ExpLen:    15,
		ExpBias:   16383,
		ExpNaN:    32767,
		ManStart:  16,
		ManLen:    112,
		IntBit:    IntBitImplicit,
		Name:      "ieee_quad",
	}
}
