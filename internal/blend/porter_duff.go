package blend

// blendSource replaces destination with source.
func blendSource(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return sr, sg, sb, sa
}

// blendSourceOver composites source over destination.
//
// With straight alpha, in units of 1:
//
//	Ra = Sa + Da*(1-Sa)
//	Rc = (Sc*Sa + Dc*Da*(1-Sa)) / Ra
//
// The weights are kept in units of 255*255 so the only rounding happens in
// the final division.
func blendSourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	switch {
	case sa == 0:
		return dr, dg, db, da
	case sa == 255 || da == 0:
		return sr, sg, sb, sa
	}

	sw := uint32(sa) * 255
	dw := uint32(da) * (255 - uint32(sa))
	ra := sw + dw

	return channelOver(sr, sw, dr, dw, ra),
		channelOver(sg, sw, dg, dw, ra),
		channelOver(sb, sw, db, dw, ra),
		byte((ra + 127) / 255)
}

// channelOver returns the weighted average (s*sw + d*dw) / ra rounded to
// the nearest byte. ra must be positive.
func channelOver(s byte, sw uint32, d byte, dw uint32, ra uint32) byte {
	return byte((uint32(s)*sw + uint32(d)*dw + ra/2) / ra)
}
