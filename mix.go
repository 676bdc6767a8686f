package aadraw

// Mix linearly interpolates between a foreground and a background value:
// fg*alpha + bg*(1-alpha). It is the right blend for values that share one
// opaque background, such as anti-aliasing a paint onto a solid fill.
func Mix(fg, bg, alpha float64) float64 {
	return fg*alpha + bg*(1-alpha)
}

// MixRGBA applies Mix to every component of fg and bg, alpha included.
// Unlike MixColor it ignores the colours' own alpha when weighting the
// channels.
func MixRGBA(fg, bg RGBA, alpha float64) RGBA {
	return RGBA{
		R: Mix(fg.R, bg.R, alpha),
		G: Mix(fg.G, bg.G, alpha),
		B: Mix(fg.B, bg.B, alpha),
		A: Mix(fg.A, bg.A, alpha),
	}
}

// MixColorAlpha returns the alpha of a foreground with alpha af, scaled by
// the coverage alpha, composited over a background with alpha ab:
//
//	ab + alpha*af - ab*alpha*af
func MixColorAlpha(af, ab, alpha float64) float64 {
	return ab + alpha*af - ab*alpha*af
}

// MixColorChannel returns one colour channel of the composite described by
// MixColorAlpha:
//
//	(cb*ab*(1 - alpha*af) + cf*alpha*af) / MixColorAlpha(af, ab, alpha)
//
// A fully transparent result has no defined colour; 0 is returned.
func MixColorChannel(cf, af, cb, ab, alpha float64) float64 {
	ra := MixColorAlpha(af, ab, alpha)
	if ra == 0 {
		return 0
	}
	sa := alpha * af
	return (cb*ab*(1-sa) + cf*sa) / ra
}

// MixColor composites fg over bg after scaling fg's own alpha by the
// coverage alpha. This is the generalized Porter-Duff "over" for
// straight-alpha colours, so several translucent contributions can
// accumulate in one pixel in the right proportions.
//
// alpha == 0 returns bg and alpha == 1 returns fg unchanged. A result with
// zero alpha is Transparent.
//
// Compositing a straight-alpha colour c over bg is MixColor(c.Opaque(), bg, c.A).
func MixColor(fg, bg RGBA, alpha float64) RGBA {
	switch alpha {
	case 0:
		return bg
	case 1:
		return fg
	}

	ra := MixColorAlpha(fg.A, bg.A, alpha)
	if ra == 0 {
		return Transparent
	}
	return RGBA{
		R: MixColorChannel(fg.R, fg.A, bg.R, bg.A, alpha),
		G: MixColorChannel(fg.G, fg.A, bg.G, bg.A, alpha),
		B: MixColorChannel(fg.B, fg.A, bg.B, bg.A, alpha),
		A: ra,
	}
}

// Over composites the straight-alpha colour src over dst.
func Over(src, dst RGBA) RGBA {
	return MixColor(src.Opaque(), dst, src.A)
}
