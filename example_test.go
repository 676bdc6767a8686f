package aadraw_test

import (
	"fmt"

	"github.com/gogpu/aadraw"
)

func ExampleDrawCircle() {
	pm := aadraw.NewPixmap(20, 20)
	if err := aadraw.DrawCircle(pm, aadraw.Pt(10, 10), 5, aadraw.Red, aadraw.AntiAliasAccurate); err != nil {
		panic(err)
	}
	fmt.Println(pm.GetPixel(10, 10), pm.GetPixel(0, 0))
	// Output: {255 0 0 255} {0 0 0 0}
}

func ExampleOver() {
	c := aadraw.Over(aadraw.Blue.WithAlpha(0.5), aadraw.Red.WithAlpha(0.5))
	fmt.Printf("%.3f %.3f %.3f %.3f\n", c.R, c.G, c.B, c.A)
	// Output: 0.333 0.000 0.667 0.750
}

func ExampleParseColor() {
	c, err := aadraw.ParseColor("rgba(255, 128, 0, 0.5)")
	if err != nil {
		panic(err)
	}
	fmt.Println(c)
	// Output: {255 128 0 128}
}

func ExamplePosMMToPixel() {
	p, err := aadraw.PosMMToPixel(aadraw.Pt(25.4, 50.8), 300, aadraw.RoundNearest)
	if err != nil {
		panic(err)
	}
	fmt.Println(p.X, p.Y)
	// Output: 300 600
}
