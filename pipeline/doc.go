// Package pipeline edits an image through an ordered chain of processing
// units.
//
// A Canvas holds the decoded source image and the pixmap being edited. Each
// Unit transforms the canvas in place; a Chain forwards its sub-units in
// order and stops at the first failure.
//
//	c, err := pipeline.Open("photo.jpg")
//	if err != nil {
//		return err
//	}
//	chain := pipeline.NewChain([]pipeline.Unit{
//		pipeline.NewMargin(40, 40, 40, 120, aadraw.White),
//		pipeline.NewCircle(aadraw.Pt(10, 10), 2, aadraw.Red, pipeline.WithPPI(300)),
//	})
//	if err := chain.Forward(c); err != nil {
//		return err
//	}
//	return c.Save("framed.png")
//
// Units log their forwarding through aadraw.Logger.
package pipeline
