package pipeline_test

import (
	"fmt"
	"image"

	"github.com/gogpu/aadraw"
	"github.com/gogpu/aadraw/pipeline"
)

func ExampleDescribe() {
	chain := pipeline.NewChain([]pipeline.Unit{
		pipeline.NewMargin(1, 1, 1, 1, aadraw.Black),
	})
	fmt.Println(pipeline.Describe(chain))
	// Output:
	// class: pipeline.Chain
	// name: Chain
	// description: Forwards its sub-units in order.
	// recipe:
	//   class: pipeline.Margin
	//   name: Margin
	//   description: Adds a margin around the image.
	//   recipe:
	//     left=1, right=1, top=1, bottom=1, color=#000000ff
}

func ExampleChain_Forward() {
	c := pipeline.NewCanvas(image.NewNRGBA(image.Rect(0, 0, 4, 4)))
	chain := pipeline.NewChain([]pipeline.Unit{
		pipeline.NewMargin(2, 2, 2, 2, aadraw.White),
		pipeline.NewCircle(aadraw.Pt(1, 1), 0.5, aadraw.Red, pipeline.WithPPI(25.4)),
	})
	if err := chain.Forward(c); err != nil {
		panic(err)
	}
	fmt.Println(c.Current().Bounds())
	// Output: (0,0)-(8,8)
}
