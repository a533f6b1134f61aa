// Command geoviz draws lines, circles and rectangles from a file of points
// and reports where they intersect.
//
// Usage:
//
//	geoviz render --input points.txt --mode circle --output out.png
//	geoviz render --input points.txt --load
//	geoviz version
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
