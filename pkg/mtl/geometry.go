//go:build darwin

package mtl

// The structs below cross the message-send boundary by value and mirror
// their Metal counterparts field for field. int and uint are 64 bits wide
// on darwin, matching NSInteger and NSUInteger.

// Origin is the x, y, z position of a pixel region.
type Origin struct {
	X, Y, Z int
}

// Size is the extent of a pixel region or a grid of threads.
type Size struct {
	Width, Height, Depth int
}

// SizeMake returns a Size with the given extents.
func SizeMake(width, height, depth int) Size {
	return Size{Width: width, Height: height, Depth: depth}
}

// Region is a rectangular block of pixels inside a texture.
type Region struct {
	Origin Origin
	Size   Size
}

// RegionMake1D returns a region covering a run of pixels in a 1D texture.
func RegionMake1D(x, width int) Region {
	return Region{
		Origin: Origin{X: x},
		Size:   Size{Width: width, Height: 1, Depth: 1},
	}
}

// RegionMake2D returns a region covering a rectangle in a 2D texture.
func RegionMake2D(x, y, width, height int) Region {
	return Region{
		Origin: Origin{X: x, Y: y},
		Size:   Size{Width: width, Height: height, Depth: 1},
	}
}

// RegionMake3D returns a region covering a box in a 3D texture.
func RegionMake3D(x, y, z, width, height, depth int) Region {
	return Region{
		Origin: Origin{X: x, Y: y, Z: z},
		Size:   Size{Width: width, Height: height, Depth: depth},
	}
}

// Viewport is the 3D rectangle rasterization maps clip space onto.
type Viewport struct {
	OriginX, OriginY float64
	Width, Height    float64
	ZNear, ZFar      float64
}

// ScissorRect limits rasterization to a rectangle of the render target.
type ScissorRect struct {
	X, Y          uint
	Width, Height uint
}

// ClearColor is the RGBA value written by a clear load action.
type ClearColor struct {
	Red, Green, Blue, Alpha float64
}

// SizeAndAlign is the size and alignment a heap needs to hold a resource.
type SizeAndAlign struct {
	Size  int
	Align int
}
