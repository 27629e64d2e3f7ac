package geom

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BatchMinMax computes the minimum and maximum values in a slice using the
// widest vector width available on the host. Used for computing the bounds of
// raw coordinate arrays before binning or radix partitioning.
func BatchMinMax[T Scalar](data []T) (minVal, maxVal T) {
	if len(data) == 0 {
		return 0, 0
	}

	// Seed with the first element so Inf/NaN payloads in the data cannot be
	// masked by a sentinel initial value.
	initial := data[0]
	vMin := hwy.Set(initial)
	vMax := hwy.Set(initial)

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			v := hwy.Load(data[offset:])
			vMin = hwy.Min(vMin, v)
			vMax = hwy.Max(vMax, v)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[offset:])

			// Keep the running min/max in the lanes the mask leaves
			// unpopulated so MaskLoad's zero padding never participates.
			vMinSafe := hwy.IfThenElse(mask, v, vMin)
			vMaxSafe := hwy.IfThenElse(mask, v, vMax)

			vMin = hwy.Min(vMin, vMinSafe)
			vMax = hwy.Max(vMax, vMaxSafe)
		},
	)

	return hwy.ReduceMin(vMin), hwy.ReduceMax(vMax)
}

// BatchSum computes the component sums of a de-interleaved point soup.
func BatchSum[T Scalar](xs, ys, zs []T) (sumX, sumY, sumZ T) {
	size := min(len(xs), len(ys), len(zs))

	vSumX := hwy.Zero[T]()
	vSumY := hwy.Zero[T]()
	vSumZ := hwy.Zero[T]()

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			vSumX = hwy.Add(vSumX, hwy.Load(xs[offset:]))
			vSumY = hwy.Add(vSumY, hwy.Load(ys[offset:]))
			vSumZ = hwy.Add(vSumZ, hwy.Load(zs[offset:]))
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			vSumX = hwy.Add(vSumX, hwy.MaskLoad(mask, xs[offset:]))
			vSumY = hwy.Add(vSumY, hwy.MaskLoad(mask, ys[offset:]))
			vSumZ = hwy.Add(vSumZ, hwy.MaskLoad(mask, zs[offset:]))
		},
	)

	return hwy.ReduceSum(vSumX), hwy.ReduceSum(vSumY), hwy.ReduceSum(vSumZ)
}

// BatchBounds computes the bounding box of a de-interleaved point soup.
// The three slices must have equal length; extra elements in a longer slice
// are ignored. An empty soup yields the empty (inverted) box.
func BatchBounds[T Scalar](xs, ys, zs []T) Box[T] {
	size := min(len(xs), len(ys), len(zs))
	if size == 0 {
		return Empty[T]()
	}
	minX, maxX := BatchMinMax(xs[:size])
	minY, maxY := BatchMinMax(ys[:size])
	minZ, maxZ := BatchMinMax(zs[:size])
	return Box[T]{
		Min: Vec3[T]{minX, minY, minZ},
		Max: Vec3[T]{maxX, maxY, maxZ},
	}
}

// Deinterleave splits an array of points into per-axis coordinate slices,
// the layout BatchBounds and BatchSum consume.
func Deinterleave[T Scalar](pts []Vec3[T]) (xs, ys, zs []T) {
	xs = make([]T, len(pts))
	ys = make([]T, len(pts))
	zs = make([]T, len(pts))
	for i, p := range pts {
		xs[i] = p.X
		ys[i] = p.Y
		zs[i] = p.Z
	}
	return xs, ys, zs
}
