package body

import (
	"fmt"
	"math"
)

// Shape generators. Each returns a Body whose body-fixed coordinates are
// centered on the mean of the generated points, posed at the origin with
// zero angle. The motion engine consumes bodies only through the fields
// on [Body]; nothing here is kinematic.

// Circle generates n points uniformly distributed on a circle.
func Circle(radius float64, n int) *Body {
	xb := make([]float64, n)
	yb := make([]float64, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		xb[i] = radius * math.Cos(theta)
		yb[i] = radius * math.Sin(theta)
	}
	return New(xb, yb)
}

// Ellipse generates n points on an ellipse with semi-axes a (x) and b (y),
// uniform in the parametric angle.
func Ellipse(a, b float64, n int) *Body {
	xb := make([]float64, n)
	yb := make([]float64, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		xb[i] = a * math.Cos(theta)
		yb[i] = b * math.Sin(theta)
	}
	return New(xb, yb)
}

// Rectangle generates points along the perimeter of a rectangle with
// half-width a and half-height b, distributing n points proportionally
// to side length.
func Rectangle(a, b float64, n int) *Body {
	verts := [][2]float64{{a, -b}, {a, b}, {-a, b}, {-a, -b}}
	return polygonPoints(verts, n, false)
}

// Plate generates a zero-thickness flat plate of the given length with n
// points along it, plus the midpoint representation between adjacent
// points.
func Plate(length float64, n int) *Body {
	xb := make([]float64, n)
	yb := make([]float64, n)
	ds := length / float64(n-1)
	for i := 0; i < n; i++ {
		xb[i] = -0.5*length + float64(i)*ds
	}
	bd := &Body{
		XB:    xb,
		YB:    yb,
		X:     make([]float64, n),
		Y:     make([]float64, n),
		XBMid: make([]float64, n-1),
		YBMid: make([]float64, n-1),
		XMid:  make([]float64, n-1),
		YMid:  make([]float64, n-1),
	}
	for i := 0; i < n-1; i++ {
		bd.XBMid[i] = 0.5 * (xb[i] + xb[i+1])
	}
	Identity().ApplyTo(bd)
	return bd
}

// Polygon generates n points along the closed perimeter through the
// given vertices, spaced uniformly in arc length. With shifted set, the
// points are offset by half a spacing so that no point falls on the
// first vertex. Both variants carry segment midpoints.
func Polygon(xs, ys []float64, n int, shifted bool) (*Body, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("body: polygon vertex length mismatch %d != %d", len(xs), len(ys))
	}
	if len(xs) < 3 {
		return nil, fmt.Errorf("body: polygon needs at least 3 vertices, got %d", len(xs))
	}
	verts := make([][2]float64, len(xs))
	for i := range xs {
		verts[i] = [2]float64{xs[i], ys[i]}
	}
	return polygonPoints(verts, n, shifted), nil
}

// polygonPoints walks the closed perimeter and places n points uniformly
// in arc length, then attaches segment midpoints and centers on the mean.
func polygonPoints(verts [][2]float64, n int, shifted bool) *Body {
	m := len(verts)
	seg := make([]float64, m)
	perim := 0.0
	for i := 0; i < m; i++ {
		j := (i + 1) % m
		dx := verts[j][0] - verts[i][0]
		dy := verts[j][1] - verts[i][1]
		seg[i] = math.Hypot(dx, dy)
		perim += seg[i]
	}

	ds := perim / float64(n)
	offset := 0.0
	if shifted {
		offset = 0.5 * ds
	}

	xb := make([]float64, n)
	yb := make([]float64, n)
	for k := 0; k < n; k++ {
		s := math.Mod(offset+float64(k)*ds, perim)
		i := 0
		for s > seg[i] && i < m-1 {
			s -= seg[i]
			i++
		}
		j := (i + 1) % m
		frac := 0.0
		if seg[i] > 0 {
			frac = s / seg[i]
		}
		xb[k] = verts[i][0] + frac*(verts[j][0]-verts[i][0])
		yb[k] = verts[i][1] + frac*(verts[j][1]-verts[i][1])
	}
	center(xb, yb)

	bd := &Body{
		XB:    xb,
		YB:    yb,
		X:     make([]float64, n),
		Y:     make([]float64, n),
		XBMid: make([]float64, n),
		YBMid: make([]float64, n),
		XMid:  make([]float64, n),
		YMid:  make([]float64, n),
	}
	for k := 0; k < n; k++ {
		next := (k + 1) % n
		bd.XBMid[k] = 0.5 * (xb[k] + xb[next])
		bd.YBMid[k] = 0.5 * (yb[k] + yb[next])
	}
	Identity().ApplyTo(bd)
	return bd
}

// SplinedPoints resamples a closed curve through the given control
// points to n points uniformly spaced in (chordal) arc length, using
// Catmull-Rom interpolation between control points.
func SplinedPoints(xs, ys []float64, n int) (*Body, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("body: spline point length mismatch %d != %d", len(xs), len(ys))
	}
	m := len(xs)
	if m < 4 {
		return nil, fmt.Errorf("body: spline needs at least 4 control points, got %d", m)
	}

	seg := make([]float64, m)
	total := 0.0
	for i := 0; i < m; i++ {
		j := (i + 1) % m
		seg[i] = math.Hypot(xs[j]-xs[i], ys[j]-ys[i])
		total += seg[i]
	}

	xb := make([]float64, n)
	yb := make([]float64, n)
	for k := 0; k < n; k++ {
		s := total * float64(k) / float64(n)
		i := 0
		for s > seg[i] && i < m-1 {
			s -= seg[i]
			i++
		}
		u := 0.0
		if seg[i] > 0 {
			u = s / seg[i]
		}
		p0 := (i - 1 + m) % m
		p1 := i
		p2 := (i + 1) % m
		p3 := (i + 2) % m
		xb[k] = catmullRom(xs[p0], xs[p1], xs[p2], xs[p3], u)
		yb[k] = catmullRom(ys[p0], ys[p1], ys[p2], ys[p3], u)
	}
	center(xb, yb)
	return New(xb, yb), nil
}

// catmullRom evaluates the uniform Catmull-Rom segment between p1 and p2
// at parameter u in [0, 1].
func catmullRom(p0, p1, p2, p3, u float64) float64 {
	return 0.5 * ((2 * p1) +
		(-p0+p2)*u +
		(2*p0-5*p1+4*p2-p3)*u*u +
		(-p0+3*p1-3*p2+p3)*u*u*u)
}

// NACA4 generates an n-point closed contour of a four-digit NACA
// airfoil with unit chord: camber (maximum camber as a fraction of
// chord), pos (chordwise position of maximum camber), and thickness
// (maximum thickness as a fraction of chord). Cosine spacing clusters
// points at the leading and trailing edges; the trailing edge is closed.
func NACA4(camber, pos, thickness float64, n int) *Body {
	xb := make([]float64, n)
	yb := make([]float64, n)
	// Upper surface from trailing edge to leading edge, then lower back.
	for k := 0; k < n; k++ {
		beta := 2 * math.Pi * float64(k) / float64(n)
		xc := 0.5 * (1 + math.Cos(beta))
		yt := naca4Thickness(thickness, xc)
		yc, dyc := naca4Camber(camber, pos, xc)
		theta := math.Atan(dyc)
		if beta <= math.Pi {
			xb[k] = xc - yt*math.Sin(theta)
			yb[k] = yc + yt*math.Cos(theta)
		} else {
			xb[k] = xc + yt*math.Sin(theta)
			yb[k] = yc - yt*math.Cos(theta)
		}
	}
	center(xb, yb)
	return New(xb, yb)
}

func naca4Thickness(t, x float64) float64 {
	// Closed trailing edge variant (last coefficient -0.1036).
	return 5 * t * (0.2969*math.Sqrt(x) - 0.1260*x - 0.3516*x*x +
		0.2843*x*x*x - 0.1036*x*x*x*x)
}

func naca4Camber(m, p, x float64) (yc, dyc float64) {
	if m == 0 || p == 0 {
		return 0, 0
	}
	if x < p {
		yc = m / (p * p) * (2*p*x - x*x)
		dyc = 2 * m / (p * p) * (p - x)
	} else {
		yc = m / ((1 - p) * (1 - p)) * ((1 - 2*p) + 2*p*x - x*x)
		dyc = 2 * m / ((1 - p) * (1 - p)) * (p - x)
	}
	return yc, dyc
}

// center shifts the coordinates so the mean point sits at the origin.
func center(xb, yb []float64) {
	var mx, my float64
	for i := range xb {
		mx += xb[i]
		my += yb[i]
	}
	mx /= float64(len(xb))
	my /= float64(len(yb))
	for i := range xb {
		xb[i] -= mx
		yb[i] -= my
	}
}
