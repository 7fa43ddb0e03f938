package water

import "math"

// Classic 3D Perlin noise in the GLSL formulation used by water.vert. Both
// sides must stay in sync so CPU sampling matches what the GPU draws.

func mod289(x float64) float64 {
	return x - 289*math.Floor(x/289)
}

func permute(x float64) float64 {
	return mod289((x*34 + 1) * x)
}

func taylorInvSqrt(r float64) float64 {
	return 1.79284291400159 - 0.85373472095314*r
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}

func step(edge, x float64) float64 {
	if x < edge {
		return 0
	}
	return 1
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

type vec3 [3]float64

func dot3(a, b vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// gradients expands four lattice hashes into normalized gradient vectors.
func gradients(ixy [4]float64) [4]vec3 {
	var g [4]vec3
	for k := 0; k < 4; k++ {
		gx := ixy[k] / 7
		gy := fract(math.Floor(gx)/7) - 0.5
		gx = fract(gx)
		gz := 0.5 - math.Abs(gx) - math.Abs(gy)
		sz := step(gz, 0)
		gx -= sz * (step(0, gx) - 0.5)
		gy -= sz * (step(0, gy) - 0.5)

		n := taylorInvSqrt(gx*gx + gy*gy + gz*gz)
		g[k] = vec3{gx * n, gy * n, gz * n}
	}
	return g
}

// Noise3 returns classic Perlin noise at (x, y, z), roughly in [-1, 1].
// It is exactly 0 on integer lattice points.
func Noise3(x, y, z float64) float64 {
	pi0 := vec3{math.Floor(x), math.Floor(y), math.Floor(z)}
	pi1 := vec3{mod289(pi0[0] + 1), mod289(pi0[1] + 1), mod289(pi0[2] + 1)}
	pi0 = vec3{mod289(pi0[0]), mod289(pi0[1]), mod289(pi0[2])}

	pf0 := vec3{fract(x), fract(y), fract(z)}
	pf1 := vec3{pf0[0] - 1, pf0[1] - 1, pf0[2] - 1}

	ix := [4]float64{pi0[0], pi1[0], pi0[0], pi1[0]}
	iy := [4]float64{pi0[1], pi0[1], pi1[1], pi1[1]}

	var ixy0, ixy1 [4]float64
	for k := 0; k < 4; k++ {
		ixy := permute(permute(ix[k]) + iy[k])
		ixy0[k] = permute(ixy + pi0[2])
		ixy1[k] = permute(ixy + pi1[2])
	}

	// Corner order: 000, 100, 010, 110 then the same with z+1.
	g0 := gradients(ixy0)
	g1 := gradients(ixy1)

	n000 := dot3(g0[0], pf0)
	n100 := dot3(g0[1], vec3{pf1[0], pf0[1], pf0[2]})
	n010 := dot3(g0[2], vec3{pf0[0], pf1[1], pf0[2]})
	n110 := dot3(g0[3], vec3{pf1[0], pf1[1], pf0[2]})
	n001 := dot3(g1[0], vec3{pf0[0], pf0[1], pf1[2]})
	n101 := dot3(g1[1], vec3{pf1[0], pf0[1], pf1[2]})
	n011 := dot3(g1[2], vec3{pf0[0], pf1[1], pf1[2]})
	n111 := dot3(g1[3], pf1)

	fx, fy, fz := fade(pf0[0]), fade(pf0[1]), fade(pf0[2])

	nz0 := lerp(n000, n001, fz)
	nz1 := lerp(n100, n101, fz)
	nz2 := lerp(n010, n011, fz)
	nz3 := lerp(n110, n111, fz)

	nyz0 := lerp(nz0, nz2, fy)
	nyz1 := lerp(nz1, nz3, fy)

	return 2.2 * lerp(nyz0, nyz1, fx)
}
