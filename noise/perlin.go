// SPDX-License-Identifier: MIT
package noise

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmaze/rng"
)

// ErrBadDimension is returned for non-positive sizes, smoothness or period.
var ErrBadDimension = errors.New("noise: dimensions must be positive")

// reference is Ken Perlin's permutation of 0..255.
var reference = [256]uint8{
	151, 160, 137, 91, 90, 15,
	131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23,
	190, 6, 148, 247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32, 57, 177, 33,
	88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71, 134, 139, 48, 27, 166,
	77, 146, 158, 231, 83, 111, 229, 122, 60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244,
	102, 143, 54, 65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169, 200, 196,
	135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64, 52, 217, 226, 250, 124, 123,
	5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42,
	223, 183, 170, 213, 119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97, 228,
	251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14, 239, 107,
	49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254,
	138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// Perlin samples seeded gradient noise.
type Perlin struct {
	p [512]int
}

// New returns a generator whose permutation is the reference table shuffled
// by rng.Shuffle(seed). Returns rng.ErrInvalidSeed for an all-zero seed.
func New(seed rng.Seed) (*Perlin, error) {
	sh, err := rng.NewShuffle(seed)
	if err != nil {
		return nil, err
	}
	perm := make([]int, len(reference))
	for i, v := range reference {
		perm[i] = int(v)
	}
	rng.Permute(sh, perm)

	n := &Perlin{}
	for i, v := range perm {
		n.p[i] = v
		n.p[i+256] = v
	}

	return n, nil
}

// Permutation returns a copy of the 256-entry shuffled table.
func (n *Perlin) Permutation() []int {
	out := make([]int, 256)
	copy(out, n.p[:256])

	return out
}

func fade(t float64) float64 { return t * t * t * (t*(t*6.0-15.0) + 10.0) }

func lerp(t, a, b float64) float64 { return a + t*(b-a) }

// grad maps the low 4 bits of hash to one of 12 gradient directions and
// returns its dot product with (x,y,z).
func grad(hash int, x, y, z float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	var v float64
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}

	return u + v
}

// Noise returns the noise value at (x,y,z), approximately in [-1,1].
func (n *Perlin) Noise(x, y, z float64) float64 {
	fx, fy, fz := math.Floor(x), math.Floor(y), math.Floor(z)
	xi, yi, zi := int(fx)&255, int(fy)&255, int(fz)&255
	x, y, z = x-fx, y-fy, z-fz
	u, v, w := fade(x), fade(y), fade(z)

	p := &n.p
	a := p[xi] + yi
	aa, ab := p[a]+zi, p[a+1]+zi
	b := p[xi+1] + yi
	ba, bb := p[b]+zi, p[b+1]+zi

	return lerp(w,
		lerp(v,
			lerp(u, grad(p[aa], x, y, z), grad(p[ba], x-1, y, z)),
			lerp(u, grad(p[ab], x, y-1, z), grad(p[bb], x-1, y-1, z))),
		lerp(v,
			lerp(u, grad(p[aa+1], x, y, z-1), grad(p[ba+1], x-1, y, z-1)),
			lerp(u, grad(p[ab+1], x, y-1, z-1), grad(p[bb+1], x-1, y-1, z-1))),
	)
}

// Seamless returns noise that repeats every w units in x and h units in y.
// Seamless(0,y,…) equals Seamless(w,y,…) and Seamless(x,0,…) equals
// Seamless(x,h,…).
func (n *Perlin) Seamless(x, y, z, w, h float64) float64 {
	return (n.Noise(x, y, z)*(w-x)*(h-y) +
		n.Noise(x-w, y, z)*x*(h-y) +
		n.Noise(x-w, y-h, z)*x*y +
		n.Noise(x, y-h, z)*(w-x)*y) / (w * h)
}

// Seamless2D samples a width×height tileable field at 1/smoothness noise
// units per pixel, row-major.
// Returns ErrBadDimension for non-positive width, height or smoothness.
func (n *Perlin) Seamless2D(width, height int, smoothness, z float64) ([]float64, error) {
	if err := validate(width, height, smoothness); err != nil {
		return nil, err
	}
	w, h := float64(width)/smoothness, float64(height)/smoothness

	out := make([]float64, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out = append(out, n.Seamless(float64(x)/smoothness, float64(y)/smoothness, z, w, h))
		}
	}

	return out, nil
}

// Seamless3D is Seamless2D with the z axis looping every t units: z is
// reduced modulo t and the slices at z and z−t are cross-faded.
// Returns ErrBadDimension for non-positive width, height, smoothness or t.
func (n *Perlin) Seamless3D(width, height int, smoothness, z, t float64) ([]float64, error) {
	if err := validate(width, height, smoothness); err != nil {
		return nil, err
	}
	if t <= 0 {
		return nil, fmt.Errorf("%w: period=%g", ErrBadDimension, t)
	}
	w, h := float64(width)/smoothness, float64(height)/smoothness
	z = math.Mod(z, t)

	out := make([]float64, 0, width*height)
	for j := 0; j < height; j++ {
		y := float64(j) / smoothness
		for i := 0; i < width; i++ {
			x := float64(i) / smoothness
			out = append(out, (n.Seamless(x, y, z, w, h)*(t-z)+n.Seamless(x, y, z-t, w, h)*z)/t)
		}
	}

	return out, nil
}

// Field samples plain (non-tiling) noise at (x/scale, y/scale, z), row-major.
// Returns ErrBadDimension for non-positive width, height or scale.
func (n *Perlin) Field(width, height int, scale, z float64) ([]float64, error) {
	if err := validate(width, height, scale); err != nil {
		return nil, err
	}

	out := make([]float64, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out = append(out, n.Noise(float64(x)/scale, float64(y)/scale, z))
		}
	}

	return out, nil
}

func validate(width, height int, smoothness float64) error {
	if width < 1 || height < 1 || !(smoothness > 0) {
		return fmt.Errorf("%w: %dx%d smoothness=%g", ErrBadDimension, width, height, smoothness)
	}

	return nil
}
