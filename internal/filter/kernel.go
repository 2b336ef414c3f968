package filter

import (
	"math"
	"sync"
)

// Sigma converts a shadowBlur value to a Gaussian standard deviation.
func Sigma(blur float64) float64 {
	if !(blur > 0) || math.IsInf(blur, 0) {
		return 0
	}
	return blur / 2
}

// KernelRadius returns the half size of the kernel for sigma, ceil(3σ).
func KernelRadius(sigma float64) int {
	if !(sigma > 0) {
		return 0
	}
	return int(math.Ceil(sigma * 3))
}

// Padding returns the margin a plane needs for a shadow blur to be exact
// within the canvas.
func Padding(blur float64) int {
	return KernelRadius(Sigma(blur))
}

// GaussianKernel generates a normalized 1D Gaussian kernel of size
// 2*ceil(3σ)+1. For sigma <= 0 it returns the identity kernel [1].
func GaussianKernel(sigma float64) []float32 {
	half := KernelRadius(sigma)
	if half == 0 {
		return []float32{1}
	}
	kernel := make([]float32, 2*half+1)
	twoSigmaSq := 2 * sigma * sigma
	var sum float64
	for i := range kernel {
		x := float64(i - half)
		v := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(v)
		sum += v
	}
	inv := float32(1 / sum)
	for i := range kernel {
		kernel[i] *= inv
	}
	return kernel
}

// kernelCache keeps kernels by quantized sigma.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float32
	maxLen int
}

var defaultKernelCache = &kernelCache{cache: make(map[int][]float32), maxLen: 64}

func (c *kernelCache) get(sigma float64) []float32 {
	key := int(sigma * 100)

	c.mu.RLock()
	k, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return k
	}

	k = GaussianKernel(float64(key) / 100)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		clear(c.cache)
	}
	c.cache[key] = k
	c.mu.Unlock()
	return k
}

// CachedGaussianKernel returns a shared kernel for sigma quantized to 0.01.
// The returned slice must not be modified.
func CachedGaussianKernel(sigma float64) []float32 {
	return defaultKernelCache.get(sigma)
}
