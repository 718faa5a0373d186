package nmds

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/ecotone/isotonic"
	"github.com/katalvlaran/ecotone/matrix"
)

// attempt is the outcome of one optimization restart. A non-finite stress
// marks the attempt as discarded (numeric blow-up or axis collapse).
type attempt struct {
	coords     [][2]float64
	stress     float64
	iterations int
}

// Compute runs non-metric multidimensional scaling on the dissimilarity
// matrix d.
//
// Stage 1: normalize options (zero fields → defaults; negatives → ErrBadOptions).
// Stage 2: validate d (hard contract errors from package matrix).
// Stage 3: degenerate input (N < 3 or all-zero D) → circle fallback.
// Stage 4: precompute the pair list and the dissimilarity rank order.
// Stage 5: run Attempts independent restarts, each with its own derived RNG
// stream; keep the lowest-stress valid configuration, stop early once one
// reaches GoodEnough.
// Stage 6: no valid attempt → circle fallback; otherwise center and scale
// the winner to DisplayBound.
//
// Complexity: O(Attempts·MaxIterations·N²) time, O(N²) space.
func Compute(d *matrix.Dense, opts Options) (Result, error) {
	// Stage 1: options.
	opts, err := opts.normalized()
	if err != nil {
		return Result{}, err
	}

	// Stage 2: matrix contract.
	n, err := matrix.ValidateDissimilarity(d)
	if err != nil {
		return Result{}, err
	}

	// Stage 3: degenerate input is recovered, not raised.
	if n < 3 || matrix.IsZeroOffDiagonal(d, degenerateTol) {
		return fallbackResult(n, opts), nil
	}

	// Stage 4: pairs and rank order. The order is the permutation reading
	// pair dissimilarities ascending; ties break by pair index for
	// determinism. Zero-dissimilarity pairs are pinned to target 0.
	var (
		raw      = d.Raw()
		m        = n * (n - 1) / 2
		pairs    = make([][2]int, 0, m)
		diss     = make([]float64, 0, m)
		zeroPair = make([]bool, 0, m)
		i, j     int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
			diss = append(diss, raw[i*n+j])
			zeroPair = append(zeroPair, raw[i*n+j] <= degenerateTol)
		}
	}
	order := make([]int, m)
	for i = 0; i < m; i++ {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return diss[order[a]] < diss[order[b]] })

	// Stage 5: multi-restart search.
	best := attempt{stress: math.Inf(1)}
	for a := 0; a < opts.Attempts; a++ {
		rng := deriveRNG(opts.Seed, uint64(a))
		cfg := initialConfiguration(n, a, rng)

		res := optimize(cfg, pairs, order, zeroPair, opts)
		if res.stress < best.stress {
			best = res
		}
		if best.stress < opts.GoodEnough {
			break
		}
	}

	// Stage 6: select or fall back.
	if math.IsInf(best.stress, 1) {
		return fallbackResult(n, opts), nil
	}
	center(best.coords)
	rescale(best.coords, opts.DisplayBound)

	stress := round1e9(best.stress)

	return Result{
		Coordinates: best.coords,
		Stress:      stress,
		Converged:   stress < ConvergedStressBound,
		Iterations:  best.iterations,
	}, nil
}

// normalized substitutes defaults for zero fields and rejects negatives.
func (o Options) normalized() (Options, error) {
	if o.Attempts < 0 || o.MaxIterations < 0 || o.StagnationLimit < 0 || o.Warmup < 0 ||
		o.Eps < 0 || o.GoodEnough < 0 || o.BaseStep < 0 ||
		o.DisplayBound < 0 || o.DegeneracyThreshold < 0 {
		return Options{}, ErrBadOptions
	}
	def := DefaultOptions()
	if o.Attempts == 0 {
		o.Attempts = def.Attempts
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = def.MaxIterations
	}
	if o.Eps == 0 {
		o.Eps = def.Eps
	}
	if o.StagnationLimit == 0 {
		o.StagnationLimit = def.StagnationLimit
	}
	if o.GoodEnough == 0 {
		o.GoodEnough = def.GoodEnough
	}
	if o.BaseStep == 0 {
		o.BaseStep = def.BaseStep
	}
	if o.DisplayBound == 0 {
		o.DisplayBound = def.DisplayBound
	}
	if o.DegeneracyThreshold == 0 {
		o.DegeneracyThreshold = def.DegeneracyThreshold
	}
	if o.Warmup == 0 {
		o.Warmup = def.Warmup
	}

	return o, nil
}

// optimize runs the gradient loop of one attempt on cfg (mutated in place).
// Returns stress=+Inf when the attempt is discarded.
func optimize(cfg [][2]float64, pairs [][2]int, order []int, zeroPair []bool, opts Options) attempt {
	var (
		n          = len(cfg)
		m          = len(pairs)
		dists      = make([]float64, m)
		disp       = make([][2]float64, n)
		prev       = math.Inf(1)
		stress     float64
		stagnation int
		iter       int
		ok         bool
		invalid    = attempt{stress: math.Inf(1)}
	)

	for iter = 0; iter < opts.MaxIterations; iter++ {
		// (a,b,c) distances, monotonic targets, stress.
		targets, s, valid := evaluate(cfg, pairs, order, zeroPair, dists)
		if !valid {
			return invalid
		}
		stress = s

		// (d) stagnation-based convergence.
		if math.Abs(prev-stress) < opts.Eps {
			stagnation++
			if stagnation > opts.StagnationLimit {
				break
			}
		} else {
			stagnation = 0
		}
		prev = stress

		// (e) synchronous gradient step with decaying step size. Forces are
		// normalized by (n−1) so accumulating over all pairs stays bounded.
		step := opts.BaseStep * math.Exp(-float64(iter)/100)
		for i := range disp {
			disp[i][0], disp[i][1] = 0, 0
		}
		var (
			p      int
			pi, pj int
			dist   float64
			f      float64
			dx, dy float64
		)
		for p = 0; p < m; p++ {
			dist = dists[p]
			if dist < distTol {
				continue // direction undefined for coincident points
			}
			pi, pj = pairs[p][0], pairs[p][1]
			f = step * (dist - targets[p]) / dist / float64(n-1)
			dx = cfg[pj][0] - cfg[pi][0]
			dy = cfg[pj][1] - cfg[pi][1]
			// dist > target ⇒ f > 0 ⇒ endpoints move toward each other.
			disp[pi][0] += f * dx / 2
			disp[pi][1] += f * dy / 2
			disp[pj][0] -= f * dx / 2
			disp[pj][1] -= f * dy / 2
		}
		for i := range cfg {
			cfg[i][0] += disp[i][0]
			cfg[i][1] += disp[i][1]
		}

		// (f) axis-collapse guard after warm-up.
		if iter >= opts.Warmup && collapsed(cfg, opts.DegeneracyThreshold) {
			return invalid
		}
	}

	// Final evaluation of the settled configuration.
	_, stress, ok = evaluate(cfg, pairs, order, zeroPair, dists)
	if !ok || collapsed(cfg, opts.DegeneracyThreshold) {
		return invalid
	}

	out := make([][2]float64, n)
	copy(out, cfg)

	return attempt{coords: out, stress: stress, iterations: iter}
}

// evaluate fills dists with the configuration distances of every pair, fits
// them monotonically against the rank order, pins zero-dissimilarity pairs
// to target 0, and returns the targets and the Kruskal stress-1.
// ok=false on numeric blow-up or a fully collapsed configuration.
// Complexity: O(N²).
func evaluate(cfg [][2]float64, pairs [][2]int, order []int, zeroPair []bool, dists []float64) ([]float64, float64, bool) {
	var (
		sumSq  float64
		dx, dy float64
		p      int
	)
	for p = 0; p < len(pairs); p++ {
		dx = cfg[pairs[p][1]][0] - cfg[pairs[p][0]][0]
		dy = cfg[pairs[p][1]][1] - cfg[pairs[p][0]][1]
		dists[p] = math.Hypot(dx, dy)
		sumSq += dists[p] * dists[p]
	}
	if sumSq < distTol || math.IsNaN(sumSq) || math.IsInf(sumSq, 0) {
		return nil, 0, false
	}

	targets, err := isotonic.Regression(dists, order)
	if err != nil {
		return nil, 0, false
	}
	for p = 0; p < len(targets); p++ {
		if zeroPair[p] {
			targets[p] = 0
		}
	}

	var num, r float64
	for p = 0; p < len(dists); p++ {
		r = dists[p] - targets[p]
		num += r * r
	}
	stress := math.Sqrt(num / sumSq)
	if math.IsNaN(stress) || math.IsInf(stress, 0) {
		return nil, 0, false
	}

	return targets, stress, true
}

// initialConfiguration builds the starting layout for one attempt:
// attempt 0 a unit circle, attempt 1 a grid, then random layouts cycling
// through three scales.
// Complexity: O(n).
func initialConfiguration(n, attemptIdx int, rng *rand.Rand) [][2]float64 {
	cfg := make([][2]float64, n)

	switch {
	case attemptIdx == 0:
		for i := 0; i < n; i++ {
			angle := 2 * math.Pi * float64(i) / float64(n)
			cfg[i] = [2]float64{math.Cos(angle), math.Sin(angle)}
		}
	case attemptIdx == 1:
		side := int(math.Ceil(math.Sqrt(float64(n))))
		for i := 0; i < n; i++ {
			row, col := i/side, i%side
			cfg[i] = [2]float64{
				gridCoord(col, side),
				gridCoord(row, side),
			}
		}
	default:
		scales := [3]float64{0.5, 1.0, 2.0}
		s := scales[(attemptIdx-2)%3]
		for i := 0; i < n; i++ {
			cfg[i] = [2]float64{
				(rng.Float64()*2 - 1) * s,
				(rng.Float64()*2 - 1) * s,
			}
		}
	}

	return cfg
}

// gridCoord spreads index k of a side-long row across [-1, 1].
func gridCoord(k, side int) float64 {
	if side <= 1 {
		return 0
	}

	return -1 + 2*float64(k)/float64(side-1)
}

// collapsed reports whether either axis's coordinate range has fallen below
// threshold: the configuration degenerated onto a (near) line.
// Complexity: O(n).
func collapsed(cfg [][2]float64, threshold float64) bool {
	var (
		minX, maxX = cfg[0][0], cfg[0][0]
		minY, maxY = cfg[0][1], cfg[0][1]
	)
	for i := 1; i < len(cfg); i++ {
		minX = math.Min(minX, cfg[i][0])
		maxX = math.Max(maxX, cfg[i][0])
		minY = math.Min(minY, cfg[i][1])
		maxY = math.Max(maxY, cfg[i][1])
	}

	return maxX-minX < threshold || maxY-minY < threshold
}

// center translates the configuration so its centroid is the origin.
// Complexity: O(n).
func center(cfg [][2]float64) {
	var cx, cy float64
	for i := range cfg {
		cx += cfg[i][0]
		cy += cfg[i][1]
	}
	cx /= float64(len(cfg))
	cy /= float64(len(cfg))
	for i := range cfg {
		cfg[i][0] -= cx
		cfg[i][1] -= cy
	}
}

// rescale uniformly scales the configuration so the maximum absolute
// coordinate equals bound, preserving relative distances.
// Complexity: O(n).
func rescale(cfg [][2]float64, bound float64) {
	var maxAbs float64
	for i := range cfg {
		maxAbs = math.Max(maxAbs, math.Abs(cfg[i][0]))
		maxAbs = math.Max(maxAbs, math.Abs(cfg[i][1]))
	}
	if maxAbs == 0 {
		return
	}
	s := bound / maxAbs
	for i := range cfg {
		cfg[i][0] *= s
		cfg[i][1] *= s
	}
}

// fallbackResult is the documented recoverable-degeneracy layout: points
// evenly spaced on a circle of radius DisplayBound, stress reported as 0 and
// explicitly flagged as not meaningful.
func fallbackResult(n int, opts Options) Result {
	coords := make([][2]float64, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		coords[i] = [2]float64{
			opts.DisplayBound * math.Cos(angle),
			opts.DisplayBound * math.Sin(angle),
		}
	}

	return Result{Coordinates: coords, Stress: 0, Degenerate: true}
}

// round1e9 stabilizes a reported statistic to 1e−9 precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
