// Package engine composes every other package into the public API from
// spec.md §4.6: config merge, input gating, cache probe, kernel dispatch,
// and the synchronous/asynchronous/batch entry points. It is the one
// package in this module that holds mutable shared state (global config,
// cache, worker pool), so it is also the one package that needs the
// reader/writer locking spec.md §5 describes.
package engine

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fulmenhq/strmetrics/asyncpool"
	"github.com/fulmenhq/strmetrics/logging"
	"github.com/fulmenhq/strmetrics/simcache"
	"github.com/fulmenhq/strmetrics/simconfig"
	"github.com/fulmenhq/strmetrics/simerrors"
	"github.com/fulmenhq/strmetrics/telemetry"
	"github.com/fulmenhq/strmetrics/telemetry/metrics"
	"github.com/fulmenhq/strmetrics/unitext"
)

// Engine holds the shared state a single process shares across calls: the
// global configuration overlay, optional per-algorithm overlays, the
// bounded cache, and the async worker pool. The zero value is not usable;
// construct with New.
type Engine struct {
	globalMu     sync.RWMutex
	global       simconfig.Overlay
	perAlgorithm map[simconfig.Algorithm]simconfig.Overlay
	cache        *simcache.Cache
	pool         *asyncpool.Pool
}

// New constructs an Engine with an empty global config, an empty cache,
// and a worker pool sized to the logical core count (spec.md §4.7).
func New() *Engine {
	return &Engine{
		perAlgorithm: make(map[simconfig.Algorithm]simconfig.Overlay),
		cache:        simcache.New(),
		pool:         asyncpool.New(0),
	}
}

// Shutdown stops the async worker pool. Host applications that create an
// Engine for the lifetime of a process do not need to call this; it exists
// for tests and short-lived embeddings.
func (e *Engine) Shutdown() {
	e.pool.Shutdown()
}

// SetGlobalConfig replaces the global configuration overlay and, per
// spec.md §4.6, invalidates the cache — any cached similarity was computed
// under a configuration snapshot that may no longer hold.
func (e *Engine) SetGlobalConfig(overlay simconfig.Overlay) {
	e.globalMu.Lock()
	e.global = overlay
	e.globalMu.Unlock()

	e.cache.Clear()
}

// SetAlgorithmConfig sets a per-algorithm overlay layered between the
// global config and any per-call overlay, per spec.md §4.6 step 2.
func (e *Engine) SetAlgorithmConfig(tag simconfig.Algorithm, overlay simconfig.Overlay) {
	e.globalMu.Lock()
	defer e.globalMu.Unlock()
	e.perAlgorithm[tag] = overlay
}

// GetGlobalConfig returns the fully resolved global configuration (global
// overlay merged onto defaults, with no per-call layer applied).
func (e *Engine) GetGlobalConfig() simconfig.Config {
	e.globalMu.RLock()
	defer e.globalMu.RUnlock()
	return simconfig.Merge(e.global)
}

// mergeConfig implements spec.md §4.6 step 2: global, then per-algorithm
// (if any is registered for tag), then the per-call overlay; the tag
// parameter always wins for the final Algorithm field regardless of what
// any layer set.
func (e *Engine) mergeConfig(tag simconfig.Algorithm, perCall simconfig.Overlay) simconfig.Config {
	e.globalMu.RLock()
	global := e.global
	perAlgo := e.perAlgorithm[tag]
	e.globalMu.RUnlock()

	cfg := simconfig.Merge(global, perAlgo, perCall.WithAlgorithm(tag))
	return cfg
}

// Similarity implements spec.md §4.6's synchronous similarity entry point.
func (e *Engine) Similarity(s1, s2 string, tag simconfig.Algorithm, perCall simconfig.Overlay) (float64, error) {
	cfg := e.mergeConfig(tag, perCall)

	if err := gateLength(s1, s2, cfg.MaxStringLength); err != nil {
		return 0, err
	}
	if err := simconfig.Validate(cfg); err != nil {
		return 0, err
	}

	telemetry.Emit(metrics.SimilarityCalls, 1, map[string]string{"algorithm": cfg.Algorithm.String()})
	telemetry.Emit(metrics.StringLengthBucket, 1, map[string]string{"bucket": telemetry.LengthBucket(maxRuneLen(s1, s2))})

	fp := simcache.Build(int(cfg.Algorithm), int(cfg.Preprocessing), int(cfg.CaseSensitivity), cfg.NGramSize, s1, s2)
	if v, ok := e.cache.Get(fp); ok {
		telemetry.Emit(metrics.CacheHits, 1, nil)
		return v, nil
	}
	telemetry.Emit(metrics.CacheMisses, 1, nil)

	t1 := unitext.New(s1)
	t2 := unitext.New(s2)

	if v, ok := earlyAnswerSimilarity(t1, t2, cfg.CaseSensitivity); ok {
		telemetry.Emit(metrics.FastPathHits, 1, nil)
		e.cache.Put(fp, v)
		return v, nil
	}

	v, err := computeSimilarity(t1, t2, cfg)
	if err != nil {
		telemetry.Emit(metrics.Errors, 1, map[string]string{"kind": string(simerrors.KindOf(err))})
		logging.L().Warn("similarity computation failed",
			zap.String("algorithm", cfg.Algorithm.String()),
			zap.String("kind", string(simerrors.KindOf(err))),
			zap.Error(err),
		)
		return 0, err
	}

	e.cache.Put(fp, v)
	return v, nil
}

// Distance implements spec.md §4.6's synchronous distance entry point.
// Naturally-integer kernels compute their own exact distance; Euclidean,
// Manhattan and Chebyshev quantize their raw Lp distance; every other
// kernel derives distance from the (possibly cached) similarity per
// spec.md §3's single quantized-integer transport type.
func (e *Engine) Distance(s1, s2 string, tag simconfig.Algorithm, perCall simconfig.Overlay) (int, error) {
	cfg := e.mergeConfig(tag, perCall)

	if err := gateLength(s1, s2, cfg.MaxStringLength); err != nil {
		return 0, err
	}
	if err := simconfig.Validate(cfg); err != nil {
		return 0, err
	}

	telemetry.Emit(metrics.DistanceCalls, 1, map[string]string{"algorithm": cfg.Algorithm.String()})

	t1 := unitext.New(s1)
	t2 := unitext.New(s2)

	d, err := computeDistance(t1, t2, cfg, func() (float64, error) {
		return e.Similarity(s1, s2, tag, perCall)
	})
	if err != nil {
		telemetry.Emit(metrics.Errors, 1, map[string]string{"kind": string(simerrors.KindOf(err))})
		logging.L().Warn("distance computation failed",
			zap.String("algorithm", cfg.Algorithm.String()),
			zap.String("kind", string(simerrors.KindOf(err))),
			zap.Error(err),
		)
	}
	return d, err
}

// SimilarityAsync schedules a similarity computation on the worker pool and
// returns a one-shot channel, per spec.md §4.6/§4.7.
func (e *Engine) SimilarityAsync(s1, s2 string, tag simconfig.Algorithm, perCall simconfig.Overlay) (<-chan asyncpool.Result, error) {
	return e.pool.Submit(func() (interface{}, error) {
		return e.Similarity(s1, s2, tag, perCall)
	})
}

// DistanceAsync is Distance's asynchronous counterpart.
func (e *Engine) DistanceAsync(s1, s2 string, tag simconfig.Algorithm, perCall simconfig.Overlay) (<-chan asyncpool.Result, error) {
	return e.pool.Submit(func() (interface{}, error) {
		return e.Distance(s1, s2, tag, perCall)
	})
}

// PairResult is one entry of a batch result, per spec.md §4.6's
// similarity_batch: a failure in one pair does not abort others.
type PairResult struct {
	Value float64
	Err   error
}

// SimilarityBatch computes similarity for every pair in order, collecting
// per-pair errors without aborting the batch, per spec.md §4.6.
func (e *Engine) SimilarityBatch(pairs [][2]string, tag simconfig.Algorithm, perCall simconfig.Overlay) []PairResult {
	results := make([]PairResult, len(pairs))
	for i, pair := range pairs {
		v, err := e.Similarity(pair[0], pair[1], tag, perCall)
		results[i] = PairResult{Value: v, Err: err}
	}
	return results
}

// SupportedAlgorithms lists every algorithm tag/name pair, per spec.md §6.
func (e *Engine) SupportedAlgorithms() []simconfig.AlgorithmInfo {
	return simconfig.SupportedAlgorithms()
}

// MemoryUsage reports the cache's estimated resident bytes, per spec.md §6.
func (e *Engine) MemoryUsage() int {
	return e.cache.MemoryUsage()
}

// ClearCaches empties the similarity cache, per spec.md §4.6/§6.
func (e *Engine) ClearCaches() {
	e.cache.Clear()
}

// NewJobID generates an identifier for an async job, used by host
// applications correlating submissions with completions across the
// bridge boundary.
func NewJobID() string {
	return uuid.NewString()
}

func gateLength(s1, s2 string, maxLen int) error {
	if len(s1) > maxLen || len(s2) > maxLen {
		return simerrors.Newf(simerrors.InvalidInput, "input exceeds max_string_length of %d bytes", maxLen)
	}
	return nil
}

func maxRuneLen(s1, s2 string) int {
	a, b := len([]rune(s1)), len([]rune(s2))
	if b > a {
		return b
	}
	return a
}
