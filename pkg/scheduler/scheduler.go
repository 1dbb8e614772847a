// Package scheduler implements the renderer's sample-batch producer and
// its Accumulator sink: S samples per pixel are produced in parallel
// across a worker pool and folded into a running per-pixel XYZ buffer.
package scheduler

import (
	"context"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/cbro/rayer-go/pkg/color"
	"github.com/cbro/rayer-go/pkg/geometry"
	"github.com/cbro/rayer-go/pkg/logging"
)

// Tracer computes a scalar reflectance for a single ray at a single
// wavelength — the contract the Integrator component fulfils.
type Tracer interface {
	Trace(ray geometry.Ray, world geometry.Hitable, rng geometry.Random) float64
}

// CameraRayer generates a camera ray for a screen-space sample.
type CameraRayer interface {
	GetRay(s, t, wl float64, rng geometry.Random) geometry.Ray
}

// Snapshotter receives the accumulator's running buffer itself (not a
// copy) after every drain. Implementations live outside this
// package (image encoding is an external concern) and should not
// retain the slice beyond the call.
type Snapshotter interface {
	WriteSnapshot(buf []color.XYZ, samplesDone int) error
}

// Config bundles the fixed parameters of a render.
type Config struct {
	Width, Height int
	Samples       int // total samples per pixel, S
	Workers       int // 0 selects runtime.NumCPU()
	RenderSky     bool
}

// sampleBatch is one pass's worth of per-pixel XYZ contributions,
// produced by a single worker and consumed by the Accumulator.
type sampleBatch struct {
	xyz []color.XYZ
}

// noopLogger discards everything, used when Run is called with a nil
// Logger so call sites never need their own nil checks.
type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...interface{}) {}
func (noopLogger) Printf(format string, args ...interface{}) {}
func (noopLogger) Warnf(format string, args ...interface{})  {}
func (noopLogger) Errorf(format string, args ...interface{}) {}

var _ logging.Logger = noopLogger{}

// Run renders cfg.Samples passes over the full image, tracing rays
// through camera/world/tracer with newRNG minting a thread-local
// random source per worker, and streams completed sample batches to an
// Accumulator that folds them into a running buffer and periodically
// calls sink.WriteSnapshot. Run blocks until every sample has been
// produced and accumulated, or ctx is cancelled. log receives a start
// line, a per-flush progress line, and a warning if the context is
// cancelled before every sample was dispatched; a nil log is treated
// as a no-op logger rather than a precondition.
func Run(ctx context.Context, cfg Config, cam CameraRayer, world geometry.Hitable, tracer Tracer, newRNG func() geometry.Random, sink Snapshotter, log logging.Logger) ([]color.XYZ, error) {
	if log == nil {
		log = noopLogger{}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log.Printf("rendering %d samples over %dx%d pixels using %d workers", cfg.Samples, cfg.Width, cfg.Height, workers)

	batches := make(chan sampleBatch, workers)
	group, groupCtx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(workers))

	accDone := make(chan struct{})
	var accumErr error
	var final []color.XYZ
	go func() {
		defer close(accDone)
		final, accumErr = accumulate(groupCtx, cfg, batches, sink, log)
	}()

	dispatched := 0
	var dispatchErr error
	for s := 0; s < cfg.Samples; s++ {
		if err := sem.Acquire(groupCtx, 1); err != nil {
			log.Warnf("rendering cancelled after dispatching %d/%d samples: %v", dispatched, cfg.Samples, err)
			dispatchErr = err
			break
		}
		dispatched++
		group.Go(func() error {
			defer sem.Release(1)
			rng := newRNG()
			buf := renderSample(cfg, cam, world, tracer, rng)
			select {
			case batches <- sampleBatch{xyz: buf}:
				return nil
			case <-groupCtx.Done():
				return groupCtx.Err()
			}
		})
	}

	err := group.Wait()
	close(batches)
	<-accDone

	if err != nil {
		return final, err
	}
	if accumErr != nil {
		return final, accumErr
	}
	return final, dispatchErr
}

// renderSample draws one sample per pixel: a uniform wavelength in
// [390,700]nm and a uniform sub-pixel offset, maps pixel index n to
// screen coordinates with the vertical flip to screen convention, and
// traces the resulting camera ray.
func renderSample(cfg Config, cam CameraRayer, world geometry.Hitable, tracer Tracer, rng geometry.Random) []color.XYZ {
	w, h := cfg.Width, cfg.Height
	buf := make([]color.XYZ, w*h)

	for n := 0; n < w*h; n++ {
		i := n % w
		j := h - n/w

		wl := rng.Range(390, 700)
		du, dv := rng.Float64(), rng.Float64()
		s := (float64(i) + du) / float64(w)
		t := (float64(j) + dv) / float64(h)

		ray := cam.GetRay(s, t, wl, rng)
		reflectance := tracer.Trace(ray, world, rng)

		xyz := color.FromWavelength(float32(wl))
		buf[n] = xyz.Scale(float32(reflectance))
	}
	return buf
}

// accumulate owns the running XYZ buffer exclusively: it drains
// batches (opportunistically draining any further batches already
// queued before each snapshot), sums each into the buffer atomically
// with respect to samplesDone, and flushes a snapshot after every
// drain. On channel closure it performs one final flush. log receives
// a debug line after every drain reporting the running sample count.
func accumulate(ctx context.Context, cfg Config, batches <-chan sampleBatch, sink Snapshotter, log logging.Logger) ([]color.XYZ, error) {
	if log == nil {
		log = noopLogger{}
	}

	buf := make([]color.XYZ, cfg.Width*cfg.Height)
	samplesDone := 0

	flush := func() error {
		if sink == nil {
			return nil
		}
		return sink.WriteSnapshot(buf, samplesDone)
	}

	for {
		batch, ok := <-batches
		if !ok {
			if err := flush(); err != nil {
				return buf, err
			}
			log.Printf("accumulated %d/%d samples, rendering complete", samplesDone, cfg.Samples)
			return buf, nil
		}

		fold(buf, batch.xyz)
		samplesDone++
	drain:
		for {
			select {
			case next, ok := <-batches:
				if !ok {
					break drain
				}
				fold(buf, next.xyz)
				samplesDone++
			default:
				break drain
			}
		}

		if err := flush(); err != nil {
			return buf, err
		}
		log.Debugf("accumulated %d/%d samples", samplesDone, cfg.Samples)
		if ctx.Err() != nil {
			log.Warnf("rendering cancelled after %d/%d samples: %v", samplesDone, cfg.Samples, ctx.Err())
			return buf, ctx.Err()
		}
	}
}

func fold(buf, sample []color.XYZ) {
	for i := range buf {
		buf[i] = buf[i].Add(sample[i])
	}
}

// MeanLinearRGB converts an accumulated XYZ buffer to its per-pixel
// mean linear RGB, given the number of samples folded into it.
func MeanLinearRGB(buf []color.XYZ, samplesDone int) [][3]float64 {
	out := make([][3]float64, len(buf))
	if samplesDone == 0 {
		return out
	}
	inv := float32(1) / float32(samplesDone)
	for i, xyz := range buf {
		mean := xyz.Scale(inv)
		r, g, b := mean.ToLinearRGB()
		out[i] = [3]float64{
			math.Max(0, float64(r)),
			math.Max(0, float64(g)),
			math.Max(0, float64(b)),
		}
	}
	return out
}
