package main

import (
	"image"
	stdcolor "image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/cbro/rayer-go/pkg/color"
	"github.com/cbro/rayer-go/pkg/logging"
	"github.com/cbro/rayer-go/pkg/scheduler"
)

// pngSnapshotter tonemaps an accumulated XYZ buffer to 8-bit sRGB and
// writes it atomically: a temp file in the output directory is
// written, fsynced, and renamed over the target path, so a reader
// never observes a partially-written file.
type pngSnapshotter struct {
	path          string
	width, height int
	log           logging.Logger
}

func (s *pngSnapshotter) WriteSnapshot(buf []color.XYZ, samplesDone int) error {
	rgb := scheduler.MeanLinearRGB(buf, samplesDone)

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for n, c := range rgb {
		x, y := n%s.width, n/s.width
		img.SetRGBA(x, y, stdcolor.RGBA{
			R: encodeChannel(c[0]),
			G: encodeChannel(c[1]),
			B: encodeChannel(c[2]),
			A: 255,
		})
	}

	if err := writeAtomic(s.path, img); err != nil {
		s.log.Errorf("snapshot write failed after %d samples: %v", samplesDone, err)
		return nil
	}
	s.log.Debugf("wrote snapshot after %d samples", samplesDone)
	return nil
}

// encodeChannel clamps a linear channel value to [0,1] and applies the
// gamma-2.2 encode (the inverse of the texture package's decode) before
// quantizing to 8 bits.
func encodeChannel(linear float64) uint8 {
	clamped := math.Max(0, math.Min(1, linear))
	encoded := math.Pow(clamped, 1/2.2)
	return uint8(math.Round(encoded * 255))
}

func writeAtomic(path string, img image.Image) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*.png")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return errors.Wrap(err, "encoding PNG")
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrap(err, "fsyncing temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return errors.Wrap(err, "renaming temp file into place")
	}
	return nil
}

var _ scheduler.Snapshotter = (*pngSnapshotter)(nil)
