// Command xform resamples a PNG image through a 2D affine transform.
//
// The transform scales, then rotates, then translates the source image.
// The output canvas is the bounding box of the transformed image.
//
//	xform -in photo.png -out rotated.png -rotate 30 -scale 0.5
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/gmath"
	"github.com/gogpu/gmath/scalar"
)

var (
	errNoInput       = errors.New("xform: -in is required")
	errSingular      = errors.New("xform: transform is not invertible")
	errUnknownFilter = errors.New("xform: unknown filter")
)

// maxDimension bounds each side of the output image.
const maxDimension = 1 << 14

func main() {
	err := run(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("xform", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		input   = fs.String("in", "", "input PNG file")
		output  = fs.String("out", "xform.png", "output PNG file")
		rotate  = fs.Float64("rotate", 0, "rotation in degrees")
		scale   = fs.Float64("scale", 1, "uniform scale, overridden per axis by -sx and -sy")
		sx      = fs.Float64("sx", 0, "horizontal scale")
		sy      = fs.Float64("sy", 0, "vertical scale")
		tx      = fs.Float64("tx", 0, "horizontal translation in pixels")
		ty      = fs.Float64("ty", 0, "vertical translation in pixels")
		filter  = fs.String("filter", "bilinear", "resampling filter: nearest, bilinear, catmullrom")
		pot     = fs.Bool("pot", false, "pad output dimensions to powers of two")
		verbose = fs.Bool("v", false, "enable debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return errNoInput
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	gmath.SetLogger(logger)
	defer gmath.SetLogger(nil)

	interp, err := interpolator(*filter)
	if err != nil {
		return err
	}

	factor := gmath.V2(*scale, *scale)
	if *sx != 0 {
		factor.X = *sx
	}
	if *sy != 0 {
		factor.Y = *sy
	}

	m := gmath.NewTransform(
		gmath.WithRotation(*rotate*math.Pi/180),
		gmath.WithScale(factor),
		gmath.WithTranslation(gmath.V2(*tx, *ty)),
	)
	if _, ok := m.InverseAffine(); !ok {
		return errSingular
	}
	logger.Debug("transform",
		"rotation_deg", scalar.RoundPlaces(m.Rotation()*180/math.Pi, 3),
		"scale", m.Scale(),
		"translation", m.Translation())

	src, err := readPNG(*input)
	if err != nil {
		return err
	}

	bounds := transformedBounds(m, src.Bounds())
	if *pot {
		bounds.Max.X = bounds.Min.X + int(scalar.SmallestPowerOf2(uint32(bounds.Dx())))
		bounds.Max.Y = bounds.Min.Y + int(scalar.SmallestPowerOf2(uint32(bounds.Dy())))
	}
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		return fmt.Errorf("xform: output %dx%d exceeds %d pixels per side", bounds.Dx(), bounds.Dy(), maxDimension)
	}

	dst := image.NewRGBA(bounds)
	interp.Transform(dst, m.Aff3(), src, src.Bounds(), draw.Over, nil)

	if err := writePNG(*output, dst); err != nil {
		return err
	}
	logger.Info("image written", "path", *output, "width", bounds.Dx(), "height", bounds.Dy())
	return nil
}

func interpolator(name string) (draw.Interpolator, error) {
	switch name {
	case "nearest":
		return draw.NearestNeighbor, nil
	case "bilinear":
		return draw.BiLinear, nil
	case "catmullrom":
		return draw.CatmullRom, nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownFilter, name)
}

// transformedBounds returns the integer bounding box of r mapped through m.
// Corner coordinates are rounded to six decimal places first so that
// floating point noise does not grow the box by a pixel.
func transformedBounds(m gmath.Matrix3[float64], r image.Rectangle) image.Rectangle {
	corners := [4]gmath.Vec2[float64]{
		m.TransformPoint(gmath.V2(float64(r.Min.X), float64(r.Min.Y))),
		m.TransformPoint(gmath.V2(float64(r.Max.X), float64(r.Min.Y))),
		m.TransformPoint(gmath.V2(float64(r.Min.X), float64(r.Max.Y))),
		m.TransformPoint(gmath.V2(float64(r.Max.X), float64(r.Max.Y))),
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		x, y := scalar.RoundPlaces(c.X, 6), scalar.RoundPlaces(c.Y, 6)
		minX, maxX = scalar.Min(minX, x), scalar.Max(maxX, x)
		minY, maxY = scalar.Min(minY, y), scalar.Max(maxY, y)
	}

	return image.Rect(
		int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)),
	)
}

func readPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xform: open input: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("xform: decode %s: %w", path, err)
	}
	return img, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("xform: create output: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("xform: encode %s: %w", path, err)
	}
	return f.Close()
}
