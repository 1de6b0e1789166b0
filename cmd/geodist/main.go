// geodist prints the distances along a path of coordinates.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"bitbucket.org/kleinnic74/geocoords/domain/gps"
	"bitbucket.org/kleinnic74/geocoords/logging"
	"go.uber.org/zap"
)

var (
	radius  float64
	showArc bool
	svgFile string
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <lat,lon> <lat,lon>...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Float64Var(&radius, "r", gps.EarthRadius, "Radius of the sphere in meters")
	flag.BoolVar(&showArc, "arc", false, "Also print the great-circle distance")
	flag.StringVar(&svgFile, "svg", "", "Plot the path to this SVG file")
}

// parsePath reads every argument as a coordinate on a sphere of the given
// radius.
func parsePath(args []string, radius float64) ([]gps.Spherical, error) {
	points := make([]gps.Spherical, 0, len(args))
	for i, arg := range args {
		p, err := gps.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("argument #%d: %w", i+1, err)
		}
		if radius != gps.EarthRadius {
			if p, err = gps.NewSphericalWithRadius(p.Latitude(), p.Longitude(), radius); err != nil {
				return nil, fmt.Errorf("argument #%d: %w", i+1, err)
			}
		}
		points = append(points, p)
	}
	return points, nil
}

// report writes one line per leg and the total. Distances are straight
// lines unless arc is set, in which case the great-circle length is added.
func report(ctx context.Context, w io.Writer, points []gps.Spherical, arc bool) (total float64, err error) {
	logger := logging.From(ctx)
	var totalArc float64
	for i := 1; i < len(points); i++ {
		from, to := points[i-1], points[i]
		d, err := from.DistanceTo(to)
		if err != nil {
			return total, err
		}
		total += d
		logger.Debug("Leg", zap.Int("leg", i), zap.Stringer("from", from), zap.Stringer("to", to), zap.Float64("distance", d))
		if !arc {
			fmt.Fprintf(w, "%s -> %s: %.1f m\n", from.ISO6709(), to.ISO6709(), d)
			continue
		}
		a, err := from.GreatCircleDistance(to)
		if err != nil {
			return total, err
		}
		totalArc += a
		fmt.Fprintf(w, "%s -> %s: %.1f m (great circle %.1f m)\n", from.ISO6709(), to.ISO6709(), d, a)
	}
	if arc {
		fmt.Fprintf(w, "Total: %.1f m (great circle %.1f m)\n", total, totalArc)
	} else {
		fmt.Fprintf(w, "Total: %.1f m\n", total)
	}
	return total, nil
}

func plot(path string, points []gps.Spherical) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	view := NewGeoView(out, gps.BoundsOf(points...))
	view.Path(points)
	return view.Close()
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	logger := logging.From(ctx)
	points, err := parsePath(args, radius)
	if err != nil {
		logger.Error("Invalid coordinate", zap.Error(err))
		return err
	}
	logger.Debug("Parsed path", zap.Array("points", logging.Points(points)))
	if _, err := report(ctx, stdout, points, showArc); err != nil {
		logger.Error("Cannot compute distance", zap.Error(err))
		return err
	}
	if svgFile != "" {
		if err := plot(svgFile, points); err != nil {
			logger.Error("Failed to write plot", zap.String("file", svgFile), zap.Error(err))
			return err
		}
		logger.Info("Plot written", zap.String("file", svgFile))
	}
	return nil
}

func main() {
	flag.Parse()
	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}
	logger, ctx := logging.SubFrom(context.Background(), "geodist")
	err := run(ctx, flag.Args(), os.Stdout)
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
