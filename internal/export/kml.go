package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"saarthi-api/internal/models"

	"github.com/twpayne/go-kml"
)

// Line colours by safety label, most to least safe.
var labelStyles = []struct {
	label string
	color color.Color
}{
	{"Very Safe", color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}},
	{"Moderately Safe", color.RGBA{R: 0xf9, G: 0xa8, B: 0x25, A: 0xff}},
	{"Use Caution", color.RGBA{R: 0xc6, G: 0x28, B: 0x28, A: 0xff}},
}

// WriteKML writes every route option as a styled LineString placemark, with
// the two endpoints as points.
func WriteKML(w io.Writer, result *models.RouteSearchResult) error {
	doc := []kml.Element{
		kml.Name(fmt.Sprintf("%s to %s", result.Start.Address, result.End.Address)),
	}

	for _, st := range labelStyles {
		doc = append(doc, kml.SharedStyle(styleID(st.label),
			kml.LineStyle(kml.Color(st.color), kml.Width(4)),
		))
	}

	doc = append(doc,
		endpoint("Start", result.Start),
		endpoint("End", result.End),
	)

	for _, opt := range result.Options {
		coords := make([]kml.Coordinate, len(opt.Route.Coordinates))
		for i, p := range opt.Route.Coordinates {
			coords[i] = kml.Coordinate{Lon: p.Longitude, Lat: p.Latitude}
		}

		doc = append(doc, kml.Placemark(
			kml.Name(opt.Description),
			kml.Description(describe(opt)),
			kml.StyleURL("#"+styleID(opt.SafetyLabel)),
			kml.LineString(
				kml.Tessellate(true),
				kml.Coordinates(coords...),
			),
		))
	}

	if err := kml.KML(kml.Document(doc...)).WriteIndent(w, "", "  "); err != nil {
		return fmt.Errorf("export: failed to write kml: %w", err)
	}
	return nil
}

func endpoint(name string, loc models.Location) kml.Element {
	return kml.Placemark(
		kml.Name(name),
		kml.Description(loc.Address),
		kml.Point(kml.Coordinates(kml.Coordinate{Lon: loc.Longitude, Lat: loc.Latitude})),
	)
}

func describe(opt models.RouteOption) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Safety %d/100 (%s), %s, %s.", opt.Safety.OverallScore, opt.SafetyLabel, opt.Distance, opt.Duration)
	for _, w := range opt.Safety.Warnings {
		b.WriteString(" ")
		b.WriteString(w)
		b.WriteString(".")
	}
	return b.String()
}

func styleID(label string) string {
	return strings.ToLower(strings.ReplaceAll(label, " ", "-"))
}
