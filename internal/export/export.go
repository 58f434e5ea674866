// Package export writes sampled potential curves to CSV, JSON and SVG.
// Exports are the only output boundary; nothing is persisted otherwise.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/gravpot/internal/orbit"
	"github.com/san-kum/gravpot/internal/potential"
)

// CSV writes one row per grid radius with a column per series.
func CSV(w io.Writer, g *potential.Grid, series []potential.Series) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"r"}
	for _, s := range series {
		header = append(header, s.Name)
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, r := range g.Radii {
		row := []string{strconv.FormatFloat(r, 'f', 6, 64)}
		for _, s := range series {
			if i < len(s.Values) {
				row = append(row, strconv.FormatFloat(s.Values[i], 'f', 6, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Document is the JSON export shape: one grid, named curves, and the
// derived annotations for whichever mode produced them.
type Document struct {
	Mode            string             `json:"mode"`
	GM              float64            `json:"gm"`
	RMin            float64            `json:"r_min"`
	RMax            float64            `json:"r_max"`
	Points          int                `json:"points"`
	Radii           []float64          `json:"radii"`
	Series          []SeriesData       `json:"series"`
	Extrema         []ExtremumData     `json:"extrema,omitempty"`
	Classifications []ClassifiedImpact `json:"classifications,omitempty"`
	Landmarks       LandmarkData       `json:"landmarks"`
	Warnings        []string           `json:"warnings,omitempty"`
}

type SeriesData struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

type ExtremumData struct {
	L    float64 `json:"l"`
	R    float64 `json:"r"`
	V    float64 `json:"v"`
	Kind string  `json:"kind"`
}

type ClassifiedImpact struct {
	B      float64 `json:"b"`
	Energy float64 `json:"energy"`
	Regime string  `json:"regime"`
}

type LandmarkData struct {
	Horizon            float64 `json:"horizon"`
	PhotonSphere       float64 `json:"photon_sphere"`
	PhotonPotentialMax float64 `json:"photon_potential_max"`
	CriticalImpact     float64 `json:"critical_impact"`
}

// NewDocument assembles the common part of a JSON export.
func NewDocument(mode string, p potential.Params, g *potential.Grid, series []potential.Series, warnings []string) Document {
	lm := p.Landmarks()
	doc := Document{
		Mode:     mode,
		GM:       p.GM,
		RMin:     g.RMin,
		RMax:     g.RMax,
		Points:   len(g.Radii),
		Radii:    g.Radii,
		Warnings: warnings,
		Landmarks: LandmarkData{
			Horizon:            lm.Horizon,
			PhotonSphere:       lm.PhotonSphere,
			PhotonPotentialMax: lm.PhotonPotentialMax,
			CriticalImpact:     lm.CriticalImpact,
		},
	}
	for _, s := range series {
		doc.Series = append(doc.Series, SeriesData{Name: s.Name, Values: s.Values})
	}
	return doc
}

// AddExtrema appends massive-particle annotations for one l value.
func (d *Document) AddExtrema(l float64, ext []orbit.Extremum) {
	for _, e := range ext {
		d.Extrema = append(d.Extrema, ExtremumData{L: l, R: e.R, V: e.V, Kind: e.Kind.String()})
	}
}

// AddClassification appends a photon impact-parameter annotation.
func (d *Document) AddClassification(c orbit.Classification) {
	d.Classifications = append(d.Classifications, ClassifiedImpact{
		B:      c.B,
		Energy: c.Energy,
		Regime: c.Regime.String(),
	})
}

// JSON writes the document with indentation.
func JSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
