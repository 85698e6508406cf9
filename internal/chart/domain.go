package chart

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid chart config")

// ChartType is the chart family. A cartesian chart has axes and a circular one does not.
type ChartType string

const (
	Cartesian ChartType = "cartesian"
	Circular  ChartType = "circular"
)

// AxisType is the value type plotted along an axis.
type AxisType string

const (
	AxisCategory    AxisType = "category"
	AxisNumerical   AxisType = "numerical"
	AxisDateTime    AxisType = "datetime"
	AxisLogarithmic AxisType = "logarithmic"
)

// SeriesType is how a series is drawn.
type SeriesType string

const (
	SeriesLine     SeriesType = "Line"
	SeriesColumn   SeriesType = "Column"
	SeriesSpline   SeriesType = "Spline"
	SeriesArea     SeriesType = "Area"
	SeriesPie      SeriesType = "Pie"
	SeriesDoughnut SeriesType = "Doughnut"
)

var seriesTypes = []SeriesType{SeriesLine, SeriesColumn, SeriesSpline, SeriesArea, SeriesPie, SeriesDoughnut}

var axisTypes = []AxisType{AxisCategory, AxisNumerical, AxisDateTime, AxisLogarithmic}

// Config is the renderable chart configuration handed to the chart surface.
// Field names are the JSON contract the renderer reads.
type Config struct {
	ChartType           ChartType `json:"chartType" yaml:"chartType"`
	Title               string    `json:"title" yaml:"title"`
	ShowLegend          bool      `json:"showLegend" yaml:"showLegend"`
	SideBySidePlacement bool      `json:"sideBySidePlacement" yaml:"sideBySidePlacement"`
	XAxis               []Axis    `json:"xAxis" yaml:"xAxis"`
	YAxis               []Axis    `json:"yAxis" yaml:"yAxis"`
	Series              []Series  `json:"series" yaml:"series"`
}

// Axis describes one chart axis. Min is only meaningful on Y axes.
type Axis struct {
	Type  AxisType `json:"type" yaml:"type"`
	Title string   `json:"title" yaml:"title"`
	Min   *float64 `json:"min,omitempty" yaml:"min,omitempty"`
}

// Series is one plotted data set.
type Series struct {
	Type       SeriesType  `json:"type" yaml:"type"`
	Name       string      `json:"name" yaml:"name"`
	DataSource []DataPoint `json:"dataSource" yaml:"dataSource"`
	Tooltip    bool        `json:"tooltip" yaml:"tooltip"`
}

// DataPoint is a single (x, y) pair.
type DataPoint struct {
	XValue string  `json:"xvalue" yaml:"xvalue"`
	YValue float64 `json:"yvalue" yaml:"yvalue"`
}

// UnmarshalText lower-cases the chart type so "Cartesian" and "cartesian" both decode.
func (t *ChartType) UnmarshalText(b []byte) error {
	*t = ChartType(strings.ToLower(strings.TrimSpace(string(b))))
	return nil
}

// UnmarshalText maps any casing of a known axis type to its canonical value.
func (t *AxisType) UnmarshalText(b []byte) error {
	v := strings.TrimSpace(string(b))
	for _, known := range axisTypes {
		if strings.EqualFold(v, string(known)) {
			*t = known
			return nil
		}
	}
	*t = AxisType(v)
	return nil
}

// UnmarshalText maps any casing of a known series type to its canonical value.
func (t *SeriesType) UnmarshalText(b []byte) error {
	v := strings.TrimSpace(string(b))
	for _, known := range seriesTypes {
		if strings.EqualFold(v, string(known)) {
			*t = known
			return nil
		}
	}
	*t = SeriesType(v)
	return nil
}

// Circular reports whether the series type belongs on a circular chart.
func (t SeriesType) Circular() bool {
	return t == SeriesPie || t == SeriesDoughnut
}

func (t SeriesType) known() bool {
	for _, known := range seriesTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t AxisType) known() bool {
	for _, known := range axisTypes {
		if t == known {
			return true
		}
	}
	return false
}

// UnmarshalJSON accepts string or numeric values for both coordinates.
// Models emit numeric x values for numerical axes and quoted y values now and then.
func (p *DataPoint) UnmarshalJSON(data []byte) error {
	var raw struct {
		XValue json.RawMessage `json:"xvalue"`
		YValue json.RawMessage `json:"yvalue"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	x, err := scalarText(raw.XValue)
	if err != nil {
		return fmt.Errorf("xvalue: %w", err)
	}
	y, err := scalarText(raw.YValue)
	if err != nil {
		return fmt.Errorf("yvalue: %w", err)
	}

	p.XValue = x
	p.YValue = 0
	if y != "" {
		p.YValue, err = strconv.ParseFloat(strings.TrimSpace(y), 64)
		if err != nil {
			return fmt.Errorf("yvalue %q is not a number", y)
		}
	}
	return nil
}

// scalarText returns the text of a JSON string, number or bool.
func scalarText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	if raw[0] == '{' || raw[0] == '[' {
		return "", fmt.Errorf("expected a scalar, got %s", raw)
	}
	return string(raw), nil
}

// Validate checks the structural invariants the renderer relies on.
func (c *Config) Validate() error {
	switch c.ChartType {
	case Cartesian:
		if len(c.XAxis) == 0 || len(c.YAxis) == 0 {
			return fmt.Errorf("%w: cartesian chart needs at least one x and one y axis", ErrInvalidConfig)
		}
	case Circular:
		if len(c.XAxis) > 0 || len(c.YAxis) > 0 {
			return fmt.Errorf("%w: circular chart cannot have axes", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown chart type %q", ErrInvalidConfig, c.ChartType)
	}

	for i, a := range c.XAxis {
		if !a.Type.known() {
			return fmt.Errorf("%w: x axis %d has unknown type %q", ErrInvalidConfig, i, a.Type)
		}
		if a.Min != nil {
			return fmt.Errorf("%w: x axis %d cannot set a minimum", ErrInvalidConfig, i)
		}
	}
	for i, a := range c.YAxis {
		if !a.Type.known() {
			return fmt.Errorf("%w: y axis %d has unknown type %q", ErrInvalidConfig, i, a.Type)
		}
		if a.Min != nil && !finite(*a.Min) {
			return fmt.Errorf("%w: y axis %d minimum is not a finite number", ErrInvalidConfig, i)
		}
	}

	if len(c.Series) == 0 {
		return fmt.Errorf("%w: at least one series is required", ErrInvalidConfig)
	}
	for i, s := range c.Series {
		if !s.Type.known() {
			return fmt.Errorf("%w: series %d has unknown type %q", ErrInvalidConfig, i, s.Type)
		}
		if s.Type.Circular() != (c.ChartType == Circular) {
			return fmt.Errorf("%w: series %d of type %s does not fit a %s chart", ErrInvalidConfig, i, s.Type, c.ChartType)
		}
		if len(s.DataSource) == 0 {
			return fmt.Errorf("%w: series %d (%s) has no data points", ErrInvalidConfig, i, s.Name)
		}
		for j, p := range s.DataSource {
			if !finite(p.YValue) {
				return fmt.Errorf("%w: series %d point %d has non-finite value %v", ErrInvalidConfig, i, j, p.YValue)
			}
		}
	}
	return nil
}

// finite is false for NaN and the infinities, which JSON cannot carry.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
