package chart

import (
	"strings"

	"golang.org/x/text/cases"
)

// Archetype names one of the hand-authored sample charts.
type Archetype string

const (
	ArchetypePie    Archetype = "pie"
	ArchetypeLine   Archetype = "line"
	ArchetypeColumn Archetype = "column"
	ArchetypeArea   Archetype = "area"
)

// archetypeRule maps keywords to an archetype. Rules are checked top to bottom.
type archetypeRule struct {
	keywords  []string
	archetype Archetype
}

var archetypeRules = []archetypeRule{
	{keywords: []string{"pie", "doughnut"}, archetype: ArchetypePie},
	{keywords: []string{"line", "trend"}, archetype: ArchetypeLine},
	{keywords: []string{"bar", "column"}, archetype: ArchetypeColumn},
	{keywords: []string{"area"}, archetype: ArchetypeArea},
}

// defaultArchetype is used when no rule matches.
const defaultArchetype = ArchetypeColumn

var archetypeBuilders = map[Archetype]func() *Config{
	ArchetypePie:    pieArchetype,
	ArchetypeLine:   lineArchetype,
	ArchetypeColumn: columnArchetype,
	ArchetypeArea:   areaArchetype,
}

// Classify picks the archetype for a prompt. The first rule with a keyword
// contained in the case-folded prompt wins.
func Classify(prompt string) Archetype {
	folded := cases.Fold().String(prompt)
	for _, rule := range archetypeRules {
		for _, kw := range rule.keywords {
			if strings.Contains(folded, kw) {
				return rule.archetype
			}
		}
	}
	return defaultArchetype
}

// Synthesize builds a sample chart for the prompt without any network access.
// It always returns a valid, freshly allocated config.
func Synthesize(prompt string) *Config {
	return archetypeBuilders[Classify(prompt)]()
}

func pieArchetype() *Config {
	return &Config{
		ChartType:  Circular,
		Title:      "Sample Pie Chart",
		ShowLegend: true,
		XAxis:      []Axis{},
		YAxis:      []Axis{},
		Series: []Series{
			{
				Type: SeriesPie,
				Name: "Data Series",
				DataSource: []DataPoint{
					{XValue: "Category A", YValue: 30},
					{XValue: "Category B", YValue: 25},
					{XValue: "Category C", YValue: 20},
					{XValue: "Category D", YValue: 15},
					{XValue: "Category E", YValue: 10},
				},
				Tooltip: true,
			},
		},
	}
}

func columnArchetype() *Config {
	return &Config{
		ChartType:           Cartesian,
		Title:               "Sample Column Chart",
		ShowLegend:          true,
		SideBySidePlacement: true,
		XAxis:               []Axis{{Title: "Categories", Type: AxisCategory}},
		YAxis:               []Axis{{Title: "Values", Type: AxisNumerical}},
		Series: []Series{
			{
				Type: SeriesColumn,
				Name: "Sales Data",
				DataSource: []DataPoint{
					{XValue: "Jan", YValue: 35},
					{XValue: "Feb", YValue: 28},
					{XValue: "Mar", YValue: 34},
					{XValue: "Apr", YValue: 32},
					{XValue: "May", YValue: 40},
					{XValue: "Jun", YValue: 32},
				},
				Tooltip: true,
			},
		},
	}
}

func lineArchetype() *Config {
	return &Config{
		ChartType:  Cartesian,
		Title:      "Sample Line Chart",
		ShowLegend: true,
		XAxis:      []Axis{{Title: "Time Period", Type: AxisCategory}},
		YAxis:      []Axis{{Title: "Values", Type: AxisNumerical}},
		Series: []Series{
			{
				Type: SeriesLine,
				Name: "Trend Data",
				DataSource: []DataPoint{
					{XValue: "Q1", YValue: 21},
					{XValue: "Q2", YValue: 24},
					{XValue: "Q3", YValue: 36},
					{XValue: "Q4", YValue: 38},
				},
				Tooltip: true,
			},
		},
	}
}

func areaArchetype() *Config {
	return &Config{
		ChartType:  Cartesian,
		Title:      "Sample Area Chart",
		ShowLegend: true,
		XAxis:      []Axis{{Title: "Months", Type: AxisCategory}},
		YAxis:      []Axis{{Title: "Revenue", Type: AxisNumerical}},
		Series: []Series{
			{
				Type: SeriesArea,
				Name: "Revenue",
				DataSource: []DataPoint{
					{XValue: "Jan", YValue: 10},
					{XValue: "Feb", YValue: 20},
					{XValue: "Mar", YValue: 30},
					{XValue: "Apr", YValue: 40},
					{XValue: "May", YValue: 50},
					{XValue: "Jun", YValue: 60},
				},
				Tooltip: true,
			},
		},
	}
}
