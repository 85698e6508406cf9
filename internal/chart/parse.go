package chart

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ParseConfig reads a chart config out of a model reply. The reply may wrap
// the JSON in prose or a Markdown code fence. The parsed config is normalized
// and validated before it is returned.
func ParseConfig(reply string) (*Config, error) {
	body := extractObject(reply)
	if body == "" {
		return nil, fmt.Errorf("%w: reply contains no JSON object", ErrInvalidConfig)
	}

	// The legend stays on unless the model turns it off explicitly.
	cfg := &Config{ShowLegend: true}
	if err := json.Unmarshal([]byte(body), cfg); err != nil {
		return nil, fmt.Errorf("%w: could not decode reply: %v", ErrInvalidConfig, err)
	}

	normalize(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// extractObject returns the outermost {...} span of s after dropping code fences.
func extractObject(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "```"); i >= 0 {
		rest := s[i+3:]
		rest = strings.TrimPrefix(rest, "json")
		if j := strings.Index(rest, "```"); j >= 0 {
			rest = rest[:j]
		}
		s = rest
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

func normalize(cfg *Config) {
	if cfg.ChartType == Circular {
		cfg.XAxis = []Axis{}
		cfg.YAxis = []Axis{}
	}
	for i := range cfg.XAxis {
		cfg.XAxis[i].Min = nil
	}
	if cfg.XAxis == nil {
		cfg.XAxis = []Axis{}
	}
	if cfg.YAxis == nil {
		cfg.YAxis = []Axis{}
	}
}
