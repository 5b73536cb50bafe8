package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/pixmark/internal/palette"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			continue
		}

		// Parse Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		var err error
		switch currentSection {
		case "":
			err = setRootField(cfg, key, value)
		case "draw":
			err = setDrawField(cfg, key, value)
		case "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		}
		if err != nil {
			return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "save_dir":
		cfg.SaveDir = value
	}
	return nil
}

func setDrawField(cfg *Config, key, value string) error {
	o := &cfg.Draw
	switch strings.ToLower(key) {
	case "color":
		c, err := palette.Parse(value)
		if err != nil {
			return err
		}
		o.PenColor = c
	case "width":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid width %q", value)
		}
		o.PenSize = v
	case "fill":
		if strings.EqualFold(value, "none") {
			o.FillColor = nil
			return nil
		}
		c, err := palette.Parse(value)
		if err != nil {
			return err
		}
		o.FillColor = &c
	case "font_family":
		o.FontFamily = value
	case "font_size":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid font_size %q", value)
		}
		o.FontSize = v
	case "arrow_head":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid arrow_head %q", value)
		}
		o.ArrowHeadSize = v
	case "highlighter_color":
		c, err := palette.Parse(value)
		if err != nil {
			return err
		}
		o.HighlighterColor = c
	case "highlighter_size":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid highlighter_size %q", value)
		}
		o.HighlighterSize = v
	case "pixelation":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid pixelation %q", value)
		}
		o.PixelationLevel = v
	case "number_radius":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid number_radius %q", value)
		}
		o.NumberRadius = v
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean %q for %s", value, key)
	}
	switch strings.ToLower(key) {
	case "save":
		n.Save = enabled
	case "copy":
		n.Copy = enabled
	}
	return nil
}
