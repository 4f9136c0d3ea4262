package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseOverrides parses CLI override strings (--set key=value), adapted
// from the teacher's scenario/parser.ParseOverrides.
func ParseOverrides(overrides []string) (map[string]string, error) {
	result := make(map[string]string)

	for _, override := range overrides {
		parts := strings.SplitN(override, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid override format: %s (expected key=value)", override)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if key == "" {
			return nil, fmt.Errorf("empty key in override: %s", override)
		}

		result[key] = value
	}

	return result, nil
}

// ApplyOverrides applies CLI overrides to a Config, adapted from the
// teacher's scenario/parser.ApplyOverrides for kinda's own config surface.
func ApplyOverrides(c *Config, overrides map[string]string) error {
	for key, value := range overrides {
		switch key {
		case "mood", "personality.default_mood":
			c.Personality.DefaultMood = value

		case "seed", "personality.default_seed":
			seed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed override: %w", err)
			}
			c.Personality.DefaultSeed = seed

		case "output_dir", "reporting.output_dir":
			c.Reporting.OutputDir = value

		case "log_level", "framework.log_level":
			c.Framework.LogLevel = value

		case "telemetry.enabled":
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid telemetry.enabled override: %w", err)
			}
			c.Telemetry.Enabled = enabled

		case "telemetry.addr":
			c.Telemetry.Addr = value

		case "max_eventually_iterations", "safety.max_eventually_iterations":
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid max_eventually_iterations override: %w", err)
			}
			c.Safety.MaxEventuallyIterations = n

		case "composition.use_composition_ish":
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid composition.use_composition_ish override: %w", err)
			}
			c.Composition.UseCompositionIsh = enabled

		default:
			return fmt.Errorf("unsupported override key: %s", key)
		}
	}

	return nil
}
