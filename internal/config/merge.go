package config

// Merge returns the configuration for a document whose ancestor is base.
// Rule levels from override replace those of base key by key; rules that
// override does not mention keep their base level. Ignore comes from
// override when it sets one. Neither argument is modified, and either
// may be nil.
func Merge(base, override *Config) *Config {
	if base == nil && override == nil {
		return nil
	}
	merged := &Config{}
	if base != nil {
		merged.Ignore = base.Ignore
	}
	n := 0
	if base != nil {
		n += len(base.Rules)
	}
	if override != nil {
		n += len(override.Rules)
	}
	if n > 0 {
		merged.Rules = make(map[string]Level, n)
	}
	if base != nil {
		for k, v := range base.Rules {
			merged.Rules[k] = v
		}
	}
	if override != nil {
		for k, v := range override.Rules {
			merged.Rules[k] = v
		}
		if override.Ignore != nil {
			merged.Ignore = override.Ignore
		}
	}
	return merged
}
