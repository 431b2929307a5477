package domain

// Place is a provider place record. It is kept as a generic JSON object so
// fields the provider adds later reach the client unchanged.
type Place map[string]any

func (p Place) ID() string {
	return p.str("place_id")
}

func (p Place) Name() string {
	return p.str("name")
}

// Address prefers formatted_address and falls back to vicinity
func (p Place) Address() string {
	if addr := p.str("formatted_address"); addr != "" {
		return addr
	}
	return p.str("vicinity")
}

func (p Place) Rating() (float64, bool) {
	return p.number("rating")
}

func (p Place) Types() []string {
	raw, ok := p["types"]
	if !ok {
		return []string{}
	}
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		types := make([]string, 0, len(v))
		for _, t := range v {
			if s, ok := t.(string); ok {
				types = append(types, s)
			}
		}
		return types
	}
	return []string{}
}

func (p Place) str(key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}

func (p Place) number(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
