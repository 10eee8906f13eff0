package encode

type EncodeOption func(*EncState)

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}

// EncodeUTC renders a UTC-normalized copy of values that carry a
// timezone; naive values pass through unchanged.
func EncodeUTC(v bool) EncodeOption {
	return func(es *EncState) { es.utc = v }
}
