package datetime

// MarshalText renders dt in the canonical text encoding, so values embed
// in YAML or JSON documents as plain scalars.
func (dt *DateTime) MarshalText() ([]byte, error) {
	s, err := Format(dt)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (dt *DateTime) UnmarshalText(d []byte) error {
	parsed, err := Scan(string(d))
	if err != nil {
		return err
	}
	*dt = *parsed
	return nil
}

// String renders the canonical encoding, or a placeholder when the
// value's type does not check out.
func (dt *DateTime) String() string {
	s, err := Format(dt)
	if err != nil {
		return "<invalid datetime>"
	}
	return s
}
