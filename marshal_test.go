package datetime_test

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"

	datetime "github.com/rasterworks/go-datetime"
)

type observation struct {
	Station string             `yaml:"station"`
	Taken   *datetime.DateTime `yaml:"taken"`
	Period  *datetime.DateTime `yaml:"period"`
}

func TestYAMLRoundTrip(t *testing.T) {
	in := `
station: willow-creek
taken: 24 Aug 2025 14:30:00 +0200
period: 2 hours 30 minutes
`
	var obs observation
	require.NoError(t, yaml.Unmarshal([]byte(in), &obs))
	require.Equal(t, "willow-creek", obs.Station)
	require.Equal(t, "24 Aug 2025 14:30:00 +0200", obs.Taken.String())
	require.Equal(t, "2 hours 30 minutes", obs.Period.String())

	off, err := obs.Taken.Timezone()
	require.NoError(t, err)
	require.Equal(t, 120, off)

	out, err := yaml.Marshal(&obs)
	require.NoError(t, err)

	var back observation
	require.NoError(t, yaml.Unmarshal(out, &back))
	require.True(t, datetime.IsSame(obs.Taken, back.Taken))
	require.True(t, datetime.IsSame(obs.Period, back.Period))
}

func TestYAMLRejectsMalformed(t *testing.T) {
	var obs observation
	err := yaml.Unmarshal([]byte("taken: 24 Aug\n"), &obs)
	require.Error(t, err)
}

func TestUnmarshalText(t *testing.T) {
	var dt datetime.DateTime
	require.NoError(t, dt.UnmarshalText([]byte("29 Feb 2024")))
	require.Equal(t, "29 Feb 2024", dt.String())

	b, err := dt.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "29 Feb 2024", string(b))

	require.ErrorIs(t, dt.UnmarshalText([]byte("29 Feb 2023")), datetime.ErrScanOutOfRange)
	// a failed unmarshal leaves the value untouched
	require.Equal(t, "29 Feb 2024", dt.String())
}
