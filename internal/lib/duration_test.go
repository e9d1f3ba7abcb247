package lib

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type durationHolder struct {
	D Duration `json:"d" toml:"d" yaml:"d"`
}

func TestDurationJSON(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		var h durationHolder
		require.NoError(t, json.Unmarshal([]byte(`{"d": "50ms"}`), &h))
		assert.Equal(t, 50*time.Millisecond, h.D.Duration)
	})

	t.Run("number is nanoseconds", func(t *testing.T) {
		var h durationHolder
		require.NoError(t, json.Unmarshal([]byte(`{"d": 1000}`), &h))
		assert.Equal(t, time.Microsecond, h.D.Duration)
	})

	t.Run("invalid", func(t *testing.T) {
		var h durationHolder
		assert.Error(t, json.Unmarshal([]byte(`{"d": true}`), &h))
		assert.Error(t, json.Unmarshal([]byte(`{"d": "soon"}`), &h))
	})
}

func TestDurationTOML(t *testing.T) {
	var h durationHolder
	_, err := toml.Decode(`d = "2s"`, &h)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, h.D.Duration)
}

func TestDurationYAML(t *testing.T) {
	var h durationHolder
	require.NoError(t, yaml.Unmarshal([]byte("d: 1m30s\n"), &h))
	assert.Equal(t, 90*time.Second, h.D.Duration)

	err := yaml.Unmarshal([]byte("d: [1, 2]\n"), &h)
	assert.Error(t, err)
}

func TestDurationMarshalText(t *testing.T) {
	b, err := DurationFrom(1500 * time.Millisecond).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1.5s", string(b))
}
