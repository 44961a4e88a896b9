// FILE: configfile/decode_test.go
package configfile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deviceConfig struct {
	DeviceType  string        `config:"deviceType"`
	DevicePort  string        `config:"devicePort"`
	NumButtons  int           `config:"numButtons"`
	Timeout     time.Duration `config:"timeout"`
	ButtonNames []string      `config:"buttonNames"`
	Axis        BrokenLine    `config:"axis"`
	Calibrated  bool          `config:"calibrated"`
}

// TestDecodeSection tests decoding a section subtree into a struct
func TestDecodeSection(t *testing.T) {
	text := `device {
	deviceType HIDDevice
	devicePort /dev/input/event0
	numButtons 5
	timeout 30s
	buttonNames left,middle,right
	axis "(0, 120, 136, 255)"
	calibrated true
}
`
	root, err := ParseString(text)
	require.NoError(t, err)
	device, err := root.Resolve("device")
	require.NoError(t, err)

	var cfg deviceConfig
	require.NoError(t, DecodeSection(device, &cfg))

	assert.Equal(t, "HIDDevice", cfg.DeviceType)
	assert.Equal(t, "/dev/input/event0", cfg.DevicePort)
	assert.Equal(t, 5, cfg.NumButtons)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, []string{"left", "middle", "right"}, cfg.ButtonNames)
	assert.Equal(t, BrokenLine{Min: 0, DeadMin: 120, DeadMax: 136, Max: 255}, cfg.Axis)
	assert.True(t, cfg.Calibrated)
}

// TestDecodeSectionNested tests nested struct decoding
func TestDecodeSectionNested(t *testing.T) {
	type daemonConfig struct {
		ServerPort int          `config:"serverPort"`
		Mouse      deviceConfig `config:"mouse"`
	}

	root, err := ParseString("serverPort 8555\nmouse {\ndeviceType HIDDevice\nnumButtons 3\n}\n")
	require.NoError(t, err)

	var cfg daemonConfig
	require.NoError(t, DecodeSection(root, &cfg))
	assert.Equal(t, 8555, cfg.ServerPort)
	assert.Equal(t, "HIDDevice", cfg.Mouse.DeviceType)
	assert.Equal(t, 3, cfg.Mouse.NumButtons)
}

// TestDecodeSectionErrors tests target validation and type mismatches
func TestDecodeSectionErrors(t *testing.T) {
	root, err := ParseString("numButtons five\n")
	require.NoError(t, err)

	t.Run("NonPointerTarget", func(t *testing.T) {
		var cfg deviceConfig
		assert.Error(t, DecodeSection(root, cfg))
	})

	t.Run("NilTarget", func(t *testing.T) {
		assert.Error(t, DecodeSection(root, (*deviceConfig)(nil)))
	})

	t.Run("UnparsableField", func(t *testing.T) {
		var cfg deviceConfig
		assert.Error(t, DecodeSection(root, &cfg))
	})
}
