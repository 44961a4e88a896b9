// FILE: configfile/merge_test.go
package configfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMergeSection tests the additive/overwriting overlay semantics
func TestMergeSection(t *testing.T) {
	t.Run("Overlay", func(t *testing.T) {
		target, err := ParseString("a {\np 1\n}\n")
		require.NoError(t, err)
		source, err := ParseString("a {\np 2\nq 3\n}\nb {\nr 4\n}\n")
		require.NoError(t, err)

		MergeSection(target, source)

		expected, err := ParseString("a {\np 2\nq 3\n}\nb {\nr 4\n}\n")
		require.NoError(t, err)
		assert.True(t, target.Equal(expected))
	})

	t.Run("TargetOnlyEntriesUntouched", func(t *testing.T) {
		target, err := ParseString("keep me\na {\nkept too\n}\n")
		require.NoError(t, err)
		source, err := ParseString("a {\nnew 1\n}\n")
		require.NoError(t, err)

		MergeSection(target, source)

		value, err := target.RetrieveTagValue("keep")
		require.NoError(t, err)
		assert.Equal(t, "me", value)
		value, err = target.RetrieveTagValue("a/kept")
		require.NoError(t, err)
		assert.Equal(t, "too", value)
	})

	t.Run("OverwriteKeepsTagOrder", func(t *testing.T) {
		target, err := ParseString("a 1\nb 2\n")
		require.NoError(t, err)
		source, err := ParseString("a 9\n")
		require.NoError(t, err)

		MergeSection(target, source)
		assert.Equal(t, []TagValue{{"a", "9"}, {"b", "2"}}, target.Tags())
	})

	t.Run("MergeMarksTargetEdited", func(t *testing.T) {
		target, err := ParseString("a 1\n")
		require.NoError(t, err)
		source, err := ParseString("b 2\n")
		require.NoError(t, err)

		require.False(t, target.IsEdited())
		MergeSection(target, source)
		assert.True(t, target.IsEdited())
	})
}

// TestMergeCommandline tests "-tag value" consumption and residual args
func TestMergeCommandline(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		residual []string
		stored   map[string]string
	}{
		{
			"MixedFlagsAndPositionals",
			[]string{"-verbose", "true", "run", "-level", "5"},
			[]string{"run"},
			map[string]string{"verbose": "true", "level": "5"},
		},
		{
			"NoFlags",
			[]string{"run", "fast"},
			[]string{"run", "fast"},
			nil,
		},
		{
			"TrailingFlagWithoutValue",
			[]string{"run", "-dangling"},
			[]string{"run", "-dangling"},
			nil,
		},
		{
			"BareDash",
			[]string{"-", "x"},
			[]string{"-", "x"},
			nil,
		},
		{
			"PathTag",
			[]string{"-net/serverPort", "8555"},
			nil,
			map[string]string{"net/serverPort": "8555"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewSection()
			residual := MergeCommandline(root, tt.args)
			assert.Equal(t, tt.residual, residual)
			for path, want := range tt.stored {
				value, err := root.RetrieveTagValue(path)
				require.NoError(t, err)
				assert.Equal(t, want, value)
			}
		})
	}
}

// TestMergeCommandlineAgainstCursor verifies overrides land in the current
// section, not the root
func TestMergeCommandlineAgainstCursor(t *testing.T) {
	cfg := New()
	cfg.RootSection().StoreTagValue("devices/mouse/deviceName", "Mouse")
	require.NoError(t, cfg.SetCurrentSection("devices/mouse"))

	residual := cfg.MergeCommandline([]string{"-deviceName", "Trackball", "extra"})
	assert.Equal(t, []string{"extra"}, residual)

	value, err := cfg.RootSection().RetrieveTagValue("devices/mouse/deviceName")
	require.NoError(t, err)
	assert.Equal(t, "Trackball", value)
}
