package fanuc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadPresetOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "machine.yaml")
	preset := `
sequence_numbers: true
sequence_start: 100
etch_code: 106
`
	require.NoError(t, os.WriteFile(path, []byte(preset), 0644))

	props, err := LoadPreset(path)
	require.NoError(t, err, "Пресет должен загружаться без ошибок")

	require.True(t, props.SequenceNumbers)
	require.Equal(t, 100, props.SequenceStart)
	require.Equal(t, 106, props.EtchCode)

	defaults := DefaultProperties()
	require.Equal(t, defaults.ThroughCode, props.ThroughCode, "Не заданные в файле поля сохраняют умолчания")
	require.Equal(t, defaults.SequenceIncrement, props.SequenceIncrement)
}

func TestLoadPresetMissingFile(t *testing.T) {
	_, err := LoadPreset(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadPresetMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sequence_start: [oops"), 0644))

	_, err := LoadPreset(path)
	require.Error(t, err)
}
