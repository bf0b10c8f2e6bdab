package systems

import (
	"testing"

	"github.com/bdore/slate2d/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRoundTrip(t *testing.T) {
	original := components.SaveRecord{
		RelX:       0.3141592653,
		RelY:       0.9999999,
		Fullscreen: true,
		TargetTPS:  144,
		Mode:       components.ModeController,
		Volume:     0.65,
	}

	decoded, err := decodeRecord(encodeRecord(original))
	require.NoError(t, err)

	assert.InDelta(t, original.RelX, decoded.RelX, 1e-6)
	assert.InDelta(t, original.RelY, decoded.RelY, 1e-6)
	assert.Equal(t, original.Fullscreen, decoded.Fullscreen)
	assert.Equal(t, original.TargetTPS, decoded.TargetTPS)
	assert.Equal(t, original.Mode, decoded.Mode)
	assert.InDelta(t, original.Volume, decoded.Volume, 1e-6)
}

func TestRecordLayoutIsFixedSize(t *testing.T) {
	data := encodeRecord(components.DefaultSaveRecord())
	assert.Len(t, data, recordSize)
	assert.Equal(t, 30, recordSize)
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, err := decodeRecord([]byte{1, 2, 3})
	assert.Error(t, err)

	_, err = decodeRecord(make([]byte, recordSize+1))
	assert.Error(t, err)

	_, err = decodeRecord(nil)
	assert.Error(t, err)
}

func TestLoadWithoutStorageFallsBackToDefaults(t *testing.T) {
	assert.False(t, gdataInitialized)
	assert.Equal(t, components.DefaultSaveRecord(), LoadSaveRecord())
}

func TestStoreWithoutStorageIsANoOp(t *testing.T) {
	assert.NoError(t, StoreSaveRecord(components.DefaultSaveRecord()))
}
