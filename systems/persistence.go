package systems

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"math"

	"github.com/bdore/slate2d/components"
	"github.com/quasilyte/gdata"
)

const saveItemKey = "save.dat"

// recordSize is the fixed length of an encoded SaveRecord:
// f64 relX, f64 relY, u8 fullscreen, i32 targetTPS, u8 mode, f64 volume.
const recordSize = 8 + 8 + 1 + 4 + 1 + 8

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence sets up the platform data manager. Call once at
// startup. On failure the application still runs; loads return defaults
// and saves become no-ops.
func InitPersistence() {
	m, err := gdata.Open(gdata.Config{
		AppName: "slate2d",
	})
	if err != nil {
		log.Printf("Warning: could not open data storage: %v", err)
		return
	}
	gdataManager = m
	gdataInitialized = true
}

// LoadSaveRecord reads the persisted record, falling back to defaults
// when storage is unavailable, empty, or corrupt.
func LoadSaveRecord() components.SaveRecord {
	if !gdataInitialized {
		return components.DefaultSaveRecord()
	}

	data, err := gdataManager.LoadItem(saveItemKey)
	if err != nil {
		log.Printf("Warning: could not load save data: %v", err)
		return components.DefaultSaveRecord()
	}
	if len(data) == 0 {
		return components.DefaultSaveRecord()
	}

	record, err := decodeRecord(data)
	if err != nil {
		log.Printf("Warning: discarding unreadable save data: %v", err)
		return components.DefaultSaveRecord()
	}
	return record
}

// StoreSaveRecord persists the record. A missing storage backend is not
// an error; the record simply stays in memory.
func StoreSaveRecord(record components.SaveRecord) error {
	if !gdataInitialized {
		return nil
	}
	if err := gdataManager.SaveItem(saveItemKey, encodeRecord(record)); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	return nil
}

// encodeRecord serializes a record into the fixed little-endian layout
func encodeRecord(record components.SaveRecord) []byte {
	buf := make([]byte, 0, recordSize)
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(record.RelX))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(record.RelY))
	buf = append(buf, boolByte(record.Fullscreen))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(record.TargetTPS)))
	buf = append(buf, byte(record.Mode))
	buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(record.Volume))
	return buf
}

// decodeRecord parses the fixed layout written by encodeRecord
func decodeRecord(data []byte) (components.SaveRecord, error) {
	var record components.SaveRecord
	if len(data) != recordSize {
		return record, fmt.Errorf("record is %d bytes, want %d", len(data), recordSize)
	}

	r := bytes.NewReader(data)
	var raw struct {
		RelX       float64
		RelY       float64
		Fullscreen uint8
		TargetTPS  int32
		Mode       uint8
		Volume     float64
	}
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		return record, err
	}

	record.RelX = raw.RelX
	record.RelY = raw.RelY
	record.Fullscreen = raw.Fullscreen != 0
	record.TargetTPS = int(raw.TargetTPS)
	record.Mode = components.InputMode(raw.Mode)
	record.Volume = raw.Volume
	return record, nil
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
