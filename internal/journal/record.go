// Package journal persists the engine's event stream as length-prefixed,
// checksummed frames. The payload of each frame is the event's record form
// encoded as JSON, so segments stay inspectable with standard tooling.
package journal

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"

	"main/internal/schema"
	"main/pkg/exception"
)

const (
	recordVersion      uint16 = 1
	recordHeaderSize          = 32
	recordChecksumSize        = 4
)

var (
	recordMagic = [4]byte{'E', 'V', 'J', '1'}
	crcTable    = crc32.MakeTable(crc32.Castagnoli)
)

const maxPayloadLen = uint64(^uint32(0))

// frame is the fixed-size metadata in front of every journaled payload.
type frame struct {
	Type    schema.EventType
	Seq     uint64
	TsEvent int64
}

func encodeFrame(dst []byte, f frame, payloadLen int) {
	_ = dst[recordHeaderSize-1]
	copy(dst[0:4], recordMagic[:])
	binary.LittleEndian.PutUint16(dst[4:6], recordVersion)
	binary.LittleEndian.PutUint16(dst[6:8], uint16(recordHeaderSize))
	binary.LittleEndian.PutUint16(dst[8:10], uint16(f.Type))
	binary.LittleEndian.PutUint16(dst[10:12], 0)
	binary.LittleEndian.PutUint32(dst[12:16], uint32(payloadLen))
	binary.LittleEndian.PutUint64(dst[16:24], f.Seq)
	binary.LittleEndian.PutUint64(dst[24:32], uint64(f.TsEvent))
}

func decodeFrame(src []byte) (frame, uint32, error) {
	if len(src) < recordHeaderSize {
		return frame{}, 0, exception.ErrJournalUnsupportedVersion
	}
	if !bytes.Equal(src[0:4], recordMagic[:]) {
		return frame{}, 0, exception.ErrJournalInvalidMagic
	}
	if ver := binary.LittleEndian.Uint16(src[4:6]); ver != recordVersion {
		return frame{}, 0, exception.ErrJournalUnsupportedVersion
	}
	if headerSize := binary.LittleEndian.Uint16(src[6:8]); headerSize != recordHeaderSize {
		return frame{}, 0, exception.ErrJournalUnsupportedVersion
	}
	f := frame{
		Type:    schema.EventType(binary.LittleEndian.Uint16(src[8:10])),
		Seq:     binary.LittleEndian.Uint64(src[16:24]),
		TsEvent: int64(binary.LittleEndian.Uint64(src[24:32])),
	}
	payloadLen := binary.LittleEndian.Uint32(src[12:16])
	return f, payloadLen, nil
}

func checksum(header []byte, payload []byte) uint32 {
	crc := crc32.Update(0, crcTable, header)
	return crc32.Update(crc, crcTable, payload)
}
