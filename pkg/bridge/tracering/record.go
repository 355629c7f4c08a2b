package tracering

import (
	"encoding/binary"
	"errors"
	"time"
)

// Record is the diagnostic footprint of one delegate invocation. Arguments
// themselves are never retained.
type Record struct {
	Seq   uint64
	Event string
	Arity int16
	At    time.Time
}

const headerSize = 8 + 8 + 2 + 2

var errShortRecord = errors.New("tracering: short record")

func (r *Record) MarshalBinary() ([]byte, error) {
	name := r.Event
	if len(name) > 0xFFFF {
		name = name[:0xFFFF]
	}
	// Format: at(8) + seq(8) + arity(2) + nameLen(2) + name
	buf := make([]byte, headerSize+len(name))

	offset := 0
	binary.LittleEndian.PutUint64(buf[offset:], uint64(r.At.UnixNano()))
	offset += 8

	binary.LittleEndian.PutUint64(buf[offset:], r.Seq)
	offset += 8

	binary.LittleEndian.PutUint16(buf[offset:], uint16(r.Arity))
	offset += 2

	binary.LittleEndian.PutUint16(buf[offset:], uint16(len(name)))
	offset += 2

	copy(buf[offset:], name)
	return buf, nil
}

func (r *Record) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return errShortRecord
	}

	offset := 0
	r.At = time.Unix(0, int64(binary.LittleEndian.Uint64(data[offset:])))
	offset += 8

	r.Seq = binary.LittleEndian.Uint64(data[offset:])
	offset += 8

	r.Arity = int16(binary.LittleEndian.Uint16(data[offset:]))
	offset += 2

	nameLen := int(binary.LittleEndian.Uint16(data[offset:]))
	offset += 2

	if len(data[offset:]) < nameLen {
		return errShortRecord
	}
	r.Event = string(data[offset : offset+nameLen])
	return nil
}
