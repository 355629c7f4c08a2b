// Package tracering keeps a bounded, drop-oldest history of invocation
// records in a byte ring. Frames are length-prefixed so whole records are
// evicted together.
package tracering

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/smallnest/ringbuffer"
)

const sizePrefix = 4

var ErrRecordTooLarge = errors.New("tracering: record too large for ring")

type Ring struct {
	mu   sync.Mutex
	size int
	n    int
	rb   *ringbuffer.RingBuffer
}

func New(size int) *Ring {
	return &Ring{
		size: size,
		rb:   ringbuffer.New(size).SetBlocking(false),
	}
}

func (r *Ring) Capacity() int {
	return r.size
}

// Len is the number of whole records currently held.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}

// Append stores rec, evicting the oldest records until it fits.
func (r *Ring) Append(rec Record) error {
	data, err := rec.MarshalBinary()
	if err != nil {
		return err
	}

	required := len(data) + sizePrefix
	if required > r.rb.Capacity() {
		return ErrRecordTooLarge
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for r.rb.Free() < required {
		if !r.dropOldest() {
			// framing is lost; start over rather than return garbage later
			r.rb.Reset()
			r.n = 0
			break
		}
	}

	prefix := make([]byte, sizePrefix)
	binary.LittleEndian.PutUint32(prefix, uint32(len(data)))
	if _, err := r.rb.Write(prefix); err != nil {
		return err
	}
	if _, err := r.rb.Write(data); err != nil {
		return err
	}
	r.n++
	return nil
}

func (r *Ring) dropOldest() bool {
	if r.rb.IsEmpty() {
		return false
	}
	prefix := make([]byte, sizePrefix)
	n, err := r.rb.Read(prefix)
	if err != nil || n != sizePrefix {
		return false
	}
	size := int(binary.LittleEndian.Uint32(prefix))
	if size > 0 {
		skip := make([]byte, size)
		n, err := r.rb.Read(skip)
		if err != nil || n != size {
			return false
		}
	}
	r.n--
	return true
}

// Recent returns up to n of the newest records, oldest first, without
// consuming them. n <= 0 returns everything held.
func (r *Ring) Recent(n int) []Record {
	r.mu.Lock()
	if r.rb.IsEmpty() {
		r.mu.Unlock()
		return nil
	}
	held := r.n
	buf := make([]byte, r.rb.Length())
	r.rb.Bytes(buf)
	r.mu.Unlock()

	all := make([]Record, 0, held)
	for offset := 0; offset+sizePrefix <= len(buf); {
		size := int(binary.LittleEndian.Uint32(buf[offset:]))
		offset += sizePrefix
		if offset+size > len(buf) {
			break
		}
		var rec Record
		if err := rec.UnmarshalBinary(buf[offset : offset+size]); err != nil {
			break
		}
		all = append(all, rec)
		offset += size
	}

	if n > 0 && len(all) > n {
		all = all[len(all)-n:]
	}
	return all
}

func (r *Ring) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rb.Reset()
	r.n = 0
}
