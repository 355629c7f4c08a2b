package tracering

import (
	"fmt"
	"testing"
	"time"
)

func TestRecordRoundTrip(t *testing.T) {
	at := time.Unix(0, 1700000000123456789)
	in := Record{Seq: 42, Event: "conversation.messageAdded", Arity: 3, At: at}

	data, err := in.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out Record
	if err := out.UnmarshalBinary(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Seq != in.Seq || out.Event != in.Event || out.Arity != in.Arity || !out.At.Equal(in.At) {
		t.Errorf("round trip mismatch: got %+v, want %+v", out, in)
	}

	if err := out.UnmarshalBinary(data[:5]); err == nil {
		t.Error("expected error for short record")
	}
}

func TestRingAppendAndRecent(t *testing.T) {
	ring := New(1024)
	if ring.Capacity() != 1024 {
		t.Errorf("Expected capacity 1024, got %d", ring.Capacity())
	}
	if got := ring.Recent(10); len(got) != 0 {
		t.Errorf("Expected empty ring, got %d records", len(got))
	}

	for i := 0; i < 3; i++ {
		if err := ring.Append(Record{Seq: uint64(i + 1), Event: "e", Arity: 1, At: time.Now()}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if ring.Len() != 3 {
		t.Errorf("Expected 3 records, got %d", ring.Len())
	}

	recent := ring.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(recent))
	}
	if recent[0].Seq != 2 || recent[1].Seq != 3 {
		t.Errorf("Expected seqs [2 3], got [%d %d]", recent[0].Seq, recent[1].Seq)
	}

	// peeking must not consume
	if all := ring.Recent(0); len(all) != 3 {
		t.Errorf("Expected 3 records after peek, got %d", len(all))
	}
}

func TestRingDropsOldest(t *testing.T) {
	// one record with a 4 char name is 4 + 20 + 4 = 28 bytes
	ring := New(28 * 4)
	for i := 0; i < 10; i++ {
		if err := ring.Append(Record{Seq: uint64(i), Event: fmt.Sprintf("ev%02d", i)}); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
	if ring.Len() != 4 {
		t.Errorf("Expected 4 records held, got %d", ring.Len())
	}
	recent := ring.Recent(0)
	if len(recent) != 4 {
		t.Fatalf("Expected 4 records, got %d", len(recent))
	}
	for i, rec := range recent {
		if want := uint64(6 + i); rec.Seq != want {
			t.Errorf("record %d: expected seq %d, got %d", i, want, rec.Seq)
		}
	}
}

func TestRingRejectsOversizedRecord(t *testing.T) {
	ring := New(16)
	if err := ring.Append(Record{Event: "much-too-long-for-this-ring"}); err != ErrRecordTooLarge {
		t.Errorf("Expected ErrRecordTooLarge, got %v", err)
	}
}

func TestRingReset(t *testing.T) {
	ring := New(256)
	_ = ring.Append(Record{Seq: 1, Event: "a"})
	ring.Reset()
	if ring.Len() != 0 || len(ring.Recent(0)) != 0 {
		t.Error("Expected empty ring after reset")
	}
}
