package bridge

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/ro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type session struct{ name string }

type state int

const (
	stateIdle state = iota
	stateBusy
)

func (s state) Valid() bool { return s == stateIdle || s == stateBusy }

type update struct {
	Item  string
	State state
}

var (
	evAdded   = Single[string]("added", 1)
	evRemoved = Single[string]("removed", 1)
	evPinged  = Signal("pinged", 1)
	evState   = SingleEnum[state]("state", 1)
	evUpdated = Event[update]{
		Name: "updated",
		Skip: 1,
		Decode: func(f Frame) (update, error) {
			item, err := Arg[string](f, 0)
			if err != nil {
				return update{}, err
			}
			st, err := EnumArg[state](f, 1)
			if err != nil {
				return update{}, err
			}
			return update{Item: item, State: st}, nil
		},
	}
)

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(DefaultOptions(), nil)
}

func TestStreamDeliversEveryInvocationInOrder(t *testing.T) {
	d := newTestDispatcher()
	sender := &session{"s"}
	rec := record(t, Stream(d, evAdded))

	const n = 50
	want := make([]string, 0, n)
	for i := 0; i < n; i++ {
		item := fmt.Sprintf("item-%d", i)
		want = append(want, item)
		d.Invoke("added", sender, item)
	}

	require.Eventually(t, func() bool { return len(rec.Values()) == n }, time.Second, time.Millisecond)
	assert.Equal(t, want, rec.Values())
	assert.NoError(t, rec.Err())
	assert.False(t, rec.Completed())
}

func TestStreamIsMulticast(t *testing.T) {
	d := newTestDispatcher()
	sender := &session{"s"}
	stream := Stream(d, evAdded)
	first := record(t, stream)
	second := record(t, stream)

	for _, item := range []string{"a", "b", "c"} {
		d.Invoke("added", sender, item)
	}

	want := []string{"a", "b", "c"}
	require.Eventually(t, func() bool { return len(first.Values()) == 3 && len(second.Values()) == 3 }, time.Second, time.Millisecond)
	assert.Equal(t, want, first.Values())
	assert.Equal(t, want, second.Values())
}

func TestSubscribersOnlySeeLaterInvocations(t *testing.T) {
	d := newTestDispatcher()
	sender := &session{"s"}
	stream := Stream(d, evAdded)

	d.Invoke("added", sender, "before")
	rec := record(t, stream)
	d.Invoke("added", sender, "after")

	require.Eventually(t, func() bool { return len(rec.Values()) == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, []string{"after"}, rec.Values())
}

func TestDemultiplexesSharedDispatcher(t *testing.T) {
	d := newTestDispatcher()
	sender := &session{"s"}
	added := record(t, Stream(d, evAdded))
	removed := record(t, Stream(d, evRemoved))
	pinged := record(t, Stream(d, evPinged))

	d.Invoke("added", sender, "a1")
	d.Invoke("removed", sender, "r1")
	d.Invoke("pinged", sender)
	d.Invoke("added", sender, "a2")
	d.Invoke("removed", sender, "r2")
	d.Invoke("pinged", sender)

	require.Eventually(t, func() bool {
		return len(added.Values()) == 2 && len(removed.Values()) == 2 && len(pinged.Values()) == 2
	}, time.Second, time.Millisecond)
	assert.Equal(t, []string{"a1", "a2"}, added.Values())
	assert.Equal(t, []string{"r1", "r2"}, removed.Values())
}

func TestTypeMismatchFailsSubscriber(t *testing.T) {
	d := newTestDispatcher()
	sender := &session{"s"}
	added := record(t, Stream(d, evAdded))
	removed := record(t, Stream(d, evRemoved))

	d.Invoke("added", sender, "ok")
	d.Invoke("added", sender, 42)
	d.Invoke("added", sender, "lost")
	d.Invoke("removed", sender, "still-flowing")

	require.Eventually(t, func() bool { return added.Err() != nil }, time.Second, time.Millisecond)
	assert.Equal(t, []string{"ok"}, added.Values())

	var tm *TypeMismatchError
	require.ErrorAs(t, added.Err(), &tm)
	assert.Equal(t, "added", tm.Event)
	assert.Equal(t, 1, tm.Position)
	assert.Equal(t, "string", tm.Expected)
	assert.Equal(t, "int", tm.Got)
	assert.ErrorIs(t, added.Err(), ErrTypeMismatch)

	require.Eventually(t, func() bool { return len(removed.Values()) == 1 }, time.Second, time.Millisecond)
	assert.NoError(t, removed.Err())

	// a fresh subscription keeps working
	again := record(t, Stream(d, evAdded))
	d.Invoke("added", sender, "new")
	require.Eventually(t, func() bool { return len(again.Values()) == 1 }, time.Second, time.Millisecond)
}

func TestMissingArgumentIsTypeMismatch(t *testing.T) {
	d := newTestDispatcher()
	rec := record(t, Stream(d, evAdded))
	d.Invoke("added", &session{"s"})

	require.Eventually(t, func() bool { return rec.Err() != nil }, time.Second, time.Millisecond)
	var tm *TypeMismatchError
	require.ErrorAs(t, rec.Err(), &tm)
	assert.Equal(t, "<missing>", tm.Got)
	assert.Equal(t, 1, tm.Position)
}

func TestEnumDecoding(t *testing.T) {
	d := newTestDispatcher()
	sender := &session{"s"}
	states := record(t, Stream(d, evState))
	updates := record(t, Stream(d, evUpdated))

	d.Invoke("state", sender, 1)
	d.Invoke("updated", sender, "x", 0)
	d.Invoke("state", sender, 7)

	require.Eventually(t, func() bool { return states.Err() != nil }, time.Second, time.Millisecond)
	assert.Equal(t, []state{stateBusy}, states.Values())

	var re *EnumRangeError
	require.ErrorAs(t, states.Err(), &re)
	assert.Equal(t, 7, re.Value)
	assert.Equal(t, 1, re.Position)
	assert.True(t, errors.Is(states.Err(), ErrEnumOutOfRange))
	assert.True(t, errors.Is(states.Err(), ErrTypeMismatch))

	require.Eventually(t, func() bool { return len(updates.Values()) == 1 }, time.Second, time.Millisecond)
	assert.Equal(t, update{Item: "x", State: stateIdle}, updates.Values()[0])
}

func TestEnumArgRejectsNonInt(t *testing.T) {
	_, err := EnumArg[state](NewFrame("state", 1, &session{}, "busy"), 0)
	var tm *TypeMismatchError
	require.ErrorAs(t, err, &tm)
	assert.Contains(t, tm.Expected, "state")
}

func TestFrameLen(t *testing.T) {
	assert.Equal(t, 2, NewFrame("e", 1, "sender", "a", "b").Len())
	assert.Equal(t, 0, NewFrame("e", 2, "sender").Len())
}

func TestRegistrationTable(t *testing.T) {
	d := newTestDispatcher()
	assert.False(t, d.Registered("added"))

	Stream(d, evAdded)
	Stream(d, evAdded)
	assert.True(t, d.Registered("added"))
	assert.ElementsMatch(t, []string{"added"}, d.Events())

	d.Invoke("added", &session{}, "x")
	d.Invoke("nobody-listens", &session{})
	stats := d.Stats()
	assert.Equal(t, uint64(2), stats.Published)
	assert.Equal(t, uint64(1), stats.Unregistered)
}

func TestRecentTrace(t *testing.T) {
	d := newTestDispatcher()
	for i := 0; i < 5; i++ {
		d.Invoke("added", &session{}, fmt.Sprint(i))
	}
	recent := d.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, uint64(4), recent[0].Seq)
	assert.Equal(t, uint64(5), recent[1].Seq)
	assert.Equal(t, "added", recent[1].Event)
	assert.Equal(t, int16(2), recent[1].Arity)

	off := NewDispatcher(Options{}, nil)
	off.Invoke("added", &session{}, "x")
	assert.Nil(t, off.Recent(10))
}

func TestReleaseCompletesStreams(t *testing.T) {
	d := newTestDispatcher()
	var detached atomic.Int32
	d.detach = func() { detached.Add(1) }
	rec := record(t, Stream(d, evAdded))

	d.Release()
	d.Release()
	d.Invoke("added", &session{}, "late")

	require.Eventually(t, rec.Completed, time.Second, time.Millisecond)
	assert.Empty(t, rec.Values())
	assert.Equal(t, int32(1), detached.Load())
	assert.Equal(t, uint64(1), d.Stats().Dropped)

	after := record(t, Stream(d, evAdded))
	require.Eventually(t, func() bool { return after.Err() != nil }, time.Second, time.Millisecond)
	assert.ErrorIs(t, after.Err(), ErrReleased)
}

func TestReleaseFromSubscriber(t *testing.T) {
	d := newTestDispatcher()
	var seen atomic.Int32
	var completed atomic.Bool
	sub := Stream(d, evAdded).Subscribe(ro.NewObserver(
		func(string) {
			seen.Add(1)
			d.Release()
		},
		func(error) {},
		func() { completed.Store(true) },
	))
	t.Cleanup(sub.Unsubscribe)
	other := record(t, Stream(d, evRemoved))

	returned := make(chan struct{})
	go func() {
		d.Invoke("added", &session{}, "last")
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Invoke did not return after Release from a subscriber")
	}
	require.Eventually(t, func() bool { return completed.Load() && other.Completed() }, time.Second, time.Millisecond)
	assert.Equal(t, int32(1), seen.Load())
	assert.True(t, d.Released())

	d.Invoke("added", &session{}, "dropped")
	assert.Equal(t, int32(1), seen.Load())
	assert.Equal(t, uint64(1), d.Stats().Dropped)
}

func TestDispatcherIDsAreDistinct(t *testing.T) {
	a, b := newTestDispatcher(), newTestDispatcher()
	assert.NotEqual(t, uuid.Nil, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestConcurrentInvokersLoseNothing(t *testing.T) {
	d := newTestDispatcher()
	rec := record(t, Stream(d, evAdded))

	const workers, perWorker = 8, 100
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			sender := &session{fmt.Sprint(w)}
			for i := 0; i < perWorker; i++ {
				d.Invoke("added", sender, fmt.Sprintf("%d-%d", w, i))
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.Eventually(t, func() bool { return len(rec.Values()) == workers*perWorker }, 2*time.Second, time.Millisecond)
	seen := make(map[string]bool, workers*perWorker)
	for _, v := range rec.Values() {
		assert.False(t, seen[v], "duplicate %s", v)
		seen[v] = true
	}
}
