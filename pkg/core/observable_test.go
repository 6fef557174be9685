package core

import (
	"reflect"
	"testing"
)

func TestObservable_NotifiesEverySet(t *testing.T) {
	obs := NewObservable(1)
	var got []int
	obs.AddListener(func(v int) { got = append(got, v) })

	obs.Set(1)
	obs.Set(2)
	obs.Set(2)

	want := []int{1, 2, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("notifications = %v, want %v", got, want)
	}
	if obs.Value() != 2 {
		t.Errorf("Value() = %d, want 2", obs.Value())
	}
}

func TestObservable_SubscriptionOrder(t *testing.T) {
	obs := NewObservable("")
	var order []string
	obs.AddListener(func(string) { order = append(order, "first") })
	obs.AddListener(func(string) { order = append(order, "second") })
	obs.AddListener(func(string) { order = append(order, "third") })

	obs.Set("x")

	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestObservable_Unsubscribe(t *testing.T) {
	obs := NewObservable(0)
	calls := 0
	unsub := obs.AddListener(func(int) { calls++ })

	obs.Set(1)
	unsub()
	unsub()
	obs.Set(2)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if obs.ListenerCount() != 0 {
		t.Errorf("ListenerCount() = %d, want 0", obs.ListenerCount())
	}
}

func TestObservable_UnsubscribeDuringNotify(t *testing.T) {
	obs := NewObservable(0)
	var unsubFirst func()
	secondCalls := 0
	unsubFirst = obs.AddListener(func(int) { unsubFirst() })
	obs.AddListener(func(int) { secondCalls++ })

	obs.Set(1)
	obs.Set(2)

	if secondCalls != 2 {
		t.Errorf("second listener calls = %d, want 2", secondCalls)
	}
	if obs.ListenerCount() != 1 {
		t.Errorf("ListenerCount() = %d, want 1", obs.ListenerCount())
	}
}

func TestObservable_WithEquality(t *testing.T) {
	obs := NewObservableWithEquality(1, func(a, b int) bool { return a == b })
	calls := 0
	obs.AddListener(func(int) { calls++ })

	obs.Set(1)
	obs.Set(2)
	obs.Set(2)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestObservable_Bind(t *testing.T) {
	obs := NewObservable(7)
	var got []int
	unsub := obs.Bind(func(v int) { got = append(got, v) })
	obs.Set(8)
	unsub()
	obs.Set(9)

	want := []int{7, 8}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Bind values = %v, want %v", got, want)
	}
}

func TestObservable_Update(t *testing.T) {
	obs := NewObservable(10)
	obs.Update(func(v int) int { return v * 2 })
	if obs.Value() != 20 {
		t.Errorf("Value() = %d, want 20", obs.Value())
	}
}

func TestSignal_Emit(t *testing.T) {
	sig := NewSignal[string]()
	var got []string
	sig.AddListener(func(e string) { got = append(got, "a:"+e) })
	sig.AddListener(func(e string) { got = append(got, "b:"+e) })

	sig.Emit("start")

	want := []string{"a:start", "b:start"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("events = %v, want %v", got, want)
	}
}

func TestNotifier(t *testing.T) {
	n := NewNotifier()
	calls := 0
	unsub := n.AddListener(func() { calls++ })
	n.Notify()
	unsub()
	n.Notify()
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestSubscriptions_Dispose(t *testing.T) {
	a := NewObservable(0)
	b := NewNotifier()
	var subs Subscriptions
	subs.Add(a.AddListener(func(int) {}), b.AddListener(func() {}))

	subs.Dispose()
	subs.Dispose()

	if a.ListenerCount() != 0 || b.ListenerCount() != 0 {
		t.Errorf("listeners left after Dispose: %d, %d", a.ListenerCount(), b.ListenerCount())
	}
}
