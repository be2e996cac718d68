package suppress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_OrAggregate(t *testing.T) {
	r := New()
	a := NewToken("popover")
	b := NewToken("list")

	r.SetActive(AutoClose, a, true)
	r.SetActive(AutoClose, b, true)
	r.SetActive(AutoClose, a, false)
	assert.True(t, r.Active(AutoClose), "B still holds the channel")

	r.SetActive(AutoClose, b, false)
	assert.False(t, r.Active(AutoClose))
}

func TestRegistry_ChannelsAreIndependent(t *testing.T) {
	r := New()
	a := NewToken("modal")

	r.SetActive(ScrollGesture, a, true)

	assert.True(t, r.Active(ScrollGesture))
	assert.False(t, r.Active(AutoClose))
}

func TestRegistry_OrderIndependent(t *testing.T) {
	a := NewToken("a")
	b := NewToken("b")

	ops := []func(r *Registry){
		func(r *Registry) { r.SetActive(AutoClose, a, true) },
		func(r *Registry) { r.SetActive(AutoClose, b, true) },
		func(r *Registry) { r.SetActive(AutoClose, a, false) },
	}
	orders := [][]int{{0, 1, 2}, {1, 0, 2}, {0, 2, 1}, {2, 0, 1}}

	for _, order := range orders {
		r := New()
		for _, i := range order {
			ops[i](r)
		}
		assert.True(t, r.Active(AutoClose), "order %v", order)
	}
}

func TestRegistry_IdempotentSetAndRemove(t *testing.T) {
	r := New()
	a := NewToken("a")

	r.SetActive(AutoClose, a, true)
	r.SetActive(AutoClose, a, true)
	assert.Equal(t, 1, r.Len(AutoClose))

	r.Remove(AutoClose, a)
	r.Remove(AutoClose, a)
	r.Remove(ScrollGesture, a)
	assert.False(t, r.Active(AutoClose))
	assert.Equal(t, 0, r.Len(AutoClose))
}

func TestRegistry_InactiveTokenDoesNotSuppress(t *testing.T) {
	r := New()
	r.SetActive(AutoClose, NewToken("a"), false)

	assert.False(t, r.Active(AutoClose))
	assert.Equal(t, 1, r.Len(AutoClose))
}

func TestRegistry_RemoveAllClearsEveryChannel(t *testing.T) {
	r := New()
	a := NewToken("a")
	r.SetActive(AutoClose, a, true)
	r.SetActive(ScrollGesture, a, true)

	r.RemoveAll(a)

	for _, ch := range Channels {
		assert.False(t, r.Active(ch), ch.String())
		assert.Equal(t, 0, r.Len(ch), ch.String())
	}
}

func TestRegistry_SubscribeOnlyOnFlip(t *testing.T) {
	r := New()
	var changes []ChannelChange
	unsubscribe := r.Subscribe(func(c ChannelChange) { changes = append(changes, c) })

	a := NewToken("a")
	b := NewToken("b")
	r.SetActive(AutoClose, a, true)
	r.SetActive(AutoClose, b, true)
	r.SetActive(AutoClose, a, false)
	r.Remove(AutoClose, b)

	assert.Equal(t, []ChannelChange{
		{Channel: AutoClose, Active: true},
		{Channel: AutoClose, Active: false},
	}, changes)

	unsubscribe()
	r.SetActive(AutoClose, a, true)
	assert.Len(t, changes, 2)
}

func TestRegistry_Holders(t *testing.T) {
	r := New()
	a := NewToken("a")
	b := NewToken("b")
	r.SetActive(ScrollGesture, a, true)
	r.SetActive(ScrollGesture, b, false)

	assert.Equal(t, []Token{a}, r.Holders(ScrollGesture))
}

func TestToken_Identity(t *testing.T) {
	a := NewToken("popover")
	b := NewToken("popover")

	assert.NotEqual(t, a, b)
	assert.Equal(t, "popover", a.Owner())
	assert.Contains(t, a.String(), "popover#")
}

func TestHold_ReleaseUnblocksChannel(t *testing.T) {
	r := New()
	h := r.NewHold(AutoClose, "menu")

	h.Set(true)
	assert.True(t, r.Active(AutoClose))

	h.Release()
	h.Release()
	assert.False(t, r.Active(AutoClose))
	assert.Equal(t, 0, r.Len(AutoClose))

	// A released hold can no longer leak a vote.
	h.Set(true)
	assert.False(t, r.Active(AutoClose))
}

func TestHold_TeardownKeepsOtherHolders(t *testing.T) {
	r := New()
	menu := r.NewHold(AutoClose, "menu")
	list := r.NewHold(AutoClose, "list")
	menu.Set(true)
	list.Set(true)

	menu.Release()

	assert.True(t, r.Active(AutoClose))
	assert.Equal(t, []Token{list.Token()}, r.Holders(AutoClose))
}

func TestChannel_String(t *testing.T) {
	assert.Equal(t, "scrollGesture", ScrollGesture.String())
	assert.Equal(t, "autoClose", AutoClose.String())
	assert.Equal(t, "unknown", Channel(99).String())
}
