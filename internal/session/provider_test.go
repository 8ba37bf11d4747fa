package session

import (
	"testing"

	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSubscribe_FiresImmediately(t *testing.T) {
	p := NewProvider()

	var got *model.UserProfile
	called := false
	p.Subscribe(func(u *model.UserProfile) {
		called = true
		got = u
	})

	assert.True(t, called, "le callback doit être déclenché à l'abonnement")
	assert.Nil(t, got)
}

func TestSignInSignOut_Broadcast(t *testing.T) {
	p := NewProvider()

	var events []*model.UserProfile
	p.Subscribe(func(u *model.UserProfile) {
		events = append(events, u)
	})

	user := &model.UserProfile{ID: "u1", Name: "Alice"}
	p.SignIn(user)
	p.SignOut()

	assert.Len(t, events, 3) // abonnement, signin, signout
	assert.Equal(t, user, events[1])
	assert.Nil(t, events[2])
}

func TestCurrent_TracksLastBroadcast(t *testing.T) {
	p := NewProvider()
	assert.Nil(t, p.Current())

	user := &model.UserProfile{ID: "u1"}
	p.SignIn(user)
	assert.Equal(t, user, p.Current())

	p.SignOut()
	assert.Nil(t, p.Current())
}

func TestUnsubscribe_StopsDelivery(t *testing.T) {
	p := NewProvider()

	count := 0
	unsubscribe := p.Subscribe(func(*model.UserProfile) { count++ })
	assert.Equal(t, 1, count)

	unsubscribe()
	p.SignIn(&model.UserProfile{ID: "u1"})
	assert.Equal(t, 1, count, "plus d'événements après désabonnement")
}

func TestMultipleSubscribers(t *testing.T) {
	p := NewProvider()

	first, second := 0, 0
	p.Subscribe(func(*model.UserProfile) { first++ })
	p.Subscribe(func(*model.UserProfile) { second++ })

	p.SignIn(&model.UserProfile{ID: "u1"})

	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
}
