// Package session diffuse l'identité courante aux composants abonnés.
// L'identité n'est jamais exposée via un global: les handlers la reçoivent
// par le contexte de requête, le provider ne sert qu'aux abonnements.
package session

import (
	"sync"

	model "github.com/Amank-07/FitTracker/internal/models"
)

// Callback reçoit l'identité signée, ou nil à la déconnexion
type Callback func(user *model.UserProfile)

type Provider struct {
	mu      sync.Mutex
	subs    map[int]Callback
	nextID  int
	current *model.UserProfile
}

func NewProvider() *Provider {
	return &Provider{subs: map[int]Callback{}}
}

// Subscribe enregistre un callback et le déclenche immédiatement avec
// l'identité courante (vérification initiale). Retourne la fonction de
// désabonnement.
func (p *Provider) Subscribe(cb Callback) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = cb
	current := p.current
	p.mu.Unlock()

	cb(current)

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

// SignIn diffuse la nouvelle identité à tous les abonnés
func (p *Provider) SignIn(user *model.UserProfile) {
	p.broadcast(user)
}

// SignOut diffuse nil à tous les abonnés
func (p *Provider) SignOut() {
	p.broadcast(nil)
}

// Current retourne la dernière identité diffusée
func (p *Provider) Current() *model.UserProfile {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Provider) broadcast(user *model.UserProfile) {
	p.mu.Lock()
	p.current = user
	callbacks := make([]Callback, 0, len(p.subs))
	for _, cb := range p.subs {
		callbacks = append(callbacks, cb)
	}
	p.mu.Unlock()

	for _, cb := range callbacks {
		cb(user)
	}
}
