package model

import "time"

// Rôles des messages de conversation
const (
	ChatRoleUser = "user"
	ChatRoleBot  = "bot"
)

// ChatMessage un message du transcript. Séquence ordonnée, append-only sauf
// purge complète de l'historique.
type ChatMessage struct {
	ID        string    `json:"id"` // dérivé du timestamp
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
