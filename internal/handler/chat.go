package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/Amank-07/FitTracker/internal/assistant"
	"github.com/Amank-07/FitTracker/internal/cache"
	"github.com/Amank-07/FitTracker/internal/middleware"
	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/Amank-07/FitTracker/internal/utils"
)

// SendChatMessage envoie un message à l'assistant et retourne sa réponse.
// Si l'assistant distant est désactivé ou en erreur, la réponse vient des
// règles locales par mots-clés. L'échange complet est ajouté à l'historique.
func SendChatMessage(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	payload.Message = strings.TrimSpace(payload.Message)
	if payload.Message == "" {
		utils.Error(w, http.StatusBadRequest, "message is required")
		return
	}

	var history []model.ChatMessage
	Cache.Load(cache.KindChatHistory, user.ID, &history)

	reply, fromFallback := converse(r, payload.Message, &user, history)

	now := time.Now()
	userMsg := model.ChatMessage{
		ID:        utils.GenerateEntryID(),
		Role:      model.ChatRoleUser,
		Content:   payload.Message,
		Timestamp: now,
	}
	botMsg := model.ChatMessage{
		ID:        utils.GenerateEntryID() + "-bot",
		Role:      model.ChatRoleBot,
		Content:   reply,
		Timestamp: now,
	}
	history = append(history, userMsg, botMsg)

	if err := Cache.Save(cache.KindChatHistory, user.ID, history); err != nil {
		utils.LogError("could not save chat history: %v", err)
	}

	utils.Success(w, map[string]interface{}{
		"reply":    botMsg,
		"fallback": fromFallback,
	})
}

// converse tente l'assistant distant puis retombe sur les règles locales
func converse(r *http.Request, message string, user *model.UserProfile, history []model.ChatMessage) (string, bool) {
	if Assistant == nil || !Assistant.Enabled() {
		return assistant.FallbackReply(message, user), true
	}

	reply, err := Assistant.Converse(r.Context(), message, user, history)
	if err != nil {
		utils.LogError("assistant unavailable, using fallback: %v", err)
		return assistant.FallbackReply(message, user), true
	}

	return reply, false
}

// GetChatHistory transcript complet, dans l'ordre d'insertion
func GetChatHistory(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	var history []model.ChatMessage
	Cache.Load(cache.KindChatHistory, user.ID, &history)
	if history == nil {
		history = []model.ChatMessage{}
	}

	utils.Success(w, history)
}

// ClearChatHistory purge le transcript
func ClearChatHistory(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, err.Error())
		return
	}

	if err := Cache.Clear(cache.KindChatHistory, user.ID); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not clear chat history: "+err.Error())
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}
