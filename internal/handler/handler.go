package handler

import (
	"net/http"

	"github.com/Amank-07/FitTracker/internal/utils"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
