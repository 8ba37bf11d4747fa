package handler

import (
	"net/http"
	"strings"

	"github.com/Amank-07/FitTracker/internal/database"
	model "github.com/Amank-07/FitTracker/internal/models"
	"github.com/Amank-07/FitTracker/internal/scanner"
	"github.com/Amank-07/FitTracker/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "email and password are required")
		return
	}

	ctx := r.Context()
	var hashedPassword string

	row := database.DB.QueryRow(ctx, `
		SELECT id, name, email, avatar, age, weight, height, fitness_goal,
			nutrition_goals, fitness_goals,
			join_date, created_at, updated_at
		FROM users WHERE LOWER(email)=LOWER($1) AND deleted_at IS NULL`,
		req.Email,
	)
	user, err := scanner.ScanUserProfile(row)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	err = database.DB.QueryRow(ctx,
		`SELECT password_hash FROM users WHERE id=$1`, user.ID,
	).Scan(&hashedPassword)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(ctx, user.ID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session: "+err.Error())
		return
	}

	// Prévenir les abonnés (cache local, assistant) du changement d'identité
	Sessions.SignIn(user)

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// Register (alias de Signup pour correspondre à l'API du client)
func Register(w http.ResponseWriter, r *http.Request) {
	Signup(w, r)
}

func Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "name, email and password are required")
		return
	}
	if len(req.Password) < 6 {
		utils.Error(w, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	ctx := r.Context()

	var emailTaken bool
	if err := database.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email)=LOWER($1) AND deleted_at IS NULL)`,
		req.Email,
	).Scan(&emailTaken); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not check email: "+err.Error())
		return
	}
	if emailTaken {
		utils.Error(w, http.StatusConflict, "email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not hash password")
		return
	}

	var user model.UserProfile
	err = database.DB.QueryRow(ctx, `
		INSERT INTO users(name, email, password_hash, avatar, age, weight, height, fitness_goal, join_date, created_at, updated_at)
		VALUES($1, $2, $3, '', 0, 0, 0, '', NOW(), NOW(), NOW())
		RETURNING id, name, email, avatar, age, weight, height, fitness_goal, join_date, created_at, updated_at`,
		req.Name, strings.TrimSpace(req.Email), string(hashed),
	).Scan(&user.ID, &user.Name, &user.Email, &user.Avatar,
		&user.Age, &user.Weight, &user.Height, &user.FitnessGoal,
		&user.JoinDate, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create user: "+err.Error())
		return
	}

	// L'utilisateur se crée lui-même
	if _, err := database.DB.Exec(ctx,
		`UPDATE users SET created_by=$1 WHERE id=$1`, user.ID,
	); err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update created_by: "+err.Error())
		return
	}

	// Auto-login après inscription
	ip, userAgent := utils.ExtractIPAndUserAgent(r)
	token, err := utils.CreateSession(ctx, user.ID, ip, userAgent)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create session: "+err.Error())
		return
	}

	Sessions.SignIn(&user)

	utils.Success(w, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

func Logout(w http.ResponseWriter, r *http.Request) {
	token, err := utils.GetToken(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "missing token")
		return
	}

	if err := utils.InvalidateSession(r.Context(), token); err != nil {
		utils.Error(w, http.StatusNotFound, "session not found or already logged out")
		return
	}

	Sessions.SignOut()

	utils.Success(w, map[string]bool{"success": true})
}

// ResetPassword vérifie l'email et déclenchera l'envoi du lien de
// réinitialisation. La réponse est identique que l'email existe ou non.
func ResetPassword(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if payload.Email == "" {
		utils.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	var userExists bool
	err := database.DB.QueryRow(r.Context(),
		`SELECT EXISTS(SELECT 1 FROM users WHERE LOWER(email)=LOWER($1) AND deleted_at IS NULL)`,
		payload.Email,
	).Scan(&userExists)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not check user: "+err.Error())
		return
	}

	if !userExists {
		// réponse identique que l'email existe ou non
		utils.Success(w, map[string]bool{"success": true})
		return
	}

	// TODO: créer une table password_reset_tokens et envoyer l'email
	utils.Success(w, map[string]bool{"success": true})
}
