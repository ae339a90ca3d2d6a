package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/ICE2311/expense-tracker/src/errs"
	"github.com/ICE2311/expense-tracker/src/models"
	"github.com/ICE2311/expense-tracker/src/util"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	CreateUser(ctx context.Context, req models.RegisterRequest, hashedPassword string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

func Register(store UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode register request body: %v", err)
			RespondError(w, http.StatusBadRequest, "Invalid request")
			return
		}

		if ve := util.ValidateRegister(&req); ve != nil {
			log.Printf("ERROR: Register validation failed - Email: %s: %v", req.Email, ve)
			RespondValidationError(w, ve)
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("ERROR: Failed to hash password for %s: %v", req.Email, err)
			RespondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		user, err := store.CreateUser(r.Context(), req, string(hashedPassword))
		if err != nil {
			if errors.Is(err, errs.ErrEmailTaken) {
				log.Printf("ERROR: Registration failed - email already exists - Email: %s", req.Email)
				RespondError(w, http.StatusBadRequest, "User already exists")
				return
			}
			log.Printf("ERROR: Failed to create user %s: %v", req.Email, err)
			RespondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		log.Printf("INFO: Successful registration - Email: %s, ID: %s", user.Email, user.ID)
		RespondJSON(w, http.StatusCreated, map[string]interface{}{
			"user": map[string]string{
				"id":    user.ID,
				"email": user.Email,
				"name":  user.Name,
			},
		})
	}
}

func Login(store UserStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode login request body: %v", err)
			RespondError(w, http.StatusBadRequest, "Invalid request")
			return
		}

		if ve := util.ValidateLogin(&req); ve != nil {
			RespondValidationError(w, ve)
			return
		}

		user, err := store.GetUserByEmail(r.Context(), req.Email)
		if err != nil {
			if errors.Is(err, errs.ErrUserNotFound) {
				log.Printf("ERROR: Login failed - no such user - Email: %s", req.Email)
				RespondError(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			log.Printf("ERROR: Failed to look up user %s: %v", req.Email, err)
			RespondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			log.Printf("ERROR: Invalid password attempt for %s from IP %s", req.Email, r.RemoteAddr)
			RespondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		tokenString, err := generateToken(user)
		if err != nil {
			log.Printf("ERROR: Failed to generate JWT token for %s: %v", user.Email, err)
			RespondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		log.Printf("INFO: Successful login - Email: %s, ID: %s", user.Email, user.ID)
		RespondJSON(w, http.StatusOK, map[string]string{"token": tokenString})
	}
}

func generateToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"name":     user.Name,
		"currency": user.Currency,
		"exp":      time.Now().Add(time.Hour * 168).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
