package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	intconfig "poolside/internal/config"
)

// StaffUser mirrors the staff table row returned on login.
type StaffUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_payload", "payload inválido", nil)
		return
	}

	var (
		user         StaffUser
		passwordHash string
	)
	err := intconfig.DB.QueryRow(`
        SELECT id, name, email, password_hash, role
        FROM staff
        WHERE email = ?
    `, req.Email).Scan(&user.ID, &user.Name, &user.Email, &passwordHash, &user.Role)
	if err != nil {
		if err == sql.ErrNoRows {
			respondError(c, http.StatusUnauthorized, "bad_credentials", "email o contraseña incorrectos", nil)
		} else {
			respondError(c, http.StatusInternalServerError, "internal_error", "no se pudo consultar el usuario", nil)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		respondError(c, http.StatusUnauthorized, "bad_credentials", "email o contraseña incorrectos", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "no se pudo generar el token", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": tokenString, "user": user})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_payload", "payload inválido", nil)
		return
	}
	if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
		respondError(c, http.StatusBadRequest, "bad_payload", "nombre, email y contraseña (mínimo 8 caracteres) son requeridos", nil)
		return
	}

	var exists int
	if err := intconfig.DB.QueryRow(`SELECT COUNT(*) FROM staff WHERE email = ?`, req.Email).Scan(&exists); err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "no se pudo verificar el usuario", nil)
		return
	}
	if exists > 0 {
		respondError(c, http.StatusBadRequest, "duplicate_email", "el email ya está registrado", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "no se pudo procesar la contraseña", nil)
		return
	}

	res, err := intconfig.DB.Exec(`
        INSERT INTO staff (name, email, password_hash, role, created_at, updated_at)
        VALUES (?, ?, ?, 'admin', NOW(), NOW())
    `, req.Name, req.Email, string(hash))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "no se pudo guardar el usuario", nil)
		return
	}
	id, _ := res.LastInsertId()

	c.JSON(http.StatusCreated, gin.H{
		"message": "registro exitoso",
		"user":    StaffUser{ID: id, Name: req.Name, Email: req.Email, Role: "admin"},
	})
}
