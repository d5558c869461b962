package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/FernandoRe0309/techstore/internal/service"
)

type Auth struct {
	Svc service.AuthService
}

func NewAuth(svc service.AuthService) *Auth { return &Auth{Svc: svc} }

func (h *Auth) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	s := sessions.Default(c)
	if username == "" || email == "" || password == "" {
		setFlash(s, "Completa todos los campos")
		_ = s.Save()
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if err := h.Svc.Register(username, email, password); err != nil {
		if errors.Is(err, service.ErrDuplicateCredential) {
			setFlash(s, "Error o email duplicado")
		} else {
			log.Printf("register: %v", err)
			setFlash(s, "No se pudo completar el registro")
		}
		_ = s.Save()
		c.Redirect(http.StatusFound, "/register")
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (h *Auth) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	s := sessions.Default(c)
	u, err := h.Svc.Login(email, password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			log.Printf("login: %v", err)
		}
		// Same message for unknown email, wrong password and backend
		// trouble; nothing here distinguishes accounts.
		setFlash(s, "Credenciales incorrectas")
		_ = s.Save()
		c.Redirect(http.StatusFound, "/login")
		return
	}

	s.Set(keyUserID, u.ID)
	s.Set(keyUsername, u.Username)
	if err := s.Save(); err != nil {
		log.Printf("login: session save: %v", err)
		c.String(http.StatusInternalServerError, "login failed")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// Logout drops the whole session, cart included.
func (h *Auth) Logout(c *gin.Context) {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{Path: "/", MaxAge: -1})
	_ = s.Save()
	c.Redirect(http.StatusFound, "/")
}
