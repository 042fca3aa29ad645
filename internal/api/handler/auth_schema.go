package handler

import "github.com/caesarkutaa/AgreeLink/internal/core/ports"

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=20,password"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Message string            `json:"message"`
	Data    ports.UserSummary `json:"data"`
}

type loginData struct {
	AccessToken string            `json:"access_token"`
	User        ports.UserSummary `json:"user"`
}

type loginResponse struct {
	Message string    `json:"message"`
	Data    loginData `json:"data"`
}
