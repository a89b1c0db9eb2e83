package http

import (
	"textbook-rag/internal/auth"
	"textbook-rag/internal/model"
	"textbook-rag/pkg/response"
)

// --- Request DTOs ---

type signUpReq struct {
	Email              string   `json:"email" binding:"required" example:"reader@example.com"`
	Password           string   `json:"password" binding:"required" example:"correct-horse"`
	Name               string   `json:"name,omitempty" example:"Ada"`
	ProgrammingLevel   string   `json:"programming_level" binding:"required" example:"beginner"`
	HardwareBackground string   `json:"hardware_background" binding:"required" example:"none"`
	LearningGoals      []string `json:"learning_goals" binding:"required" example:"academic"`
}

func (r signUpReq) toInput() auth.SignUpInput {
	return auth.SignUpInput{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Profile: model.UserProfile{
			ProgrammingLevel:   r.ProgrammingLevel,
			HardwareBackground: r.HardwareBackground,
			LearningGoals:      r.LearningGoals,
		},
	}
}

type signInReq struct {
	Email    string `json:"email" binding:"required" example:"reader@example.com"`
	Password string `json:"password" binding:"required" example:"correct-horse"`
}

func (r signInReq) toInput() auth.SignInInput {
	return auth.SignInInput{Email: r.Email, Password: r.Password}
}

// --- Response DTOs ---

type userResp struct {
	ID                 string   `json:"id"`
	Email              string   `json:"email"`
	Name               string   `json:"name,omitempty"`
	ProgrammingLevel   string   `json:"programming_level"`
	HardwareBackground string   `json:"hardware_background"`
	LearningGoals      []string `json:"learning_goals"`
}

type authResp struct {
	User      userResp          `json:"user"`
	Message   string            `json:"message"`
	Token     string            `json:"token"`
	ExpiresAt response.DateTime `json:"expires_at"`
}

type sessionResp struct {
	User userResp `json:"user"`
}

type signOutResp struct {
	Success bool `json:"success"`
}

func newUserResp(u auth.User) userResp {
	goals := u.Profile.LearningGoals
	if goals == nil {
		goals = []string{}
	}
	return userResp{
		ID:                 u.ID,
		Email:              u.Email,
		Name:               u.Name,
		ProgrammingLevel:   u.Profile.ProgrammingLevel,
		HardwareBackground: u.Profile.HardwareBackground,
		LearningGoals:      goals,
	}
}

func (h *handler) newAuthResp(out auth.AuthOutput, message string) authResp {
	return authResp{
		User:      newUserResp(out.User),
		Message:   message,
		Token:     out.Token,
		ExpiresAt: response.DateTime(out.ExpiresAt),
	}
}
