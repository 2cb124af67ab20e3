package models

type Admin struct {
	ID        int    `json:"id"`
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	SenhaHash string `json:"-"`
	CreatedAt string `json:"created_at,omitempty"`
}

type LoginInput struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type AdminInput struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}
