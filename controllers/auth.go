package controllers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"jornada-backend/models"
	"jornada-backend/utils"
)

type AuthController struct{}

func (c *AuthController) Login(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.LoginInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Corpo da requisição inválido"})
			return
		}

		if input.Email == "" || input.Senha == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "E-mail e senha são obrigatórios"})
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))

		var admin models.Admin
		err := db.QueryRow(
			"SELECT id, email, senha_hash, nome FROM admins WHERE email = ?", email,
		).Scan(&admin.ID, &admin.Email, &admin.SenhaHash, &admin.Nome)
		if err == sql.ErrNoRows {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Credenciais inválidas"})
			return
		}
		if err != nil {
			log.Println("Erro ao buscar admin:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno ao autenticar"})
			return
		}

		if !utils.ComparePasswords(admin.SenhaHash, []byte(input.Senha)) {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: "Credenciais inválidas"})
			return
		}

		token, err := utils.GenerateAdminToken(admin)
		if err != nil {
			log.Println("Erro ao gerar token:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno ao autenticar"})
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{
			"token": token,
			"admin": map[string]interface{}{
				"id":    admin.ID,
				"nome":  admin.Nome,
				"email": admin.Email,
			},
		})
	}
}
