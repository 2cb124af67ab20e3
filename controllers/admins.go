package controllers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"jornada-backend/models"
	"jornada-backend/utils"

	"github.com/gorilla/mux"
)

type AdminController struct{}

func (c *AdminController) List(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.VerifyToken(r); err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}

		rows, err := db.Query("SELECT id, nome, email, created_at FROM admins ORDER BY id ASC")
		if err != nil {
			log.Println("Erro ao listar admins:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao listar administradores"})
			return
		}
		defer rows.Close()

		admins := []models.Admin{}
		for rows.Next() {
			var a models.Admin
			if err := rows.Scan(&a.ID, &a.Nome, &a.Email, &a.CreatedAt); err != nil {
				log.Println("Erro ao ler admin:", err)
				continue
			}
			admins = append(admins, a)
		}

		utils.ResponseJSON(w, admins)
	}
}

func (c *AdminController) Create(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.VerifyToken(r); err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}

		var input models.AdminInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Corpo da requisição inválido"})
			return
		}

		nome := strings.TrimSpace(input.Nome)
		email := strings.TrimSpace(input.Email)
		if nome == "" || email == "" || strings.TrimSpace(input.Senha) == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Nome, e-mail e senha são obrigatórios"})
			return
		}
		if len(input.Senha) < 6 {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "A senha deve ter no mínimo 6 caracteres"})
			return
		}

		var existingID int
		err := db.QueryRow("SELECT id FROM admins WHERE email = ?", email).Scan(&existingID)
		if err == nil {
			utils.RespondWithError(w, http.StatusConflict, models.Error{Message: "Já existe um administrador com este e-mail"})
			return
		}
		if err != sql.ErrNoRows {
			log.Println("Erro ao verificar e-mail:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao criar administrador"})
			return
		}

		hash, err := utils.HashPassword(input.Senha)
		if err != nil {
			log.Println("Erro ao gerar hash de senha:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao criar administrador"})
			return
		}

		result, err := db.Exec(
			"INSERT INTO admins (nome, email, senha_hash, created_at) VALUES (?, ?, ?, ?)",
			nome, email, hash, time.Now().Format("2006-01-02 15:04:05"),
		)
		if err != nil {
			log.Println("Erro ao inserir admin:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao criar administrador"})
			return
		}

		id, _ := result.LastInsertId()
		w.WriteHeader(http.StatusCreated)
		utils.ResponseJSON(w, map[string]interface{}{
			"id":      id,
			"nome":    nome,
			"email":   email,
			"message": "Administrador criado com sucesso",
		})
	}
}

func (c *AdminController) Update(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.VerifyToken(r); err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}

		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "ID inválido"})
			return
		}

		var input models.AdminInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Corpo da requisição inválido"})
			return
		}

		nome := strings.TrimSpace(input.Nome)
		email := strings.TrimSpace(input.Email)
		if nome == "" || email == "" {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Nome e e-mail são obrigatórios"})
			return
		}

		var existingID int
		err = db.QueryRow("SELECT id FROM admins WHERE id = ?", id).Scan(&existingID)
		if err == sql.ErrNoRows {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Administrador não encontrado"})
			return
		}
		if err != nil {
			log.Println("Erro ao buscar admin:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao atualizar administrador"})
			return
		}

		var dupID int
		err = db.QueryRow("SELECT id FROM admins WHERE email = ? AND id != ?", email, id).Scan(&dupID)
		if err == nil {
			utils.RespondWithError(w, http.StatusConflict, models.Error{Message: "Já existe outro administrador com este e-mail"})
			return
		}
		if err != sql.ErrNoRows {
			log.Println("Erro ao verificar e-mail:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao atualizar administrador"})
			return
		}

		if strings.TrimSpace(input.Senha) != "" {
			if len(input.Senha) < 6 {
				utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "A senha deve ter no mínimo 6 caracteres"})
				return
			}
			hash, err := utils.HashPassword(input.Senha)
			if err != nil {
				log.Println("Erro ao gerar hash de senha:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao atualizar administrador"})
				return
			}
			_, err = db.Exec("UPDATE admins SET nome = ?, email = ?, senha_hash = ? WHERE id = ?", nome, email, hash, id)
			if err != nil {
				log.Println("Erro ao atualizar admin:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao atualizar administrador"})
				return
			}
		} else {
			_, err = db.Exec("UPDATE admins SET nome = ?, email = ? WHERE id = ?", nome, email, id)
			if err != nil {
				log.Println("Erro ao atualizar admin:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao atualizar administrador"})
				return
			}
		}

		utils.ResponseJSON(w, map[string]string{"message": "Administrador atualizado com sucesso"})
	}
}

func (c *AdminController) Delete(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adminID, err := utils.VerifyToken(r)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}

		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "ID inválido"})
			return
		}

		if id == adminID {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Você não pode excluir sua própria conta"})
			return
		}

		var existingID int
		err = db.QueryRow("SELECT id FROM admins WHERE id = ?", id).Scan(&existingID)
		if err == sql.ErrNoRows {
			utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Administrador não encontrado"})
			return
		}
		if err != nil {
			log.Println("Erro ao buscar admin:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao excluir administrador"})
			return
		}

		if _, err := db.Exec("DELETE FROM admins WHERE id = ?", id); err != nil {
			log.Println("Erro ao excluir admin:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao excluir administrador"})
			return
		}

		utils.ResponseJSON(w, map[string]string{"message": "Administrador excluído com sucesso"})
	}
}
