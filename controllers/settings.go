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

type SettingsController struct{}

var allowedSettingKeys = map[string]bool{
	"event_name":     true,
	"event_date":     true,
	"event_location": true,
	"event_workload": true,
	"vagas_dia1":     true,
	"vagas_dia2":     true,
}

// Get is public: the registration form needs the event details and limits.
func (c *SettingsController) Get(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := db.Query("SELECT `key`, `value` FROM settings")
		if err != nil {
			log.Println("Erro ao buscar configurações:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno ao buscar configurações"})
			return
		}
		defer rows.Close()

		settings := map[string]string{}
		for rows.Next() {
			var key, value string
			if err := rows.Scan(&key, &value); err != nil {
				log.Println("Erro ao ler configuração:", err)
				continue
			}
			settings[key] = value
		}

		utils.ResponseJSON(w, settings)
	}
}

func (c *SettingsController) Update(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.VerifyToken(r); err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}

		var input map[string]string
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input == nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Dados inválidos"})
			return
		}

		for key, value := range input {
			value = strings.TrimSpace(value)
			if !allowedSettingKeys[key] || value == "" {
				continue
			}

			var count int
			if err := db.QueryRow("SELECT COUNT(*) FROM settings WHERE `key` = ?", key).Scan(&count); err != nil {
				log.Println("Erro ao verificar configuração:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno ao atualizar configurações"})
				return
			}
			var err error
			if count > 0 {
				_, err = db.Exec("UPDATE settings SET `value` = ? WHERE `key` = ?", value, key)
			} else {
				_, err = db.Exec("INSERT INTO settings (`key`, `value`) VALUES (?, ?)", key, value)
			}
			if err != nil {
				log.Println("Erro ao salvar configuração:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno ao atualizar configurações"})
				return
			}
		}

		utils.ResponseJSON(w, map[string]string{"message": "Configurações atualizadas com sucesso"})
	}
}
