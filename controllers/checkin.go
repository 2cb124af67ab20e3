package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"jornada-backend/models"
	"jornada-backend/services"
	"jornada-backend/utils"
)

func (c *InscricaoController) CheckIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.VerifyToken(r); err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}

		var input models.CheckInInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Corpo da requisição inválido"})
			return
		}

		result, err := c.Service.CheckIn(input.CPF, input.Dia)
		if err != nil {
			var enrollErr *services.NotEnrolledError
			switch {
			case errors.Is(err, services.ErrInvalidDay), errors.Is(err, services.ErrInvalidCPF):
				utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
			case errors.Is(err, services.ErrNotFound):
				utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "CPF não encontrado"})
			case errors.As(err, &enrollErr):
				utils.RespondWithError(w, http.StatusConflict, models.Error{Message: enrollErr.Error()})
			default:
				log.Println("Erro no check-in:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno no check-in"})
			}
			return
		}

		utils.ResponseJSON(w, result)
	}
}
