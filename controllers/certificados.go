package controllers

import (
	"fmt"
	"log"
	"net/http"

	"jornada-backend/models"
	"jornada-backend/services"
	"jornada-backend/utils"
)

type CertificadoController struct {
	Service *services.CertificateService
	Mailer  *services.Mailer
}

func (c *CertificadoController) Gerar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.VerifyToken(r); err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}

		gerados, candidatos, err := c.Service.GenerateAll()
		if err != nil {
			log.Println("Erro ao gerar certificados:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno ao gerar certificados"})
			return
		}

		if candidatos == 0 {
			stats, err := c.Service.Stats()
			if err != nil {
				log.Println("Erro ao consultar certificados:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno ao gerar certificados"})
				return
			}
			if stats.TotalPresentes > 0 {
				utils.ResponseJSON(w, map[string]interface{}{
					"message": "Todos os certificados já foram gerados",
					"gerados": 0,
				})
				return
			}
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Nenhum participante com check-in confirmado"})
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{
			"message": fmt.Sprintf("%d certificado(s) gerado(s) com sucesso", gerados),
			"gerados": gerados,
		})
	}
}

func (c *CertificadoController) Enviar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.VerifyToken(r); err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}

		enviados, err := c.Service.SendAll(c.Mailer)
		if err != nil {
			log.Println("Erro ao enviar certificados:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno ao enviar certificados"})
			return
		}

		if enviados == 0 {
			utils.ResponseJSON(w, map[string]interface{}{
				"message":  "Nenhum certificado pendente de envio",
				"enviados": 0,
			})
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{
			"message":  fmt.Sprintf("%d certificado(s) enviado(s) por e-mail", enviados),
			"enviados": enviados,
		})
	}
}

func (c *CertificadoController) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.VerifyToken(r); err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}

		stats, err := c.Service.Stats()
		if err != nil {
			log.Println("Erro ao consultar estatísticas de certificados:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno ao consultar certificados"})
			return
		}

		utils.ResponseJSON(w, stats)
	}
}
