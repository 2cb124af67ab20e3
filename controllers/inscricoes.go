package controllers

import (
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"jornada-backend/models"
	"jornada-backend/services"
	"jornada-backend/utils"

	"github.com/gorilla/mux"
)

type InscricaoController struct {
	Service  *services.RegistrationService
	Settings services.SettingsProvider
}

func (c *InscricaoController) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.RegistrationInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Corpo da requisição inválido"})
			return
		}

		id, err := c.Service.Register(input)
		if err != nil {
			var capErr *services.CapacityError
			switch {
			case errors.Is(err, services.ErrMissingFields),
				errors.Is(err, services.ErrInvalidDay),
				errors.Is(err, services.ErrInvalidCPF):
				utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
			case errors.Is(err, services.ErrDuplicateCPF):
				utils.RespondWithError(w, http.StatusConflict, models.Error{Message: err.Error()})
			case errors.As(err, &capErr):
				utils.RespondWithError(w, http.StatusConflict, models.Error{Message: capErr.Error()})
			default:
				log.Println("Erro ao criar inscrição:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno ao processar inscrição"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		utils.ResponseJSON(w, map[string]interface{}{
			"id":      id,
			"message": "Inscrição realizada com sucesso!",
		})
	}
}

func (c *InscricaoController) Vacancy(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := services.Vacancy(db, c.Settings)
		if err != nil {
			log.Println("Erro ao calcular vagas:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao consultar vagas"})
			return
		}
		utils.ResponseJSON(w, report)
	}
}

func (c *InscricaoController) List(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.VerifyToken(r); err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}

		rows, err := db.Query(`
			SELECT id, nome, cpf, email, telefone, instituicao, cargo, dia_participacao,
			       presente_dia1, presente_dia2, presente, data_inscricao, created_at
			FROM inscricoes ORDER BY created_at DESC`)
		if err != nil {
			log.Println("Erro ao listar inscrições:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao listar inscrições"})
			return
		}
		defer rows.Close()

		inscricoes := []models.Registration{}
		for rows.Next() {
			var i models.Registration
			err := rows.Scan(
				&i.ID, &i.Nome, &i.CPF, &i.Email, &i.Telefone, &i.Instituicao, &i.Cargo,
				&i.DiaParticipacao, &i.PresenteDia1, &i.PresenteDia2, &i.Presente,
				&i.DataInscricao, &i.CreatedAt,
			)
			if err != nil {
				log.Println("Erro ao ler inscrição:", err)
				continue
			}
			inscricoes = append(inscricoes, i)
		}
		if err := rows.Err(); err != nil {
			log.Println("Erro ao iterar inscrições:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao listar inscrições"})
			return
		}

		utils.ResponseJSON(w, inscricoes)
	}
}

func (c *InscricaoController) Stats(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.VerifyToken(r); err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}

		var total, presentes, gerados, enviados int
		if err := db.QueryRow("SELECT COUNT(*) FROM inscricoes").Scan(&total); err != nil {
			log.Println("Erro ao contar inscrições:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao calcular estatísticas"})
			return
		}
		if err := db.QueryRow("SELECT COUNT(*) FROM inscricoes WHERE presente = 1").Scan(&presentes); err != nil {
			log.Println("Erro ao contar presentes:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao calcular estatísticas"})
			return
		}
		if err := db.QueryRow("SELECT COUNT(*) FROM certificados WHERE gerado = 1").Scan(&gerados); err != nil {
			log.Println("Erro ao contar certificados gerados:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao calcular estatísticas"})
			return
		}
		if err := db.QueryRow("SELECT COUNT(*) FROM certificados WHERE enviado = 1").Scan(&enviados); err != nil {
			log.Println("Erro ao contar certificados enviados:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao calcular estatísticas"})
			return
		}

		type institutionCount struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		}
		porInstituicao := []institutionCount{}
		rows, err := db.Query("SELECT instituicao, COUNT(*) FROM inscricoes GROUP BY instituicao ORDER BY COUNT(*) DESC")
		if err != nil {
			log.Println("Erro ao agrupar por instituição:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao calcular estatísticas"})
			return
		}
		for rows.Next() {
			var ic institutionCount
			if err := rows.Scan(&ic.Name, &ic.Count); err != nil {
				log.Println("Erro ao ler agrupamento:", err)
				continue
			}
			porInstituicao = append(porInstituicao, ic)
		}
		rows.Close()

		type recentRow struct {
			Nome          string `json:"nome"`
			Instituicao   string `json:"instituicao"`
			Cargo         string `json:"cargo"`
			DataInscricao string `json:"data_inscricao"`
		}
		recentes := []recentRow{}
		rows, err = db.Query("SELECT nome, instituicao, cargo, data_inscricao FROM inscricoes ORDER BY created_at DESC LIMIT 5")
		if err != nil {
			log.Println("Erro ao buscar inscrições recentes:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao calcular estatísticas"})
			return
		}
		for rows.Next() {
			var rr recentRow
			if err := rows.Scan(&rr.Nome, &rr.Instituicao, &rr.Cargo, &rr.DataInscricao); err != nil {
				log.Println("Erro ao ler inscrição recente:", err)
				continue
			}
			recentes = append(recentes, rr)
		}
		rows.Close()

		utils.ResponseJSON(w, map[string]interface{}{
			"totalInscritos":       total,
			"presentes":            presentes,
			"ausentes":             total - presentes,
			"certificadosGerados":  gerados,
			"certificadosEnviados": enviados,
			"porInstituicao":       porInstituicao,
			"recentes":             recentes,
		})
	}
}

func (c *InscricaoController) ExportCSV(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.VerifyToken(r); err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}

		rows, err := db.Query(`
			SELECT nome, cpf, email, telefone, instituicao, cargo, dia_participacao,
			       presente_dia1, presente_dia2, data_inscricao
			FROM inscricoes ORDER BY nome`)
		if err != nil {
			log.Println("Erro ao exportar inscrições:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao exportar inscrições"})
			return
		}
		defer rows.Close()

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename=participantes_jornada_2026.csv")
		w.Write([]byte("\xEF\xBB\xBF")) // UTF-8 BOM so Excel opens accents correctly

		cw := csv.NewWriter(w)
		cw.Write([]string{"Nome", "CPF", "E-mail", "Telefone", "Instituição", "Cargo", "Dia", "Presente Dia 1", "Presente Dia 2", "Data Inscrição"})

		for rows.Next() {
			var (
				nome, cpf, email, telefone, instituicao, cargo, dia, dataInscricao string
				presenteDia1, presenteDia2                                         bool
			)
			err := rows.Scan(&nome, &cpf, &email, &telefone, &instituicao, &cargo, &dia, &presenteDia1, &presenteDia2, &dataInscricao)
			if err != nil {
				log.Println("Erro ao ler linha de exportação:", err)
				continue
			}
			cw.Write([]string{
				nome, utils.FormatCPF(cpf), email, telefone, instituicao, cargo, dia,
				simNao(presenteDia1), simNao(presenteDia2), dataInscricao,
			})
		}
		cw.Flush()
	}
}

func simNao(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

func (c *InscricaoController) TogglePresenca() http.HandlerFunc {
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

		presente, err := c.Service.ToggleAttendance(id)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Inscrição não encontrada"})
				return
			}
			log.Println("Erro ao alternar presença:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao alternar presença"})
			return
		}

		utils.ResponseJSON(w, map[string]interface{}{"id": id, "presente": presente})
	}
}

func (c *InscricaoController) Delete() http.HandlerFunc {
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

		if err := c.Service.Delete(id); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "Inscrição não encontrada"})
				return
			}
			log.Println("Erro ao excluir inscrição:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro ao excluir inscrição"})
			return
		}

		utils.ResponseJSON(w, map[string]string{"message": "Inscrição excluída com sucesso"})
	}
}
