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
)

type AvaliacaoController struct {
	Service *services.EvaluationService
}

func (c *AvaliacaoController) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.EvaluationInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Corpo da requisição inválido"})
			return
		}

		if err := c.Service.Submit(input); err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidRatings), errors.Is(err, services.ErrInvalidCPF):
				utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: err.Error()})
			case errors.Is(err, services.ErrNotFound):
				utils.RespondWithError(w, http.StatusNotFound, models.Error{Message: "CPF não encontrado. Apenas participantes inscritos podem avaliar."})
			case errors.Is(err, services.ErrAlreadyRated):
				utils.RespondWithError(w, http.StatusConflict, models.Error{Message: "Você já enviou sua avaliação. Obrigado!"})
			default:
				log.Println("Erro ao salvar avaliação:", err)
				utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno ao processar avaliação"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		utils.ResponseJSON(w, map[string]string{"message": "Avaliação enviada com sucesso! Obrigado pelo seu feedback."})
	}
}

func (c *AvaliacaoController) Stats(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.VerifyToken(r); err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}

		var total, totalInscritos int
		if err := db.QueryRow("SELECT COUNT(*) FROM avaliacoes").Scan(&total); err != nil {
			log.Println("Erro ao contar avaliações:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno"})
			return
		}
		if err := db.QueryRow("SELECT COUNT(*) FROM inscricoes").Scan(&totalInscritos); err != nil {
			log.Println("Erro ao contar inscrições:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno"})
			return
		}

		var mediaGeral, mediaConteudo, mediaOrganizacao, mediaPalestrantes, mediaCombinada sql.NullFloat64
		err := db.QueryRow(`
			SELECT ROUND(AVG(nota_geral), 1),
			       ROUND(AVG(nota_conteudo), 1),
			       ROUND(AVG(nota_organizacao), 1),
			       ROUND(AVG(nota_palestrantes), 1),
			       ROUND(AVG(nota_geral + nota_conteudo + nota_organizacao + nota_palestrantes) / 4.0, 1)
			FROM avaliacoes`).Scan(&mediaGeral, &mediaConteudo, &mediaOrganizacao, &mediaPalestrantes, &mediaCombinada)
		if err != nil {
			log.Println("Erro ao calcular médias:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno"})
			return
		}

		type scoreCount struct {
			Nota  int `json:"nota"`
			Count int `json:"count"`
		}
		distribuicao := []scoreCount{}
		rows, err := db.Query(`
			SELECT nota, COUNT(*) FROM (
				SELECT nota_geral AS nota FROM avaliacoes
				UNION ALL SELECT nota_conteudo FROM avaliacoes
				UNION ALL SELECT nota_organizacao FROM avaliacoes
				UNION ALL SELECT nota_palestrantes FROM avaliacoes
			) AS notas
			GROUP BY nota ORDER BY nota`)
		if err != nil {
			log.Println("Erro ao calcular distribuição:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno"})
			return
		}
		for rows.Next() {
			var sc scoreCount
			if err := rows.Scan(&sc.Nota, &sc.Count); err != nil {
				log.Println("Erro ao ler distribuição:", err)
				continue
			}
			distribuicao = append(distribuicao, sc)
		}
		rows.Close()

		type commentRow struct {
			Comentario string `json:"comentario"`
			Sugestoes  string `json:"sugestoes,omitempty"`
			CreatedAt  string `json:"created_at"`
			Nome       string `json:"nome"`
		}
		comentarios := []commentRow{}
		rows, err = db.Query(`
			SELECT a.comentario, a.sugestoes, a.created_at, i.nome
			FROM avaliacoes a
			JOIN inscricoes i ON a.inscricao_id = i.id
			WHERE a.comentario IS NOT NULL AND a.comentario != ''
			ORDER BY a.created_at DESC LIMIT 20`)
		if err != nil {
			log.Println("Erro ao buscar comentários:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno"})
			return
		}
		for rows.Next() {
			var cr commentRow
			var sugestoes sql.NullString
			if err := rows.Scan(&cr.Comentario, &sugestoes, &cr.CreatedAt, &cr.Nome); err != nil {
				log.Println("Erro ao ler comentário:", err)
				continue
			}
			cr.Sugestoes = utils.NullStringToString(sugestoes)
			comentarios = append(comentarios, cr)
		}
		rows.Close()

		taxaResposta := 0
		if totalInscritos > 0 {
			taxaResposta = int(float64(total)/float64(totalInscritos)*100 + 0.5)
		}

		utils.ResponseJSON(w, map[string]interface{}{
			"totalAvaliacoes": total,
			"totalInscritos":  totalInscritos,
			"taxaResposta":    taxaResposta,
			"mediaGeral":      mediaCombinada.Float64,
			"medias": map[string]float64{
				"geral":        mediaGeral.Float64,
				"conteudo":     mediaConteudo.Float64,
				"organizacao":  mediaOrganizacao.Float64,
				"palestrantes": mediaPalestrantes.Float64,
			},
			"distribuicao": distribuicao,
			"comentarios":  comentarios,
		})
	}
}

func (c *AvaliacaoController) ExportCSV(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.VerifyToken(r); err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, models.Error{Message: err.Error()})
			return
		}

		rows, err := db.Query(`
			SELECT i.nome, i.cpf, i.instituicao, i.cargo,
			       a.nota_geral, a.nota_conteudo, a.nota_organizacao, a.nota_palestrantes,
			       a.comentario, a.sugestoes, a.created_at
			FROM avaliacoes a
			JOIN inscricoes i ON a.inscricao_id = i.id
			ORDER BY a.created_at DESC`)
		if err != nil {
			log.Println("Erro ao exportar avaliações:", err)
			utils.RespondWithError(w, http.StatusInternalServerError, models.Error{Message: "Erro interno"})
			return
		}
		defer rows.Close()

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", "attachment; filename=avaliacoes_evento.csv")
		w.Write([]byte("\xEF\xBB\xBF"))

		cw := csv.NewWriter(w)
		cw.Write([]string{"Nome", "CPF", "Instituição", "Cargo", "Nota Geral", "Nota Conteúdo", "Nota Organização", "Nota Palestrantes", "Comentário", "Sugestões", "Data"})

		for rows.Next() {
			var (
				nome, cpf, instituicao, cargo, createdAt           string
				notaGeral, notaConteudo, notaOrg, notaPalestrantes int
				comentario, sugestoes                              sql.NullString
			)
			err := rows.Scan(&nome, &cpf, &instituicao, &cargo, &notaGeral, &notaConteudo, &notaOrg, &notaPalestrantes, &comentario, &sugestoes, &createdAt)
			if err != nil {
				log.Println("Erro ao ler linha de exportação:", err)
				continue
			}
			cw.Write([]string{
				nome, utils.FormatCPF(cpf), instituicao, cargo,
				strconv.Itoa(notaGeral), strconv.Itoa(notaConteudo), strconv.Itoa(notaOrg), strconv.Itoa(notaPalestrantes),
				utils.NullStringToString(comentario), utils.NullStringToString(sugestoes), createdAt,
			})
		}
		cw.Flush()
	}
}
