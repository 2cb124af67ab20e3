package services

import (
	"database/sql"
	"strings"
	"time"

	"jornada-backend/models"
	"jornada-backend/utils"
)

type EvaluationService struct {
	DB *sql.DB
}

// Submit stores a participant's event evaluation. One per registration,
// identified by CPF.
func (s *EvaluationService) Submit(in models.EvaluationInput) error {
	notas := []int{in.NotaGeral, in.NotaConteudo, in.NotaOrganizacao, in.NotaPalestrantes}
	for _, n := range notas {
		if n < 1 || n > 5 {
			return ErrInvalidRatings
		}
	}

	cpf := utils.NormalizeCPF(in.CPF)
	if len(cpf) != 11 {
		return ErrInvalidCPF
	}

	var inscricaoID int
	err := s.DB.QueryRow("SELECT id FROM inscricoes WHERE cpf = ?", cpf).Scan(&inscricaoID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	var existing int
	err = s.DB.QueryRow("SELECT id FROM avaliacoes WHERE inscricao_id = ?", inscricaoID).Scan(&existing)
	if err == nil {
		return ErrAlreadyRated
	}
	if err != sql.ErrNoRows {
		return err
	}

	_, err = s.DB.Exec(
		`INSERT INTO avaliacoes (inscricao_id, nota_geral, nota_conteudo, nota_organizacao, nota_palestrantes, comentario, sugestoes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		inscricaoID, in.NotaGeral, in.NotaConteudo, in.NotaOrganizacao, in.NotaPalestrantes,
		strings.TrimSpace(in.Comentario), strings.TrimSpace(in.Sugestoes),
		time.Now().Format("2006-01-02 15:04:05"),
	)
	return err
}
