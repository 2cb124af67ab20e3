package services

import (
	"database/sql"

	"jornada-backend/models"
	"jornada-backend/utils"
)

// CheckIn records attendance for one participant on one day. Calling it again
// for the same participant and day is a no-op that reports Already=true, so a
// QR code scanned twice does no harm.
func (s *RegistrationService) CheckIn(cpf, dia string) (models.CheckInResult, error) {
	var result models.CheckInResult

	if dia != models.Dia1 && dia != models.Dia2 {
		return result, ErrInvalidDay
	}

	cpf = utils.NormalizeCPF(cpf)
	if len(cpf) != 11 {
		return result, ErrInvalidCPF
	}

	var (
		id              int
		nome            string
		diaParticipacao string
		presenteDia1    bool
		presenteDia2    bool
	)
	err := s.DB.QueryRow(
		"SELECT id, nome, dia_participacao, presente_dia1, presente_dia2 FROM inscricoes WHERE cpf = ?",
		cpf,
	).Scan(&id, &nome, &diaParticipacao, &presenteDia1, &presenteDia2)
	if err == sql.ErrNoRows {
		return result, ErrNotFound
	}
	if err != nil {
		return result, err
	}

	if diaParticipacao != dia && diaParticipacao != models.Ambos {
		return result, &NotEnrolledError{DiaInscrito: diaParticipacao}
	}

	result.Nome = nome

	alreadyChecked := presenteDia1
	column := "presente_dia1"
	if dia == models.Dia2 {
		alreadyChecked = presenteDia2
		column = "presente_dia2"
	}

	if alreadyChecked {
		result.Already = true
		return result, nil
	}

	// One statement sets both the day flag and the legacy combined flag, so
	// they cannot drift apart. Re-running it is harmless.
	_, err = s.DB.Exec("UPDATE inscricoes SET "+column+" = 1, presente = 1 WHERE id = ?", id)
	if err != nil {
		return result, err
	}

	return result, nil
}
