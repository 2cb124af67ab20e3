package services

import (
	"database/sql"
	"log"
	"strings"
	"time"

	"jornada-backend/models"
	"jornada-backend/utils"
)

// Notifier delivers the registration confirmation. Delivery is fire and
// forget: the registration never waits on it or fails because of it.
type Notifier interface {
	SendConfirmation(to, nome string)
}

type RegistrationService struct {
	DB       *sql.DB
	Settings SettingsProvider
	Notifier Notifier
}

// Register validates and stores a new registration. Rules run in order and
// the first violation wins; nothing is written before all of them pass.
func (s *RegistrationService) Register(in models.RegistrationInput) (int64, error) {
	nome := strings.TrimSpace(in.Nome)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	telefone := strings.TrimSpace(in.Telefone)
	instituicao := strings.TrimSpace(in.Instituicao)
	cargo := strings.TrimSpace(in.Cargo)
	dia := strings.TrimSpace(in.DiaParticipacao)

	if nome == "" || in.CPF == "" || email == "" || telefone == "" || instituicao == "" || cargo == "" || dia == "" {
		return 0, ErrMissingFields
	}

	if dia != models.Dia1 && dia != models.Dia2 && dia != models.Ambos {
		return 0, ErrInvalidDay
	}

	cpf := utils.NormalizeCPF(in.CPF)
	if len(cpf) != 11 {
		return 0, ErrInvalidCPF
	}

	var existingID int
	err := s.DB.QueryRow("SELECT id FROM inscricoes WHERE cpf = ?", cpf).Scan(&existingID)
	if err == nil {
		return 0, ErrDuplicateCPF
	}
	if err != sql.ErrNoRows {
		return 0, err
	}

	if err := s.checkCapacity(dia); err != nil {
		return 0, err
	}

	now := time.Now()
	result, err := s.DB.Exec(
		`INSERT INTO inscricoes (nome, cpf, email, telefone, instituicao, cargo, dia_participacao, data_inscricao, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		nome, cpf, email, telefone, instituicao, cargo, dia,
		now.Format("02/01/2006 15:04"), now.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	if s.Notifier != nil {
		go s.Notifier.SendConfirmation(email, nome)
	}

	return id, nil
}

// checkCapacity enforces the per-day seat limits. Enforcement is best effort:
// if the settings read fails we log and let the registration through rather
// than blocking sign-ups on an infrastructure hiccup.
func (s *RegistrationService) checkCapacity(dia string) error {
	settings, err := s.Settings.EventSettings()
	if err != nil {
		log.Println("Erro ao ler configurações de vagas, prosseguindo sem verificação:", err)
		return nil
	}

	if dia == models.Dia1 || dia == models.Ambos {
		occupied, err := Occupancy(s.DB, models.Dia1)
		if err != nil {
			return err
		}
		if occupied >= settings.VagasDia1 {
			return &CapacityError{Dia: models.Dia1}
		}
	}
	if dia == models.Dia2 || dia == models.Ambos {
		occupied, err := Occupancy(s.DB, models.Dia2)
		if err != nil {
			return err
		}
		if occupied >= settings.VagasDia2 {
			return &CapacityError{Dia: models.Dia2}
		}
	}
	return nil
}

// ToggleAttendance flips the combined presence flag. It is the admin escape
// hatch and is not day-scoped.
func (s *RegistrationService) ToggleAttendance(id int) (bool, error) {
	var presente bool
	err := s.DB.QueryRow("SELECT presente FROM inscricoes WHERE id = ?", id).Scan(&presente)
	if err == sql.ErrNoRows {
		return false, ErrNotFound
	}
	if err != nil {
		return false, err
	}

	newStatus := !presente
	if _, err := s.DB.Exec("UPDATE inscricoes SET presente = ? WHERE id = ?", newStatus, id); err != nil {
		return false, err
	}
	return newStatus, nil
}

// Delete removes a registration together with its certificate record.
func (s *RegistrationService) Delete(id int) error {
	var existingID int
	err := s.DB.QueryRow("SELECT id FROM inscricoes WHERE id = ?", id).Scan(&existingID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := s.DB.Exec("DELETE FROM certificados WHERE inscricao_id = ?", id); err != nil {
		return err
	}
	if _, err := s.DB.Exec("DELETE FROM inscricoes WHERE id = ?", id); err != nil {
		return err
	}
	return nil
}
