package services

import (
	"database/sql"
	"strconv"

	"jornada-backend/models"
)

const defaultVagas = 500

// SettingsProvider hands workflows a typed snapshot of the settings table
// instead of ad hoc key lookups spread over every call site.
type SettingsProvider interface {
	EventSettings() (models.EventSettings, error)
}

// DBSettings reads the snapshot straight from the settings table on every
// call. No caching: the admin panel may change limits mid-event.
type DBSettings struct {
	DB *sql.DB
}

func (s *DBSettings) EventSettings() (models.EventSettings, error) {
	out := models.EventSettings{
		EventName:     "Jornada Pedagógica 2026",
		EventDate:     "25 e 26 de Fevereiro de 2026",
		EventLocation: "Centro de Convenções — Tuntum, MA",
		EventWorkload: "40",
		VagasDia1:     defaultVagas,
		VagasDia2:     defaultVagas,
	}

	rows, err := s.DB.Query("SELECT `key`, `value` FROM settings")
	if err != nil {
		return out, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return out, err
		}
		switch key {
		case "event_name":
			out.EventName = value
		case "event_date":
			out.EventDate = value
		case "event_location":
			out.EventLocation = value
		case "event_workload":
			out.EventWorkload = value
		case "vagas_dia1":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				out.VagasDia1 = n
			}
		case "vagas_dia2":
			if n, err := strconv.Atoi(value); err == nil && n >= 0 {
				out.VagasDia2 = n
			}
		}
	}
	return out, rows.Err()
}

// Occupancy counts registrations covering a given day: the day itself plus
// everyone signed up for both days.
func Occupancy(db *sql.DB, dia string) (int, error) {
	var count int
	err := db.QueryRow(
		"SELECT COUNT(*) FROM inscricoes WHERE dia_participacao = ? OR dia_participacao = ?",
		dia, models.Ambos,
	).Scan(&count)
	return count, err
}

// Vacancy computes the per-day seat report. Available never goes negative,
// even when registrations outrun the configured limit.
func Vacancy(db *sql.DB, settings SettingsProvider) (models.VacancyReport, error) {
	var report models.VacancyReport

	s, err := settings.EventSettings()
	if err != nil {
		return report, err
	}

	dia1, err := Occupancy(db, models.Dia1)
	if err != nil {
		return report, err
	}
	dia2, err := Occupancy(db, models.Dia2)
	if err != nil {
		return report, err
	}

	report.Dia1 = models.DayVacancy{Total: dia1, Max: s.VagasDia1, Available: available(s.VagasDia1, dia1)}
	report.Dia2 = models.DayVacancy{Total: dia2, Max: s.VagasDia2, Available: available(s.VagasDia2, dia2)}
	return report, nil
}

func available(limit, occupied int) int {
	if occupied >= limit {
		return 0
	}
	return limit - occupied
}
