package services

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFields  = errors.New("todos os campos são obrigatórios")
	ErrInvalidDay     = errors.New("dia de participação inválido")
	ErrInvalidCPF     = errors.New("CPF inválido")
	ErrDuplicateCPF   = errors.New("CPF já inscrito neste evento")
	ErrNotFound       = errors.New("inscrição não encontrada")
	ErrAlreadyRated   = errors.New("avaliação já enviada para esta inscrição")
	ErrInvalidRatings = errors.New("todas as notas devem ser entre 1 e 5")
)

// CapacityError reports which day ran out of seats.
type CapacityError struct {
	Dia string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("vagas esgotadas para %s", diaLabel(e.Dia))
}

// NotEnrolledError carries the day the participant actually signed up for, so
// the front desk can tell them where to go.
type NotEnrolledError struct {
	DiaInscrito string
}

func (e *NotEnrolledError) Error() string {
	return fmt.Sprintf("participante inscrito apenas para %s", diaLabel(e.DiaInscrito))
}

func diaLabel(dia string) string {
	switch dia {
	case "dia1":
		return "o 1º dia"
	case "dia2":
		return "o 2º dia"
	case "ambos":
		return "ambos os dias"
	}
	return dia
}
