package models

type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// EventSettings is the typed snapshot of the settings table. Capacity values
// are already parsed; string fields keep whatever the admin saved.
type EventSettings struct {
	EventName     string
	EventDate     string
	EventLocation string
	EventWorkload string
	VagasDia1     int
	VagasDia2     int
}

type DayVacancy struct {
	Total     int `json:"total"`
	Max       int `json:"max"`
	Available int `json:"available"`
}

type VacancyReport struct {
	Dia1 DayVacancy `json:"dia1"`
	Dia2 DayVacancy `json:"dia2"`
}
