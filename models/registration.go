package models

// Valid values for dia_participacao.
const (
	Dia1  = "dia1"
	Dia2  = "dia2"
	Ambos = "ambos"
)

type Registration struct {
	ID              int    `json:"id"`
	Nome            string `json:"nome"`
	CPF             string `json:"cpf"`
	Email           string `json:"email"`
	Telefone        string `json:"telefone"`
	Instituicao     string `json:"instituicao"`
	Cargo           string `json:"cargo"`
	DiaParticipacao string `json:"dia_participacao"`
	PresenteDia1    bool   `json:"presente_dia1"`
	PresenteDia2    bool   `json:"presente_dia2"`
	Presente        bool   `json:"presente"`
	DataInscricao   string `json:"data_inscricao"`
	CreatedAt       string `json:"created_at"`
}

type RegistrationInput struct {
	Nome            string `json:"nome"`
	CPF             string `json:"cpf"`
	Email           string `json:"email"`
	Telefone        string `json:"telefone"`
	Instituicao     string `json:"instituicao"`
	Cargo           string `json:"cargo"`
	DiaParticipacao string `json:"dia_participacao"`
}

type CheckInInput struct {
	CPF string `json:"cpf"`
	Dia string `json:"dia"`
}

type CheckInResult struct {
	Nome    string `json:"nome"`
	Already bool   `json:"already"`
}
