package models

type Evaluation struct {
	ID               int    `json:"id"`
	InscricaoID      int    `json:"inscricao_id"`
	NotaGeral        int    `json:"nota_geral"`
	NotaConteudo     int    `json:"nota_conteudo"`
	NotaOrganizacao  int    `json:"nota_organizacao"`
	NotaPalestrantes int    `json:"nota_palestrantes"`
	Comentario       string `json:"comentario,omitempty"`
	Sugestoes        string `json:"sugestoes,omitempty"`
	CreatedAt        string `json:"created_at"`
}

type EvaluationInput struct {
	CPF              string `json:"cpf"`
	NotaGeral        int    `json:"nota_geral"`
	NotaConteudo     int    `json:"nota_conteudo"`
	NotaOrganizacao  int    `json:"nota_organizacao"`
	NotaPalestrantes int    `json:"nota_palestrantes"`
	Comentario       string `json:"comentario"`
	Sugestoes        string `json:"sugestoes"`
}
