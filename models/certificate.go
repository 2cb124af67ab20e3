package models

type Certificate struct {
	ID          int    `json:"id"`
	InscricaoID int    `json:"inscricao_id"`
	ArquivoPath string `json:"arquivo_path"`
	Gerado      bool   `json:"gerado"`
	Enviado     bool   `json:"enviado"`
	DataGerado  string `json:"data_gerado,omitempty"`
	DataEnviado string `json:"data_enviado,omitempty"`
}

type CertificateStats struct {
	TotalPresentes       int `json:"totalPresentes"`
	CertificadosGerados  int `json:"certificadosGerados"`
	CertificadosEnviados int `json:"certificadosEnviados"`
	Pendentes            int `json:"pendentes"`
}
