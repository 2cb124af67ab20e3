package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"jornada-backend/models"
	"jornada-backend/utils"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
)

type CertificateService struct {
	DB        *sql.DB
	Settings  SettingsProvider
	OutputDir string
}

type certificateData struct {
	ID              int
	Nome            string
	CPF             string
	Cargo           string
	Instituicao     string
	DiaParticipacao string
}

// GenerateAll renders a PDF for every checked-in participant that does not
// have one yet. Returns how many were generated and how many candidates were
// found; per-participant failures are logged and skipped.
func (s *CertificateService) GenerateAll() (int, int, error) {
	rows, err := s.DB.Query(`
		SELECT i.id, i.nome, i.cpf, i.cargo, i.instituicao, i.dia_participacao
		FROM inscricoes i
		LEFT JOIN certificados c ON c.inscricao_id = i.id
		WHERE i.presente = 1 AND (c.id IS NULL OR c.gerado = 0)`)
	if err != nil {
		return 0, 0, err
	}
	defer rows.Close()

	var pending []certificateData
	for rows.Next() {
		var p certificateData
		if err := rows.Scan(&p.ID, &p.Nome, &p.CPF, &p.Cargo, &p.Instituicao, &p.DiaParticipacao); err != nil {
			return 0, 0, err
		}
		pending = append(pending, p)
	}
	if err := rows.Err(); err != nil {
		return 0, 0, err
	}

	if len(pending) == 0 {
		return 0, 0, nil
	}

	settings, err := s.Settings.EventSettings()
	if err != nil {
		return 0, len(pending), err
	}

	outputDir := s.OutputDir
	if outputDir == "" {
		outputDir = "certificates"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return 0, len(pending), err
	}

	gerados := 0
	for _, p := range pending {
		pdfBytes, err := s.render(p, settings)
		if err != nil {
			log.Printf("Erro ao gerar certificado para %s: %v", p.Nome, err)
			continue
		}

		fileName := fmt.Sprintf("certificado_%d_%s.pdf", p.ID, uuid.New().String())
		filePath := filepath.Join(outputDir, fileName)
		if err := os.WriteFile(filePath, pdfBytes, 0644); err != nil {
			log.Printf("Erro ao salvar certificado para %s: %v", p.Nome, err)
			continue
		}

		if utils.S3Configured() {
			url, err := utils.UploadCertificateToS3(bytes.NewReader(pdfBytes), fileName)
			if err != nil {
				log.Printf("Erro ao arquivar certificado no S3: %v", err)
			} else {
				log.Printf("Certificado arquivado em %s", url)
			}
		}

		if err := s.markGenerated(p.ID, filePath); err != nil {
			log.Printf("Erro ao registrar certificado de %s: %v", p.Nome, err)
			continue
		}
		gerados++
	}

	return gerados, len(pending), nil
}

func (s *CertificateService) markGenerated(inscricaoID int, filePath string) error {
	now := time.Now().Format("2006-01-02 15:04:05")
	res, err := s.DB.Exec(
		"UPDATE certificados SET arquivo_path = ?, gerado = 1, data_gerado = ? WHERE inscricao_id = ?",
		filePath, now, inscricaoID,
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		_, err = s.DB.Exec(
			"INSERT INTO certificados (inscricao_id, arquivo_path, gerado, data_gerado) VALUES (?, ?, 1, ?)",
			inscricaoID, filePath, now,
		)
	}
	return err
}

// SendAll e-mails every generated-but-unsent certificate. Returns how many
// went out; individual failures are logged and retried on the next run.
func (s *CertificateService) SendAll(mailer *Mailer) (int, error) {
	rows, err := s.DB.Query(`
		SELECT c.id, c.arquivo_path, i.nome, i.email
		FROM certificados c
		JOIN inscricoes i ON i.id = c.inscricao_id
		WHERE c.gerado = 1 AND c.enviado = 0`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	type pendingSend struct {
		certID int
		path   string
		nome   string
		email  string
	}
	var pending []pendingSend
	for rows.Next() {
		var p pendingSend
		if err := rows.Scan(&p.certID, &p.path, &p.nome, &p.email); err != nil {
			return 0, err
		}
		pending = append(pending, p)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	enviados := 0
	for _, p := range pending {
		pdf, err := os.ReadFile(p.path)
		if err != nil {
			log.Printf("Erro ao ler certificado de %s: %v", p.nome, err)
			continue
		}
		if err := mailer.SendCertificate(p.email, p.nome, pdf); err != nil {
			log.Printf("Erro ao enviar certificado para %s: %v", p.nome, err)
			continue
		}
		now := time.Now().Format("2006-01-02 15:04:05")
		if _, err := s.DB.Exec("UPDATE certificados SET enviado = 1, data_enviado = ? WHERE id = ?", now, p.certID); err != nil {
			log.Printf("Erro ao marcar certificado de %s como enviado: %v", p.nome, err)
			continue
		}
		enviados++
	}

	return enviados, nil
}

func (s *CertificateService) Stats() (models.CertificateStats, error) {
	var stats models.CertificateStats

	if err := s.DB.QueryRow("SELECT COUNT(*) FROM inscricoes WHERE presente = 1").Scan(&stats.TotalPresentes); err != nil {
		return stats, err
	}
	if err := s.DB.QueryRow("SELECT COUNT(*) FROM certificados WHERE gerado = 1").Scan(&stats.CertificadosGerados); err != nil {
		return stats, err
	}
	if err := s.DB.QueryRow("SELECT COUNT(*) FROM certificados WHERE enviado = 1").Scan(&stats.CertificadosEnviados); err != nil {
		return stats, err
	}

	stats.Pendentes = stats.TotalPresentes - stats.CertificadosEnviados
	if stats.Pendentes < 0 {
		stats.Pendentes = 0
	}
	return stats, nil
}

// render lays out the landscape A4 certificate. Core fonts are cp1252, so
// every user string goes through the unicode translator.
func (s *CertificateService) render(data certificateData, settings models.EventSettings) ([]byte, error) {
	pdf := gofpdf.New("L", "pt", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	width, height := pdf.GetPageSize()

	// Background
	pdf.SetFillColor(248, 250, 252)
	pdf.Rect(0, 0, width, height, "F")

	// Outer border (green) and inner border (gold)
	margin := 25.0
	pdf.SetDrawColor(26, 71, 42)
	pdf.SetLineWidth(3)
	pdf.Rect(margin, margin, width-margin*2, height-margin*2, "D")

	pdf.SetDrawColor(212, 168, 83)
	pdf.SetLineWidth(1)
	pdf.Rect(margin+6, margin+6, width-(margin+6)*2, height-(margin+6)*2, "D")

	// Header
	pdf.SetFont("Helvetica", "", 13)
	pdf.SetTextColor(107, 114, 128)
	pdf.SetXY(0, 55)
	pdf.CellFormat(width, 16, tr("PREFEITURA MUNICIPAL DE TUNTUM — MARANHÃO"), "", 0, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetXY(0, 73)
	pdf.CellFormat(width, 14, tr("Secretaria Municipal de Educação — SEMED"), "", 0, "C", false, 0, "")

	// Gold divider
	pdf.SetDrawColor(212, 168, 83)
	pdf.SetLineWidth(2)
	pdf.Line(width/2-140, 95, width/2+140, 95)

	// Title
	pdf.SetFont("Helvetica", "B", 34)
	pdf.SetTextColor(26, 71, 42)
	pdf.SetXY(0, 107)
	pdf.CellFormat(width, 40, "CERTIFICADO", "", 0, "C", false, 0, "")

	bodyY := 155.0
	pdf.SetFont("Helvetica", "", 13)
	pdf.SetTextColor(55, 65, 81)
	pdf.SetXY(0, bodyY)
	pdf.CellFormat(width, 16, "Certificamos que", "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 26)
	pdf.SetTextColor(26, 71, 42)
	pdf.SetXY(0, bodyY+25)
	pdf.CellFormat(width, 30, tr(strings.ToUpper(data.Nome)), "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(55, 65, 81)
	pdf.SetXY(80, bodyY+62)
	pdf.CellFormat(width-160, 14,
		tr(fmt.Sprintf("CPF: %s — %s — %s", utils.FormatCPF(data.CPF), data.Cargo, data.Instituicao)),
		"", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 13)
	pdf.SetXY(100, bodyY+92)
	pdf.MultiCell(width-200, 18,
		tr(fmt.Sprintf(
			"participou da %s, promovida pela Secretaria Municipal de Educação de Tuntum — MA, realizada em %s, com carga horária total de",
			settings.EventName, settings.EventDate)),
		"", "C", false)

	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(26, 71, 42)
	pdf.SetXY(0, bodyY+150)
	pdf.CellFormat(width, 28, tr(settings.EventWorkload+" HORAS"), "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(107, 114, 128)
	pdf.SetXY(0, bodyY+185)
	pdf.CellFormat(width, 14, tr("Participação: "+participationText(data.DiaParticipacao)), "", 0, "C", false, 0, "")

	pdf.SetXY(0, bodyY+215)
	pdf.CellFormat(width, 14, tr(settings.EventLocation+", "+settings.EventDate), "", 0, "C", false, 0, "")

	// Signature line
	pdf.SetDrawColor(55, 65, 81)
	pdf.SetLineWidth(1)
	pdf.Line(width/2-120, bodyY+250, width/2+120, bodyY+250)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(55, 65, 81)
	pdf.SetXY(0, bodyY+256)
	pdf.CellFormat(width, 12, tr("Coordenação da "+settings.EventName), "", 0, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(107, 114, 128)
	pdf.SetXY(0, bodyY+270)
	pdf.CellFormat(width, 12, tr("SEMED — Tuntum, MA"), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func participationText(dia string) string {
	switch dia {
	case models.Dia1:
		return "1º Dia — Gestores, Coordenadores e Equipe Técnica da SEMED"
	case models.Dia2:
		return "2º Dia — Professores, Gestores, Coordenadores e Equipe da SEMED"
	}
	return "Ambos os dias"
}
