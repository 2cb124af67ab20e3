package services

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// Mailer sends transactional e-mail over plain SMTP. When SMTP_USER or
// SMTP_PASSWORD are absent every send is logged and skipped, which keeps
// local development working without credentials.
type Mailer struct {
	Settings SettingsProvider
}

func (m *Mailer) configured() bool {
	return os.Getenv("SMTP_USER") != "" && os.Getenv("SMTP_PASSWORD") != ""
}

func (m *Mailer) send(to, subject, body string, attachment []byte, attachmentName string) error {
	from := os.Getenv("SMTP_USER")
	password := os.Getenv("SMTP_PASSWORD")
	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpPort == "" {
		smtpPort = "587"
	}

	auth := smtp.PlainAuth("", from, password, smtpHost)

	var msg strings.Builder
	msg.WriteString("From: SEMED Tuntum <" + from + ">\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")

	if attachment == nil {
		msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(body + "\r\n")
	} else {
		boundary := "jornada-boundary-42"
		msg.WriteString("Content-Type: multipart/mixed; boundary=\"" + boundary + "\"\r\n\r\n")

		msg.WriteString("--" + boundary + "\r\n")
		msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		msg.WriteString(body + "\r\n\r\n")

		msg.WriteString("--" + boundary + "\r\n")
		msg.WriteString("Content-Type: application/pdf\r\n")
		msg.WriteString("Content-Transfer-Encoding: base64\r\n")
		msg.WriteString("Content-Disposition: attachment; filename=\"" + attachmentName + "\"\r\n\r\n")

		encoded := base64.StdEncoding.EncodeToString(attachment)
		for len(encoded) > 76 {
			msg.WriteString(encoded[:76] + "\r\n")
			encoded = encoded[76:]
		}
		msg.WriteString(encoded + "\r\n")
		msg.WriteString("--" + boundary + "--\r\n")
	}

	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, []byte(msg.String()))
}

// SendConfirmation implements Notifier. Failures are logged, never returned:
// the registration already succeeded by the time this runs.
func (m *Mailer) SendConfirmation(to, nome string) {
	settings, err := m.Settings.EventSettings()
	if err != nil {
		log.Println("Erro ao ler configurações para e-mail de confirmação:", err)
		return
	}

	if !m.configured() {
		log.Printf("[MOCK] E-mail de confirmação para %s (%s)", to, nome)
		return
	}

	firstName := strings.SplitN(nome, " ", 2)[0]
	subject := "Inscrição Confirmada — " + settings.EventName
	body := fmt.Sprintf(
		"Olá, %s!\n\nSua inscrição na %s foi realizada com sucesso.\n\n"+
			"Data: %s\nLocal: %s\nCarga horária: %s horas\n\n"+
			"Após o evento, o certificado de participação será enviado para este e-mail.\n"+
			"Qualquer dúvida, entre em contato com a SEMED.",
		firstName, settings.EventName, settings.EventDate, settings.EventLocation, settings.EventWorkload,
	)

	if err := m.send(to, subject, body, nil, ""); err != nil {
		log.Printf("Erro ao enviar e-mail de confirmação para %s: %v", to, err)
		return
	}
	log.Printf("E-mail de confirmação enviado para %s", to)
}

// SendCertificate mails the generated PDF as an attachment.
func (m *Mailer) SendCertificate(to, nome string, pdf []byte) error {
	settings, err := m.Settings.EventSettings()
	if err != nil {
		return err
	}

	if !m.configured() {
		log.Printf("[MOCK] Certificado para %s (%s)", to, nome)
		return nil
	}

	firstName := strings.SplitN(nome, " ", 2)[0]
	subject := "Certificado — " + settings.EventName
	body := fmt.Sprintf(
		"Parabéns, %s!\n\nSeu certificado de participação na %s está anexado a este e-mail.\n\n"+
			"Carga horária: %s horas\n\n"+
			"Guarde este certificado. Ele é válido como comprovante de formação continuada.",
		firstName, settings.EventName, settings.EventWorkload,
	)

	attachmentName := "Certificado_" + strings.ReplaceAll(nome, " ", "_") + ".pdf"
	return m.send(to, subject, body, pdf, attachmentName)
}
