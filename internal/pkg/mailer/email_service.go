package mailer

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"mightyops-be/pkg/export"
)

type IEmailService interface {
	SendReport(toEmail, reportTitle string, file *export.File) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
	}
}

// SendReport mails a finished export as an attachment.
func (s *emailService) SendReport(toEmail, reportTitle string, file *export.File) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", reportTitle)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>%s</h2>
			<p>The requested report is attached as <b>%s</b>.</p>
			<p>This is an automated message; replies are not monitored.</p>
		</div>
	`, reportTitle, file.Name)

	m.SetBody("text/html", body)
	m.Attach(file.Name,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(file.Data)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {file.MIME}}),
	)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send report to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Report %s sent to %s\n", file.Name, toEmail)
	return nil
}
