package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendComplaintReceived(toEmail, studentName, complaintTitle, category string) error
	SendComplaintStatusChanged(toEmail, studentName, complaintTitle, status string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendComplaintReceived(toEmail, studentName, complaintTitle, category string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "We received your complaint")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Your complaint has been registered:</p>
			<p><strong>%s</strong> (Category: %s)</p>
			<p>Status: <strong>Open</strong></p>
			<p>You can track its progress in the Complaints section of HostelNexus.</p>
		</div>
	`, studentName, complaintTitle, category)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send complaint receipt to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Complaint receipt sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendComplaintStatusChanged(toEmail, studentName, complaintTitle, status string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your complaint status was updated")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>The status of your complaint <strong>%s</strong> changed to:</p>
			<h3>%s</h3>
			<p>Visit the Complaints section of HostelNexus for details.</p>
		</div>
	`, studentName, complaintTitle, status)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send status update to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Status update sent to %s\n", toEmail)
	return nil
}
