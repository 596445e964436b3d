package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// RentEmail is a rendered message ready for SendMail.
type RentEmail struct {
	Subject string
	Body    string
}

func sanitizeHeader(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
}

// SendMail delivers a plain-text message over SMTP. When SMTP is not
// configured it logs the message and reports success, so flows stay
// testable without a mail server.
func SendMail(recipient, subject, body string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := os.Getenv("SMTP_FROM_NAME")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] to:%s subject:%q", recipient, subject)
		return nil
	}

	subject = sanitizeHeader(subject)
	from := fmt.Sprintf("%s <%s>", sanitizeHeader(fromName), smtpUser)
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipient))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(body + "\r\n")

	if err := smtp.SendMail(addr, auth, smtpUser, []string{recipient}, []byte(sb.String())); err != nil {
		log.Printf("Failed to send email to %s: %v", recipient, err)
		return err
	}
	return nil
}

// RentReminderEmail: sent ahead of the due date (day 25 job).
func RentReminderEmail(tenantName string, roomNumber string, rent float64, propertyName string) RentEmail {
	return RentEmail{
		Subject: fmt.Sprintf("Rent reminder - Room %s", roomNumber),
		Body: fmt.Sprintf(
			"Hi %s,\n\nA friendly reminder that rent of %.2f for room %s is due on the 1st.\n\n%s\n",
			tenantName, rent, roomNumber, propertyName),
	}
}

// RentInvoiceEmail: sent on the 1st.
func RentInvoiceEmail(tenantName string, roomNumber string, rent float64, propertyName string) RentEmail {
	return RentEmail{
		Subject: fmt.Sprintf("Rent invoice - Room %s", roomNumber),
		Body: fmt.Sprintf(
			"Hi %s,\n\nRent of %.2f for room %s is now due.\n\n%s\n",
			tenantName, rent, roomNumber, propertyName),
	}
}

// LateAlertEmail: sent on the late-alert days for Late/Overdue tenants.
func LateAlertEmail(tenantName string, roomNumber string, rent float64, status string, propertyName string) RentEmail {
	urgency := "is late"
	if strings.EqualFold(status, "Overdue") {
		urgency = "is overdue"
	}
	return RentEmail{
		Subject: fmt.Sprintf("Rent %s - Room %s", urgency, roomNumber),
		Body: fmt.Sprintf(
			"Hi %s,\n\nOur records show rent of %.2f for room %s %s. Please arrange payment as soon as possible.\n\n%s\n",
			tenantName, rent, roomNumber, urgency, propertyName),
	}
}

// PartialBalanceEmail: sent to tenants with a partial payment on record.
func PartialBalanceEmail(tenantName string, roomNumber string, rent float64, propertyName string) RentEmail {
	return RentEmail{
		Subject: fmt.Sprintf("Outstanding balance - Room %s", roomNumber),
		Body: fmt.Sprintf(
			"Hi %s,\n\nWe received a partial payment for room %s. The remaining balance against rent of %.2f is still outstanding.\n\n%s\n",
			tenantName, roomNumber, rent, propertyName),
	}
}

// SendAdminInviteEmail sends an account setup invite email for admins.
func SendAdminInviteEmail(recipientEmail, inviteLink, name string) error {
	name = sanitizeHeader(name)
	inviteLink = sanitizeHeader(inviteLink)
	if !(strings.HasPrefix(inviteLink, "http://") || strings.HasPrefix(inviteLink, "https://")) {
		inviteLink = "https://" + strings.TrimLeft(inviteLink, "/")
	}

	body := fmt.Sprintf(
		"Hi %s,\n\nYou have been invited to the property admin tool.\n"+
			"Please set your password using the link below:\n%s\n\n"+
			"If you did not expect this invitation, you can ignore this email.\n",
		name, inviteLink,
	)
	return SendMail(recipientEmail, "You're invited to the property admin tool", body)
}
