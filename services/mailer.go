package services

import (
	"customer-app/config"
	"customer-app/models"
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// SendWelcomeEmail notifies a freshly created customer. It is best-effort:
// a missing SMTP configuration or a delivery failure is logged and never
// surfaced to the API caller.
func SendWelcomeEmail(customer *models.Customer) {
	if config.SMTPHost == "" || customer.Email == "" {
		return
	}

	subject := "Welcome, " + customer.FirstName
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Welcome aboard</h3>
				<p>Hi <strong>%s %s</strong>, your customer account has been created.</p>
				<p>This is an auto-generated email. Please do not reply.</p>
			</body>
		</html>
	`, customer.FirstName, customer.LastName)

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", customer.Email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", customer.Email, err)
	}
}
