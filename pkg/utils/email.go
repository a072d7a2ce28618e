package utils

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// SendEmail sends an HTML email over SMTP. Credentials come from the
// environment; when SMTP_HOST is unset the email is logged and dropped
// so local development does not need a mail server.
func SendEmail(to []string, subject, htmlBody string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	from := os.Getenv("SMTP_SENDER")
	password := os.Getenv("SMTP_PASSWORD")

	if smtpHost == "" {
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("SMTP not configured, skipping email")
		return nil
	}
	if smtpPort == "" {
		smtpPort = "587"
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: StickrHive Academy <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		logrus.WithError(err).WithField("to", to).Error("failed to send email")
		return err
	}
	return nil
}

func emailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1A2238; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A2238; line-height: 1.6; }
			.content h2 { color: #1A2238; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #F4A261; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>STICKRHIVE ACADEMY</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 StickrHive Academy. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendVerificationEmail mails the account verification code after signup.
func SendVerificationEmail(email, name, code string) {
	subject := "Verify your StickrHive Academy account"
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Welcome to <strong>StickrHive Academy</strong>! Use the code below to verify your email address:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>If you did not create this account, you can safely ignore this email.</p>
	`, name, code)

	SendEmail([]string{email}, subject, emailTemplate("Confirm Your Email", body))
}

// SendPasswordResetEmail mails password reset instructions.
func SendPasswordResetEmail(email, name string) {
	subject := "Reset your StickrHive Academy password"
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>We received a request to reset the password for your account.</p>
		<p>If this was you, follow the instructions in your account settings. Otherwise no action is needed.</p>
	`, name)

	SendEmail([]string{email}, subject, emailTemplate("Password Reset", body))
}

// SendGradeEmail notifies a student that an assignment has been graded.
func SendGradeEmail(email, name, assignmentTitle string, percentage float64, letterGrade string) {
	subject := "Your assignment has been graded: " + assignmentTitle
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your submission for <strong>%s</strong> has been graded.</p>
		<div class="info-box">
			Score: <strong>%.1f%%</strong> &mdash; Grade: <strong>%s</strong>
		</div>
		<p>Log in to your dashboard to see the full feedback.</p>
	`, name, assignmentTitle, percentage, letterGrade)

	SendEmail([]string{email}, subject, emailTemplate("Assignment Graded", body))
}

// SendCertificateEmail congratulates a student on completing a course.
func SendCertificateEmail(email, name, courseTitle, serial string) {
	subject := "Certificate issued: " + courseTitle
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Congratulations on completing <strong>%s</strong>!</p>
		<div class="info-box">Certificate serial: <strong>%s</strong></div>
		<p>Your certificate is available from the certificates page.</p>
	`, name, courseTitle, serial)

	SendEmail([]string{email}, subject, emailTemplate("Course Completed", body))
}
