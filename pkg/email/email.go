package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// InvoiceLine is one row of the invoice table in an email
type InvoiceLine struct {
	Name      string
	Quantity  int
	Rate      string
	GSTAmount string
	Total     string
}

// InvoiceEmailData feeds the single-invoice email template
type InvoiceEmailData struct {
	ResortName    string
	GSTIN         string
	InvoiceNumber string
	InvoiceDate   string
	GuestName     string
	RoomNumber    string
	Lines         []InvoiceLine
	Subtotal      string
	CGST          string
	SGST          string
	TotalAmount   string
	PaymentStatus string
}

// StatementRow is one invoice row of an aggregated statement email
type StatementRow struct {
	InvoiceNumber string
	InvoiceDate   string
	Subtotal      string
	TaxAmount     string
	TotalAmount   string
}

// StatementEmailData feeds the aggregated statement email template
type StatementEmailData struct {
	ResortName  string
	GSTIN       string
	Title       string
	GuestName   string
	Period      string
	Rows        []StatementRow
	Subtotal    string
	CGST        string
	SGST        string
	TotalAmount string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// IsConfigured reports whether SMTP credentials are present
func (s *EmailService) IsConfigured() bool {
	return s.config.SMTPHost != "" && s.config.FromEmail != ""
}

// SendInvoiceEmail sends a single invoice to the guest
func (s *EmailService) SendInvoiceEmail(toEmail string, data InvoiceEmailData) error {
	htmlContent, err := renderTemplate("invoice", invoiceTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("Invoice %s - %s", data.InvoiceNumber, data.ResortName)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// SendStatementEmail sends an aggregated statement covering several invoices
func (s *EmailService) SendStatementEmail(toEmail string, data StatementEmailData) error {
	htmlContent, err := renderTemplate("statement", statementTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("%s for %s - %s", data.Title, data.GuestName, data.ResortName)
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

func renderTemplate(name, text string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// invoiceTemplate is the HTML template for single invoice emails
const invoiceTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Invoice {{.InvoiceNumber}}</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);">
                    <tr>
                        <td style="background: #1a5d3a; padding: 32px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 26px; font-weight: 600;">{{.ResortName}}</h1>
                            {{if .GSTIN}}<p style="color: #cde8d8; margin: 8px 0 0 0; font-size: 13px;">GSTIN: {{.GSTIN}}</p>{{end}}
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 32px 30px;">
                            <h2 style="color: #1a1a2e; margin: 0 0 8px 0; font-size: 22px;">Invoice {{.InvoiceNumber}}</h2>
                            <p style="color: #718096; font-size: 14px; margin: 0 0 20px 0;">{{.InvoiceDate}}</p>

                            <p style="color: #4a5568; font-size: 15px; margin: 0 0 4px 0;"><strong>Guest:</strong> {{.GuestName}}</p>
                            {{if .RoomNumber}}<p style="color: #4a5568; font-size: 15px; margin: 0 0 20px 0;"><strong>Room:</strong> {{.RoomNumber}}</p>{{end}}

                            <table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
                                <tr style="background-color: #f8fafc;">
                                    <th style="text-align: left; padding: 10px; font-size: 13px; color: #4a5568; border-bottom: 2px solid #e2e8f0;">Item</th>
                                    <th style="text-align: right; padding: 10px; font-size: 13px; color: #4a5568; border-bottom: 2px solid #e2e8f0;">Qty</th>
                                    <th style="text-align: right; padding: 10px; font-size: 13px; color: #4a5568; border-bottom: 2px solid #e2e8f0;">Rate</th>
                                    <th style="text-align: right; padding: 10px; font-size: 13px; color: #4a5568; border-bottom: 2px solid #e2e8f0;">GST</th>
                                    <th style="text-align: right; padding: 10px; font-size: 13px; color: #4a5568; border-bottom: 2px solid #e2e8f0;">Total</th>
                                </tr>
                                {{range .Lines}}
                                <tr>
                                    <td style="padding: 10px; font-size: 14px; color: #1a1a2e; border-bottom: 1px solid #edf2f7;">{{.Name}}</td>
                                    <td style="padding: 10px; font-size: 14px; color: #1a1a2e; text-align: right; border-bottom: 1px solid #edf2f7;">{{.Quantity}}</td>
                                    <td style="padding: 10px; font-size: 14px; color: #1a1a2e; text-align: right; border-bottom: 1px solid #edf2f7;">{{.Rate}}</td>
                                    <td style="padding: 10px; font-size: 14px; color: #1a1a2e; text-align: right; border-bottom: 1px solid #edf2f7;">{{.GSTAmount}}</td>
                                    <td style="padding: 10px; font-size: 14px; color: #1a1a2e; text-align: right; border-bottom: 1px solid #edf2f7;">{{.Total}}</td>
                                </tr>
                                {{end}}
                            </table>

                            <table style="width: 100%; border-collapse: collapse;">
                                <tr>
                                    <td style="padding: 4px 10px; font-size: 14px; color: #4a5568; text-align: right;">Subtotal</td>
                                    <td style="padding: 4px 10px; font-size: 14px; color: #1a1a2e; text-align: right; width: 110px;">{{.Subtotal}}</td>
                                </tr>
                                <tr>
                                    <td style="padding: 4px 10px; font-size: 14px; color: #4a5568; text-align: right;">CGST</td>
                                    <td style="padding: 4px 10px; font-size: 14px; color: #1a1a2e; text-align: right;">{{.CGST}}</td>
                                </tr>
                                <tr>
                                    <td style="padding: 4px 10px; font-size: 14px; color: #4a5568; text-align: right;">SGST</td>
                                    <td style="padding: 4px 10px; font-size: 14px; color: #1a1a2e; text-align: right;">{{.SGST}}</td>
                                </tr>
                                <tr>
                                    <td style="padding: 8px 10px; font-size: 16px; font-weight: 600; color: #1a5d3a; text-align: right; border-top: 2px solid #e2e8f0;">Total</td>
                                    <td style="padding: 8px 10px; font-size: 16px; font-weight: 600; color: #1a5d3a; text-align: right; border-top: 2px solid #e2e8f0;">{{.TotalAmount}}</td>
                                </tr>
                            </table>

                            <p style="color: #718096; font-size: 13px; margin: 20px 0 0 0;">Payment status: {{.PaymentStatus}}</p>
                        </td>
                    </tr>
                    <tr>
                        <td style="background-color: #f8fafc; padding: 24px 30px; text-align: center; border-top: 1px solid #e2e8f0;">
                            <p style="color: #a0aec0; font-size: 13px; margin: 0;">Thank you for staying with {{.ResortName}}</p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`

// statementTemplate is the HTML template for aggregated statement emails
const statementTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);">
                    <tr>
                        <td style="background: #1a5d3a; padding: 32px 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 26px; font-weight: 600;">{{.ResortName}}</h1>
                            {{if .GSTIN}}<p style="color: #cde8d8; margin: 8px 0 0 0; font-size: 13px;">GSTIN: {{.GSTIN}}</p>{{end}}
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 32px 30px;">
                            <h2 style="color: #1a1a2e; margin: 0 0 8px 0; font-size: 22px;">{{.Title}}</h2>
                            <p style="color: #4a5568; font-size: 15px; margin: 0 0 4px 0;"><strong>Guest:</strong> {{.GuestName}}</p>
                            <p style="color: #718096; font-size: 14px; margin: 0 0 20px 0;">{{.Period}}</p>

                            <table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
                                <tr style="background-color: #f8fafc;">
                                    <th style="text-align: left; padding: 10px; font-size: 13px; color: #4a5568; border-bottom: 2px solid #e2e8f0;">Invoice</th>
                                    <th style="text-align: right; padding: 10px; font-size: 13px; color: #4a5568; border-bottom: 2px solid #e2e8f0;">Date</th>
                                    <th style="text-align: right; padding: 10px; font-size: 13px; color: #4a5568; border-bottom: 2px solid #e2e8f0;">Subtotal</th>
                                    <th style="text-align: right; padding: 10px; font-size: 13px; color: #4a5568; border-bottom: 2px solid #e2e8f0;">Tax</th>
                                    <th style="text-align: right; padding: 10px; font-size: 13px; color: #4a5568; border-bottom: 2px solid #e2e8f0;">Total</th>
                                </tr>
                                {{range .Rows}}
                                <tr>
                                    <td style="padding: 10px; font-size: 14px; color: #1a1a2e; border-bottom: 1px solid #edf2f7;">{{.InvoiceNumber}}</td>
                                    <td style="padding: 10px; font-size: 14px; color: #1a1a2e; text-align: right; border-bottom: 1px solid #edf2f7;">{{.InvoiceDate}}</td>
                                    <td style="padding: 10px; font-size: 14px; color: #1a1a2e; text-align: right; border-bottom: 1px solid #edf2f7;">{{.Subtotal}}</td>
                                    <td style="padding: 10px; font-size: 14px; color: #1a1a2e; text-align: right; border-bottom: 1px solid #edf2f7;">{{.TaxAmount}}</td>
                                    <td style="padding: 10px; font-size: 14px; color: #1a1a2e; text-align: right; border-bottom: 1px solid #edf2f7;">{{.TotalAmount}}</td>
                                </tr>
                                {{end}}
                            </table>

                            <table style="width: 100%; border-collapse: collapse;">
                                <tr>
                                    <td style="padding: 4px 10px; font-size: 14px; color: #4a5568; text-align: right;">Subtotal</td>
                                    <td style="padding: 4px 10px; font-size: 14px; color: #1a1a2e; text-align: right; width: 110px;">{{.Subtotal}}</td>
                                </tr>
                                <tr>
                                    <td style="padding: 4px 10px; font-size: 14px; color: #4a5568; text-align: right;">CGST</td>
                                    <td style="padding: 4px 10px; font-size: 14px; color: #1a1a2e; text-align: right;">{{.CGST}}</td>
                                </tr>
                                <tr>
                                    <td style="padding: 4px 10px; font-size: 14px; color: #4a5568; text-align: right;">SGST</td>
                                    <td style="padding: 4px 10px; font-size: 14px; color: #1a1a2e; text-align: right;">{{.SGST}}</td>
                                </tr>
                                <tr>
                                    <td style="padding: 8px 10px; font-size: 16px; font-weight: 600; color: #1a5d3a; text-align: right; border-top: 2px solid #e2e8f0;">Total</td>
                                    <td style="padding: 8px 10px; font-size: 16px; font-weight: 600; color: #1a5d3a; text-align: right; border-top: 2px solid #e2e8f0;">{{.TotalAmount}}</td>
                                </tr>
                            </table>
                        </td>
                    </tr>
                    <tr>
                        <td style="background-color: #f8fafc; padding: 24px 30px; text-align: center; border-top: 1px solid #e2e8f0;">
                            <p style="color: #a0aec0; font-size: 13px; margin: 0;">Thank you for staying with {{.ResortName}}</p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
