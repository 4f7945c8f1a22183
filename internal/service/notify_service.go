package service

import (
	"fmt"
	"os"
	"strings"

	"luxdrive/internal/db"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	log "github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotifyService pushes operator notifications for new rental requests and
// leads. Sends are fire-and-forget: failures are logged and swallowed, they
// never surface to the visitor.
type NotifyService struct {
	OperatorEmail string
	OperatorPhone string
}

func NewNotifyService(operatorEmail, operatorPhone string) *NotifyService {
	return &NotifyService{OperatorEmail: operatorEmail, OperatorPhone: operatorPhone}
}

// NotifyNewRequest alerts the operator about a fresh "rent out your vehicle"
// submission.
func (n *NotifyService) NotifyNewRequest(request db.RentalRequest) {
	subject := fmt.Sprintf("Nouvelle demande de mise en location : %s %s", request.Brand, request.Model)
	body := fmt.Sprintf(
		"Une nouvelle demande vient d'être déposée.\n\n"+
			"Véhicule : %s %s\n"+
			"Déposant : %s (%s)\n"+
			"Téléphone : %s\n\n"+
			"%s\n\n"+
			"Connectez-vous au panneau d'administration pour l'accepter ou la refuser.",
		request.Brand, request.Model,
		request.DepositorName, request.DepositorEmail,
		request.DepositorPhone, request.Description,
	)
	sms := fmt.Sprintf("LuxDrive : nouvelle demande de location déposée (%s %s). Détails par email.",
		request.Brand, request.Model)
	n.dispatch(subject, body, sms)
}

// NotifyNewLead alerts the operator about a contact-form lead.
func (n *NotifyService) NotifyNewLead(lead db.Lead) {
	subject := fmt.Sprintf("Nouveau contact : %s", lead.Name)
	body := fmt.Sprintf(
		"Un visiteur souhaite être recontacté.\n\n"+
			"Nom : %s\n"+
			"Contact : %s\n"+
			"Véhicule : %s\n\n"+
			"%s",
		lead.Name, lead.Contact, lead.VehicleSlug, lead.Message,
	)
	sms := fmt.Sprintf("LuxDrive : nouveau contact de %s (%s).", lead.Name, lead.Contact)
	n.dispatch(subject, body, sms)
}

func (n *NotifyService) dispatch(subject, body, sms string) {
	if n.OperatorEmail != "" {
		go func() {
			if err := SendEmailWithSendGrid(n.OperatorEmail, "LuxDrive", subject, body); err != nil {
				log.WithError(err).Warn("Operator email notification failed")
			}
		}()
	}
	if n.OperatorPhone != "" {
		go func() {
			if err := SendSMS(n.OperatorPhone, sms); err != nil {
				log.WithError(err).Warn("Operator SMS notification failed")
			}
		}()
	}
}

// SendEmailWithSendGrid sends a plain-text email through SendGrid. Missing
// credentials are reported as an error so callers can log and move on.
func SendEmailWithSendGrid(toEmailAddress, toName, subject, plainTextContent string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY not set")
	}
	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL not set")
	}
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "LuxDrive"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmailAddress)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, "")

	client := sendgrid.NewSendClient(apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email via SendGrid: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

// SendSMS sends a text message through Twilio.
func SendSMS(toNumber, messageBody string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromNumber := os.Getenv("TWILIO_FROM_NUMBER")
	if accountSid == "" || authToken == "" || fromNumber == "" {
		return fmt.Errorf("Twilio credentials not fully configured")
	}
	if !strings.HasPrefix(toNumber, "+") {
		log.WithField("to", toNumber).Warn("Destination number is not in E.164 format, SMS may fail")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSid,
		Password: authToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(fromNumber)
	params.SetBody(messageBody)

	if _, err := client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}
