package service

import (
	"fmt"
	"strings"

	"luxdrive/internal/db"
	"luxdrive/internal/entities"
)

// ChatService is the scripted assistant behind the site widget. It is
// stateless: every call gets the full history plus the optional slug of the
// vehicle page the visitor came from, and only the last user message is
// matched.
//
// The rules form an ordered priority list evaluated top to bottom; the first
// match wins. The order is deliberate (a price question naming a vehicle must
// win over the generic price rule and over the vehicle-info rule), so edits
// here change observable behaviour.
type ChatService struct {
	Catalog      *CatalogService
	Availability *AvailabilityService

	rules []intentRule
}

type chatContext struct {
	message string
	context *db.Vehicle
	named   *db.Vehicle
}

// subject returns the vehicle the message is about: an explicit mention wins
// over the page context.
func (c *chatContext) subject() *db.Vehicle {
	if c.named != nil {
		return c.named
	}
	return c.context
}

type intentRule struct {
	name  string
	match func(*chatContext) bool
	reply func(*chatContext) string
}

func NewChatService(catalog *CatalogService, availability *AvailabilityService) *ChatService {
	s := &ChatService{Catalog: catalog, Availability: availability}
	s.rules = s.buildRules()
	return s
}

// Respond produces the assistant reply for the newest user message. It never
// returns empty content; the fallback rule matches everything.
func (s *ChatService) Respond(req entities.ChatRequest) entities.ChatResponse {
	ctx := &chatContext{message: lastUserMessage(req.History)}
	if req.VehicleSlug != "" {
		ctx.context = s.Catalog.Vehicle(req.VehicleSlug)
	}
	ctx.named = s.Catalog.FindByName(ctx.message)

	for _, rule := range s.rules {
		if rule.match(ctx) {
			return entities.ChatResponse{Content: rule.reply(ctx)}
		}
	}
	// Unreachable: the fallback rule always matches.
	return entities.ChatResponse{Content: kbFallback}
}

func (s *ChatService) buildRules() []intentRule {
	return []intentRule{
		{
			name:  "greeting",
			match: matchAny("bonjour", "bonsoir", "salut", "coucou", "hello"),
			reply: canned(kbGreeting),
		},
		{
			name:  "thanks",
			match: matchAny("merci"),
			reply: canned(kbThanks),
		},
		{
			name:  "farewell",
			match: matchAny("au revoir", "a bientot", "à bientôt", "bye", "bonne journée"),
			reply: canned(kbFarewell),
		},
		{
			name:  "small-talk",
			match: matchAny("ça va", "ca va", "comment vas", "comment allez"),
			reply: canned(kbSmallTalk),
		},
		{
			name:  "identity",
			match: matchAny("qui es-tu", "qui es tu", "qui êtes-vous", "qui etes vous", "t'appelles", "es-tu un robot"),
			reply: canned(kbIdentity),
		},
		{
			// A price question naming a vehicle deflects to the calculator on
			// purpose: the bot must never quote a number that could drift from
			// the canonical price tables.
			name: "price-for-vehicle",
			match: func(c *chatContext) bool {
				return hasPriceIntent(c.message) && c.subject() != nil
			},
			reply: func(c *chatContext) string {
				v := c.subject()
				return fmt.Sprintf("Pour connaître le tarif de la %s %s, rendez-vous dans la section "+
					"Véhicules → Calculer le prix : vous y verrez le prix exact selon la durée et le kilométrage.",
					v.Brand, v.Model)
			},
		},
		{
			name: "price",
			match: func(c *chatContext) bool {
				return hasPriceIntent(c.message)
			},
			reply: canned(kbGenericPrice),
		},
		{
			name:  "rental-intent",
			match: matchAny("louer", "réserver", "reserver", "réservation", "reservation"),
			reply: canned(kbRentalSteps),
		},
		{
			name: "availability",
			match: func(c *chatContext) bool {
				return containsAny(c.message, "disponib", "libre", "dispo")
			},
			reply: s.availabilityReply,
		},
		{
			name: "vehicle-info",
			match: func(c *chatContext) bool {
				return c.named != nil
			},
			reply: vehicleInfoReply,
		},
		{
			name:  "contact",
			match: matchAny("contact", "whatsapp", "téléphone", "telephone", "numéro", "numero", "email", "mail", "joindre"),
			reply: canned(kbContact),
		},
		{
			name:  "conditions",
			match: matchAny("condition", "âge", "age minimum", "permis", "éligib", "eligib", "jeune conducteur"),
			reply: canned(kbConditions),
		},
		{
			name:  "location",
			match: matchAny("adresse", "où vous trouve", "ou vous trouve", "situé", "situe", "localis", "genève", "geneve"),
			reply: canned(kbLocation),
		},
		{
			name:  "documents",
			match: matchAny("document", "papier", "pièce d'identité", "piece d'identite", "justificatif"),
			reply: canned(kbDocuments),
		},
		{
			name:  "payment",
			match: matchAny("paiement", "payer", "caution", "dépôt de garantie", "depot de garantie", "carte", "espèces", "especes", "twint"),
			reply: canned(kbPayment),
		},
		{
			name:  "comparison",
			match: matchAny("différence", "difference", "comparer", "compare", "versus", " vs "),
			reply: canned(kbComparison),
		},
		{
			name:  "fallback",
			match: func(*chatContext) bool { return true },
			reply: canned(kbFallback),
		},
	}
}

// availabilityReply delegates entirely to the ledger; the assistant never
// computes blocked dates itself.
func (s *ChatService) availabilityReply(c *chatContext) string {
	v := c.subject()
	if v == nil {
		return kbAvailabilityAsk
	}
	if until, blocked := s.Availability.BlockedUntil(v.Slug); blocked {
		return fmt.Sprintf("La %s %s est réservée jusqu'au %s inclus. "+
			"Consultez son calendrier pour les prochaines dates libres.",
			v.Brand, v.Model, until.Format("02/01/2006"))
	}
	reply := fmt.Sprintf("Bonne nouvelle : la %s %s est disponible actuellement.", v.Brand, v.Model)
	if v.CalendarURL != "" {
		reply += " Retrouvez toutes les dates sur son calendrier : " + v.CalendarURL
	}
	return reply
}

func vehicleInfoReply(c *chatContext) string {
	v := c.named
	return fmt.Sprintf("La %s %s (%d) développe %s avec une boîte %s, catégorie %s. "+
		"Elle est disponible à la location depuis %s, caution de %d CHF. "+
		"Tous les détails sont sur sa page dans la section Véhicules.",
		v.Brand, v.Model, v.Year, v.Power, v.Transmission, v.Category, v.Location, v.Deposit)
}

func hasPriceIntent(message string) bool {
	return containsAny(message, "prix", "tarif", "coûte", "coute", "combien")
}

func lastUserMessage(history []entities.ChatMessage) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == "user" {
			return strings.ToLower(strings.TrimSpace(history[i].Content))
		}
	}
	return ""
}

func containsAny(message string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(message, n) {
			return true
		}
	}
	return false
}

func matchAny(needles ...string) func(*chatContext) bool {
	return func(c *chatContext) bool {
		return containsAny(c.message, needles...)
	}
}

func canned(text string) func(*chatContext) string {
	return func(*chatContext) string { return text }
}
