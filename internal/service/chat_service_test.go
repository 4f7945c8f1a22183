package service

import (
	"strings"
	"testing"

	"luxdrive/internal/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ask(env *testEnv, message string) string {
	return env.Chat.Respond(entities.ChatRequest{
		History: []entities.ChatMessage{{Role: "user", Content: message}},
	}).Content
}

func TestChatPriceQuestionDeflectsToCalculator(t *testing.T) {
	env := newTestEnv(t)

	reply := ask(env, "Quel est le prix de la McLaren ?")

	assert.Contains(t, reply, "Véhicules → Calculer le prix")
	assert.Contains(t, reply, "McLaren")
	// The assistant must never quote a figure itself.
	assert.NotContains(t, reply, "CHF")
}

func TestChatPriceQuestionUsesPageContext(t *testing.T) {
	env := newTestEnv(t)

	reply := env.Chat.Respond(entities.ChatRequest{
		History:     []entities.ChatMessage{{Role: "user", Content: "Combien ça coûte ?"}},
		VehicleSlug: "audi-r8-v8",
	}).Content

	assert.Contains(t, reply, "Audi")
	assert.Contains(t, reply, "Véhicules → Calculer le prix")
}

func TestChatGenericPriceQuestion(t *testing.T) {
	env := newTestEnv(t)

	reply := ask(env, "Quels sont vos tarifs ?")

	assert.Contains(t, reply, "Véhicules → Calculer le prix")
	assert.NotContains(t, reply, "CHF")
}

func TestChatDeterminism(t *testing.T) {
	env := newTestEnv(t)

	first := ask(env, "Quel est le prix de la McLaren ?")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ask(env, "Quel est le prix de la McLaren ?"))
	}
}

func TestChatGreetingWinsOverVehicleMention(t *testing.T) {
	env := newTestEnv(t)

	// The greeting rule sits above vehicle-info in the cascade.
	reply := ask(env, "Bonjour, je regarde la McLaren")
	assert.Equal(t, kbGreeting, reply)
}

func TestChatAvailabilityForBlockedVehicle(t *testing.T) {
	env := newTestEnv(t)
	env.Availability.Now = fixedNow("2025-06-11 09:00")

	_, err := env.Availability.AddInterval(entities.IntervalRequest{
		VehicleSlug: "audi-r8-v8", StartDate: "2025-06-10", EndDate: "2025-06-15",
	})
	require.NoError(t, err)

	reply := env.Chat.Respond(entities.ChatRequest{
		History:     []entities.ChatMessage{{Role: "user", Content: "Elle est disponible ce week-end ?"}},
		VehicleSlug: "audi-r8-v8",
	}).Content

	assert.Contains(t, reply, "réservée jusqu'au 15/06/2025")
}

func TestChatAvailabilityForFreeVehicle(t *testing.T) {
	env := newTestEnv(t)
	env.Availability.Now = fixedNow("2025-06-01 09:00")

	reply := ask(env, "La BMW est-elle dispo ?")

	assert.Contains(t, reply, "disponible")
	assert.Contains(t, reply, "BMW")
}

func TestChatAvailabilityWithoutSubjectAsksWhich(t *testing.T) {
	env := newTestEnv(t)

	reply := ask(env, "C'est disponible quand ?")
	assert.Equal(t, kbAvailabilityAsk, reply)
}

func TestChatVehicleInfo(t *testing.T) {
	env := newTestEnv(t)

	reply := ask(env, "Parle-moi de la Porsche")
	assert.Contains(t, reply, "Porsche")
	assert.Contains(t, reply, "caution")
}

func TestChatOnlyLastUserMessageMatters(t *testing.T) {
	env := newTestEnv(t)

	reply := env.Chat.Respond(entities.ChatRequest{
		History: []entities.ChatMessage{
			{Role: "user", Content: "Quel est le prix de la McLaren ?"},
			{Role: "assistant", Content: "…"},
			{Role: "user", Content: "Merci beaucoup"},
		},
	}).Content
	assert.Equal(t, kbThanks, reply)
}

func TestChatFallback(t *testing.T) {
	env := newTestEnv(t)

	reply := ask(env, "xyzzy")
	assert.Equal(t, kbFallback, reply)
	assert.NotEmpty(t, strings.TrimSpace(reply))
}

func TestChatCannedIntents(t *testing.T) {
	env := newTestEnv(t)

	cases := map[string]string{
		"Comment puis-je vous contacter ?":          kbContact,
		"Quelles sont les conditions de location ?": kbConditions,
		"Quels documents dois-je fournir ?":         kbDocuments,
		"Peut-on payer par carte ?":                 kbPayment,
		"Où se trouve votre agence ? adresse svp":   kbLocation,
	}
	for message, want := range cases {
		assert.Equal(t, want, ask(env, message), "message %q", message)
	}
}
