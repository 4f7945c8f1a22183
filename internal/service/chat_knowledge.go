package service

// Canned knowledge-base text for the assistant. The widget answers in French
// only; everything here is static copy, kept next to the rules that serve it.
const (
	kbGreeting = "Bonjour ! Je suis l'assistant LuxDrive. Je peux vous renseigner sur nos véhicules, " +
		"les prix, les disponibilités ou les conditions de location. Que puis-je faire pour vous ?"

	kbThanks = "Avec plaisir ! N'hésitez pas si vous avez d'autres questions."

	kbFarewell = "Merci de votre visite et à très bientôt chez LuxDrive !"

	kbSmallTalk = "Très bien, merci ! Je suis là pour répondre à vos questions sur la location de nos véhicules."

	kbIdentity = "Je suis l'assistant virtuel de LuxDrive. Je réponds aux questions fréquentes sur notre flotte, " +
		"les tarifs et les réservations. Pour toute demande particulière, contactez-nous directement."

	kbGenericPrice = "Nos tarifs dépendent du véhicule et de la durée choisie (24h, week-end, semaine ou mois), " +
		"kilométrage inclus. Rendez-vous dans la section Véhicules → Calculer le prix pour obtenir un devis précis."

	kbRentalSteps = "Pour louer un véhicule : choisissez-le dans la section Véhicules, calculez votre prix, " +
		"puis contactez-nous par WhatsApp ou via le formulaire pour confirmer les dates. " +
		"Une caution est demandée à la remise des clés."

	kbAvailabilityAsk = "Pour quelle voiture souhaitez-vous vérifier la disponibilité ? " +
		"Chaque page véhicule affiche aussi son calendrier de réservation."

	kbContact = "Vous pouvez nous joindre par WhatsApp au +41 79 555 01 23, par téléphone au même numéro " +
		"ou par email à contact@luxdrive.ch. Nous répondons tous les jours de 9h à 20h."

	kbConditions = "Conditions de location : 23 ans minimum, permis de conduire depuis 3 ans au moins, " +
		"caution par carte bancaire à la prise du véhicule. Les jeunes conducteurs peuvent être acceptés " +
		"avec une caution majorée, sur étude du dossier."

	kbLocation = "Nous sommes basés à Genève, avec remise possible à Lausanne. " +
		"La livraison du véhicule à votre adresse est facturée 2 CHF par kilomètre (aller-retour depuis le dépôt)."

	kbDocuments = "Pour louer, il vous faut : une pièce d'identité en cours de validité, " +
		"votre permis de conduire et un justificatif de domicile de moins de 3 mois."

	kbPayment = "Le règlement s'effectue par carte bancaire, TWINT ou espèces. " +
		"La caution est prise en empreinte de carte bancaire et restituée intégralement au retour du véhicule, " +
		"sous réserve de l'état des lieux."

	kbComparison = "Nos supercars (Audi R8, McLaren 570S) offrent des sensations maximales pour une journée " +
		"ou un week-end, tandis que nos sportives (BMW M4, Porsche 911) restent plus polyvalentes au quotidien. " +
		"Comparez les fiches dans la section Véhicules pour choisir selon votre budget et votre usage."

	kbFallback = "Je n'ai pas bien compris votre demande. Vous pouvez explorer les sections du site : " +
		"Véhicules, Calculer le prix, Louer votre voiture, ou nous contacter directement par WhatsApp."
)
