package services

import (
	"fmt"
	"strings"

	"github.com/Mbenve9198/bdr-tool-api/internal/models"
	"github.com/Mbenve9198/bdr-tool-api/internal/traffic"
)

// Assistant system prompt, assembled per request: base persona, an
// optional mode section, the traffic data of the analyzed website and the
// knowledge-base context relevant to the conversation.

const baseSystemPrompt = `Sei un assistente AI specializzato per Business Development Representatives (BDR) di SendCloud.
Aiuti i BDR a migliorare le loro performance di vendita fornendo consigli, strategie e contenuti personalizzati.

Hai accesso a una knowledge base completa di SendCloud con informazioni su:
- Funzionalità e benefici della piattaforma
- Tariffe corrieri competitive
- Obiezioni comuni e come gestirle
- Casi studio e best practices
- Informazioni sui competitor

Rispondi sempre in italiano e usa un tono professionale ma amichevole.
Usa emoji quando appropriato per rendere la conversazione più coinvolgente.`

const coldCallSection = `

MODALITÀ CHIAMATA A FREDDO:
- Analizza il sito web fornito per identificare pain points e opportunità
- Genera hook personalizzati per chiamate a freddo usando la knowledge base
- Fornisci consigli su come gestire obiezioni comuni (usa le risposte dalla knowledge base)
- Suggerisci tariffe corrieri competitive basate sui dati reali
- Aiuta a costruire rapport con il prospect
- Crea script di chiamata strutturati e personalizzati
- Usa i dati di traffico quando disponibili per personalizzare l'approccio`

const offerGenerationSection = `

MODALITÀ GENERAZIONE OFFERTA:
- Crea offerte personalizzate per servizi di spedizione usando tariffe reali della knowledge base
- Analizza i volumi e le destinazioni per ottimizzare i prezzi
- Confronta con i prezzi attuali del cliente quando disponibili
- Suggerisci strategie di pricing competitive
- Genera template email per presentare l'offerta con tariffe specifiche
- Usa dati reali sui corrieri e servizi disponibili`

// TrafficSection renders an analysis as the prompt block the assistant
// uses to personalize cold-call scripts.
func TrafficSection(analysis *models.TrafficAnalysis) string {
	if analysis == nil || analysis.Profile == nil {
		return ""
	}
	profile := analysis.Profile

	var b strings.Builder
	b.WriteString("\n\nDATI TRAFFICO SITO WEB:\n")
	fmt.Fprintf(&b, "- URL: %s\n", profile.URL)
	fmt.Fprintf(&b, "- Nome sito: %s\n", profile.Name)
	fmt.Fprintf(&b, "- Categoria: %s\n", profile.Category)
	fmt.Fprintf(&b, "- Visite mensili: %d\n", profile.TotalVisits)
	if profile.GlobalRank != nil {
		fmt.Fprintf(&b, "- Ranking globale: %d\n", *profile.GlobalRank)
	} else {
		b.WriteString("- Ranking globale: N/A\n")
	}
	fmt.Fprintf(&b, "- Tempo sul sito: %d minuti\n", profile.TimeOnSiteMinutes)
	fmt.Fprintf(&b, "- Pagine per visita: %.1f\n", profile.PagesPerVisit)
	fmt.Fprintf(&b, "- Bounce rate: %d%%\n", profile.BounceRatePercent)

	b.WriteString("\nDISTRIBUZIONE GEOGRAFICA:\n")
	countries := profile.Countries
	if len(countries) > 5 {
		countries = countries[:5]
	}
	if len(countries) == 0 {
		b.WriteString("- N/A\n")
	}
	for _, country := range countries {
		fmt.Fprintf(&b, "- %s: %d%% (%d visite)\n", country.Name, country.SharePercent, country.EstimatedVisits)
	}

	b.WriteString("\nFONTI DI TRAFFICO:\n")
	shares := profile.ChannelSharePercent
	fmt.Fprintf(&b, "- Ricerca: %d%%\n", shares[traffic.ChannelSearch])
	fmt.Fprintf(&b, "- Diretto: %d%%\n", shares[traffic.ChannelDirect])
	fmt.Fprintf(&b, "- Social: %d%%\n", shares[traffic.ChannelSocial])
	fmt.Fprintf(&b, "- Referral: %d%%\n", shares[traffic.ChannelReferral])

	if estimate := analysis.Estimate; estimate != nil {
		b.WriteString("\nSTIME BUSINESS:\n")
		fmt.Fprintf(&b, "- Ordini mensili stimati: %d\n", estimate.MonthlyOrders)
		fmt.Fprintf(&b, "- Spedizioni mensili stimate: %d\n", estimate.MonthlyShipments)
		fmt.Fprintf(&b, "- Fatturato mensile stimato: %.0f EUR\n", estimate.MonthlyRevenue)
	}

	if len(analysis.Insights) > 0 {
		b.WriteString("\nOSSERVAZIONI:\n")
		for _, insight := range analysis.Insights {
			fmt.Fprintf(&b, "- %s %s\n", insight.Message, insight.ActionableSuggestion)
		}
	}

	b.WriteString(`
ISTRUZIONI SPECIFICHE:
- Usa questi dati per creare un hook più convincente e personalizzato
- Menziona aspetti rilevanti del traffico per dimostrare preparazione
- Identifica opportunità di crescita basate sui dati geografici
- Suggerisci soluzioni SendCloud specifiche basate sul volume di traffico`)

	return b.String()
}

// knowledgeSection renders knowledge-base entries as prompt context.
func knowledgeSection(items []models.KnowledgeItem) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n\nInformazioni dalla Knowledge Base SendCloud:\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %s: %s\n", item.Title, item.Content)
	}
	return b.String()
}
