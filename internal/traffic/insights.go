package traffic

import "fmt"

// Thresholds for the insight heuristics.
const (
	concentrationThresholdPct = 50
	highBounceThresholdPct    = 70
	highVolumeThreshold       = 1_000_000
	searchRelianceThreshold   = 60
)

// DeriveInsights produces a short ordered list of observations a BDR can
// act on. Three observations are contractual: a "no-data" insight when the
// site has zero visits (the estimate cannot be trusted), a "concentration"
// insight when the top country holds more than half the traffic, and a
// "high-bounce" insight above 70% bounce rate. Pure function, no I/O.
func DeriveInsights(profile *SiteTrafficProfile, estimate *BusinessEstimate) []Insight {
	insights := []Insight{}

	if profile.TotalVisits == 0 {
		insights = append(insights, Insight{
			Kind:                 InsightNoData,
			Priority:             PriorityHigh,
			Message:              fmt.Sprintf("Nessun traffico rilevato per %s: le stime di business non sono affidabili.", profile.Name),
			ActionableSuggestion: "Verifica manualmente il sito prima della chiamata; non citare volumi di traffico.",
		})
	}

	if len(profile.Countries) > 0 {
		top := profile.Countries[0]
		if top.SharePercent > concentrationThresholdPct {
			insights = append(insights, Insight{
				Kind:     InsightConcentration,
				Priority: PriorityMedium,
				Message: fmt.Sprintf("%s concentra il %d%% del traffico in %s.",
					profile.Name, top.SharePercent, top.Name),
				ActionableSuggestion: fmt.Sprintf("Proponi l'espansione internazionale: oggi il business dipende quasi solo da %s.", top.Name),
			})
		}
	}

	if profile.BounceRatePercent > highBounceThresholdPct {
		insights = append(insights, Insight{
			Kind:     InsightHighBounce,
			Priority: PriorityMedium,
			Message: fmt.Sprintf("Bounce rate elevato (%d%%): gran parte dei visitatori abbandona subito il sito.",
				profile.BounceRatePercent),
			ActionableSuggestion: "Usa il dato come leva: un checkout e una spedizione più chiari riducono gli abbandoni.",
		})
	}

	if profile.TotalVisits >= highVolumeThreshold {
		insights = append(insights, Insight{
			Kind:     InsightHighVolume,
			Priority: PriorityMedium,
			Message: fmt.Sprintf("Oltre %d visite mensili: prospect ad alto volume (%d spedizioni stimate al mese).",
				profile.TotalVisits, estimate.MonthlyShipments),
			ActionableSuggestion: "Tratta come account enterprise: coinvolgi subito tariffe volume e account manager dedicato.",
		})
	}

	if share := profile.ChannelSharePercent[ChannelSearch]; share > searchRelianceThreshold {
		insights = append(insights, Insight{
			Kind:     InsightSearchReliance,
			Priority: PriorityLow,
			Message:  fmt.Sprintf("Il %d%% del traffico arriva dalla ricerca organica/paid.", share),
			ActionableSuggestion: "Il prospect investe in acquisizione: la conversione del traffico in ordini spediti è il suo collo di bottiglia.",
		})
	}

	return insights
}
