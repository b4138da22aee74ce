package resource

// Seed returns the starter resources used when no stored collection exists.
func Seed() []Resource {
	return []Resource{
		{
			ID:             "R-3101",
			Title:          "FOCUS CRM Onboarding Deck",
			Date:           "04/22/2024",
			Version:        "v2.1",
			Category:       CategoryPPT,
			Scope:          ScopeExternal,
			Topics:         TopicList{"Onboarding", "FOCUS", "Training"},
			Description:    "Walkthrough deck for new dealership onboarding sessions, covers account setup through first lead handoff.",
			LinkURL:        "https://drive.example.com/focus-onboarding-deck",
			NavigationPath: "Shared Drives > DubHub > Onboarding",
			LastUpdated:    "04/22/2024",
		},
		{
			ID:             "R-3102",
			Title:          "DMT Order Intake Checklist",
			Date:           "03/10/2024",
			Version:        "v1.0",
			Category:       CategoryDOC,
			Scope:          ScopeInternal,
			Topics:         TopicList{"DMT", "Orders", "Process"},
			Description:    "Step-by-step checklist for validating incoming DMT orders before approval.",
			LinkURL:        "https://drive.example.com/dmt-intake-checklist",
			NavigationPath: "Shared Drives > DubHub > Process",
			LastUpdated:    "03/28/2024",
		},
		{
			ID:             "R-3103",
			Title:          "UCP Lead Routing Reference",
			Date:           "05/02/2024",
			Version:        "v1.3",
			Category:       CategoryPDF,
			Scope:          ScopeInternal,
			Topics:         TopicList{"UCP", "Leads", "Routing"},
			Description:    "Reference sheet mapping UCP lead sources to routing rules and escalation contacts.",
			LinkURL:        "https://drive.example.com/ucp-lead-routing",
			NavigationPath: "Shared Drives > DubHub > Reference",
			LastUpdated:    "05/02/2024",
		},
	}
}
