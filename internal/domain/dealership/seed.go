package dealership

// Seed returns the starter accounts used when no stored collection exists.
func Seed() []Dealership {
	return []Dealership{
		{
			ID:            "D-98213",
			AccountNumber: 10245,
			AccountName:   "North Georgia Toyota",
			Status:        StatusLive,
			GoLiveDate:    "01/15/2024",
			TermDate:      "01/15/2026",

			EnterpriseGroup: "Georgia Auto Group",
			StoreNumber:     "120",
			BranchNumber:    "01",
			ERASystemID:     4492,
			PPSysID:         8821,
			BUID:            101,
			CRMProvider:     CRMVinSolutions,
			Address:         "123 Peachtree Ln, Atlanta, GA 30301",

			WebsiteLinks: []WebsiteLink{
				{ID: "l1", URL: "https://www.northgatoyota.com", ClientID: "NGT-001"},
			},

			EquityProvider: DefaultEquityProvider,

			ReynoldsSolutions: []ReynoldsSolution{ReynoldsXTS, ReynoldsMMS},
			FullpathSolutions: []FullpathSolution{FullpathDigAds, FullpathVIN},

			DMTOrders: []DMTOrderItem{
				{ID: "o1", ReceivedDate: "01/01/2024", OrderNumber: 5521, ProductID: "p1", Price: 8275, IsActive: true},
				{ID: "o2", ReceivedDate: "01/01/2024", OrderNumber: 5521, ProductID: "p2", Price: 1750, IsActive: true},
			},

			AssignedSpecialist: "Sarah Connor",
			SalesPerson:        "Kyle Reese",
			POCName:            "Bill Lumbergh",
			POCEmail:           "bill@ngtoyota.com",
			POCPhone:           "(404) 555-0199",

			LastUpdated: "05/15/2024",
		},
		{
			ID:            "D-55123",
			AccountNumber: 55102,
			AccountName:   "Miami Lakes Automall",
			Status:        StatusOnboarding,
			GoLiveDate:    "06/01/2024",
			TermDate:      "",

			EnterpriseGroup: "Miami Motors",
			StoreNumber:     "300",
			BranchNumber:    "05",
			ERASystemID:     9921,
			CRMProvider:     CRMFocus,
			Address:         "500 Ocean Dr, Miami, FL 33101",

			WebsiteLinks: []WebsiteLink{},

			EquityProvider: "Kelly Blue Book",

			ReynoldsSolutions: []ReynoldsSolution{ReynoldsAdvSvc},
			FullpathSolutions: []FullpathSolution{FullpathWebEngage},

			DMTOrders: []DMTOrderItem{},

			AssignedSpecialist: "Tony Stark",
			SalesPerson:        "Pepper Potts",
			POCName:            "Happy Hogan",
			POCEmail:           "happy@miamilakes.com",
			POCPhone:           "(305) 555-0122",

			LastUpdated: "05/10/2024",
		},
	}
}
