package dealership

import "fmt"

// Status tracks the dealership account lifecycle from DMT intake to live.
type Status string

const (
	StatusDMTPending  Status = "DMT-Pending"
	StatusDMTApproved Status = "DMT-Approved"
	StatusOnboarding  Status = "Onboarding"
	StatusLive        Status = "Live"
	StatusCancelled   Status = "Cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDMTPending, StatusDMTApproved, StatusOnboarding, StatusLive, StatusCancelled:
		return true
	}
	return false
}

func (s Status) IsCancelled() bool {
	return s == StatusCancelled
}

func (s Status) String() string {
	return string(s)
}

// NewStatus creates a Status from a string with validation.
func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid dealership status: %s", s)
	}
	return status, nil
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{StatusDMTPending, StatusDMTApproved, StatusOnboarding, StatusLive, StatusCancelled}
}

// CRMProvider is the dealership's CRM system of record.
type CRMProvider string

const (
	CRMFocus        CRMProvider = "FOCUS"
	CRMCDK          CRMProvider = "CDK"
	CRMDealerOwned  CRMProvider = "DealerOwned"
	CRMDealerSocket CRMProvider = "DealerSocket"
	CRMDriveCentric CRMProvider = "DriveCentric"
	CRMElead        CRMProvider = "Elead"
	CRMMomentum     CRMProvider = "Momentum"
	CRMOpLogic      CRMProvider = "OpLogic"
	CRMTekion       CRMProvider = "Tekion"
	CRMVinSolutions CRMProvider = "VinSolutions"
)

func (p CRMProvider) IsValid() bool {
	switch p {
	case CRMFocus, CRMCDK, CRMDealerOwned, CRMDealerSocket, CRMDriveCentric,
		CRMElead, CRMMomentum, CRMOpLogic, CRMTekion, CRMVinSolutions:
		return true
	}
	return false
}

func (p CRMProvider) String() string {
	return string(p)
}

// CRMProviders returns every selectable CRM provider.
func CRMProviders() []CRMProvider {
	return []CRMProvider{
		CRMFocus, CRMCDK, CRMDealerOwned, CRMDealerSocket, CRMDriveCentric,
		CRMElead, CRMMomentum, CRMOpLogic, CRMTekion, CRMVinSolutions,
	}
}

// ReynoldsSolution is a Reynolds product the dealership has contracted.
type ReynoldsSolution string

const (
	ReynoldsXTS    ReynoldsSolution = "XTS"
	ReynoldsMMS    ReynoldsSolution = "MMS"
	ReynoldsTRU    ReynoldsSolution = "TRU"
	ReynoldsAdvSvc ReynoldsSolution = "ADVSVC"
)

func (s ReynoldsSolution) IsValid() bool {
	switch s {
	case ReynoldsXTS, ReynoldsMMS, ReynoldsTRU, ReynoldsAdvSvc:
		return true
	}
	return false
}

func (s ReynoldsSolution) String() string {
	return string(s)
}

// FullpathSolution is a Fullpath product the dealership has contracted.
type FullpathSolution string

const (
	FullpathDigAds    FullpathSolution = "DigAds"
	FullpathVIN       FullpathSolution = "VIN"
	FullpathWebEngage FullpathSolution = "WEB Engage"
	FullpathDyn       FullpathSolution = "DYN"
)

func (s FullpathSolution) IsValid() bool {
	switch s {
	case FullpathDigAds, FullpathVIN, FullpathWebEngage, FullpathDyn:
		return true
	}
	return false
}

func (s FullpathSolution) String() string {
	return string(s)
}
