package models

import (
	"strings"

	"github.com/lbi-bank/ods-console/internal/domain"
)

// CustomerKYC is the compliance identity record from lbi_ods.customer_kyc,
// 1:1 with Customer on customer_id. The upstream table is a single wide row;
// the fields are grouped here by logical section so completion checks can
// reason per section instead of over an opaque blob.
type CustomerKYC struct {
	CustomerID string `json:"customer_id"`

	Identity KYCIdentity `json:"identity"`
	Address  KYCAddress  `json:"address"`
	Document KYCDocument `json:"document"`
	Risk     KYCRisk     `json:"risk"`

	// Record metadata.
	Status       string `json:"status"`
	SubmittedAt  string `json:"submitted_at"` // legacy text timestamp
	ReviewedAt   string `json:"reviewed_at"`
	ReviewedBy   string `json:"reviewed_by"`
	ReviewRemark string `json:"review_remark"`
	SourceFeed   string `json:"source_feed"`
	UpdatedAt    string `json:"updated_at"`
}

// KYCIdentity covers who the customer is.
type KYCIdentity struct {
	FirstName        string `json:"first_name"`
	MiddleName       string `json:"middle_name"`
	LastName         string `json:"last_name"`
	LocalName        string `json:"local_name"`
	Gender           string `json:"gender"`
	DateOfBirth      string `json:"date_of_birth"`
	PlaceOfBirth     string `json:"place_of_birth"`
	Nationality      string `json:"nationality"`
	CountryOfBirth   string `json:"country_of_birth"`
	MaritalStatus    string `json:"marital_status"`
	MotherMaidenName string `json:"mother_maiden_name"`
	FatherName       string `json:"father_name"`
	SpouseName       string `json:"spouse_name"`
	Email            string `json:"email"`
	AlternatePhone   string `json:"alternate_phone"`
	Occupation       string `json:"occupation"`
	EmployerName     string `json:"employer_name"`
	EducationLevel   string `json:"education_level"`
	TaxNumber        string `json:"tax_number"`
	SocialSecurityNo string `json:"social_security_no"`
	DependentsCount  int    `json:"dependents_count"`
	PreferredName    string `json:"preferred_name"`
	Title            string `json:"title"`
}

// KYCAddress covers residence and contact addresses.
type KYCAddress struct {
	Country          string `json:"country"`
	Region           string `json:"region"`
	District         string `json:"district"`
	Ward             string `json:"ward"`
	Street           string `json:"street"`
	HouseNumber      string `json:"house_number"`
	PostalCode       string `json:"postal_code"`
	PostalBox        string `json:"postal_box"`
	City             string `json:"city"`
	LandmarkNote     string `json:"landmark_note"`
	ResidenceType    string `json:"residence_type"`
	ResidenceSince   string `json:"residence_since"`
	PermCountry      string `json:"perm_country"`
	PermRegion       string `json:"perm_region"`
	PermDistrict     string `json:"perm_district"`
	PermStreet       string `json:"perm_street"`
	PermPostalCode   string `json:"perm_postal_code"`
	MailingSameAsRes string `json:"mailing_same_as_res"`
	GeoLatitude      string `json:"geo_latitude"`
	GeoLongitude     string `json:"geo_longitude"`
}

// KYCDocument covers the identity documents presented at registration.
type KYCDocument struct {
	DocType          string `json:"doc_type"`
	DocNumber        string `json:"doc_number"`
	DocIssuer        string `json:"doc_issuer"`
	DocIssueCountry  string `json:"doc_issue_country"`
	DocIssueDate     string `json:"doc_issue_date"`
	DocExpiryDate    string `json:"doc_expiry_date"`
	DocFrontImageRef string `json:"doc_front_image_ref"`
	DocBackImageRef  string `json:"doc_back_image_ref"`
	SelfieImageRef   string `json:"selfie_image_ref"`
	SignatureRef     string `json:"signature_ref"`
	SecondDocType    string `json:"second_doc_type"`
	SecondDocNumber  string `json:"second_doc_number"`
	SecondDocExpiry  string `json:"second_doc_expiry"`
	ProofOfAddress   string `json:"proof_of_address"`
	ProofOfIncome    string `json:"proof_of_income"`
	VerifiedBy       string `json:"verified_by"`
	VerifiedAt       string `json:"verified_at"`
	VerifyChannel    string `json:"verify_channel"`
	VerifyRemark     string `json:"verify_remark"`
}

// KYCRisk covers the compliance screening outcome.
type KYCRisk struct {
	RiskLevel          string `json:"risk_level"`
	RiskScore          int    `json:"risk_score"`
	PEPFlag            string `json:"pep_flag"`
	SanctionsFlag      string `json:"sanctions_flag"`
	SanctionsListName  string `json:"sanctions_list_name"`
	AdverseMediaFlag   string `json:"adverse_media_flag"`
	SourceOfFunds      string `json:"source_of_funds"`
	SourceOfWealth     string `json:"source_of_wealth"`
	ExpectedMonthlyVol string `json:"expected_monthly_vol"`
	IncomeBand         string `json:"income_band"`
	BusinessSector     string `json:"business_sector"`
	PurposeOfAccount   string `json:"purpose_of_account"`
	ScreeningRef       string `json:"screening_ref"`
	ScreenedAt         string `json:"screened_at"`
	NextReviewDue      string `json:"next_review_due"`
	EDDRequired        string `json:"edd_required"`
	EDDCompletedAt     string `json:"edd_completed_at"`
	RiskRemark         string `json:"risk_remark"`
}

// KYCCompletion summarizes how much of the record has been filled in.
type KYCCompletion struct {
	IdentityComplete bool `json:"identity_complete"`
	AddressComplete  bool `json:"address_complete"`
	DocumentComplete bool `json:"document_complete"`
	RiskComplete     bool `json:"risk_complete"`
	Percent          int  `json:"percent"`
}

// Complete is true only when every section passes its required-field check.
func (c KYCCompletion) Complete() bool {
	return c.IdentityComplete && c.AddressComplete && c.DocumentComplete && c.RiskComplete
}

// Completion evaluates the required fields of each section. A section is
// complete when all of its required fields are non-blank; the percent is the
// share of required fields filled across the whole record.
func (k *CustomerKYC) Completion() KYCCompletion {
	identity := requiredFields(
		k.Identity.FirstName, k.Identity.LastName, k.Identity.Gender,
		k.Identity.DateOfBirth, k.Identity.Nationality,
	)
	address := requiredFields(
		k.Address.Country, k.Address.Region, k.Address.District,
		k.Address.Street,
	)
	document := requiredFields(
		k.Document.DocType, k.Document.DocNumber, k.Document.DocIssuer,
		k.Document.DocExpiryDate,
	)
	risk := requiredFields(
		k.Risk.RiskLevel, k.Risk.SourceOfFunds, k.Risk.PurposeOfAccount,
	)

	total := identity.total + address.total + document.total + risk.total
	filled := identity.filled + address.filled + document.filled + risk.filled
	percent := 0
	if total > 0 {
		percent = filled * 100 / total
	}
	return KYCCompletion{
		IdentityComplete: identity.complete(),
		AddressComplete:  address.complete(),
		DocumentComplete: document.complete(),
		RiskComplete:     risk.complete(),
		Percent:          percent,
	}
}

// SubmittedAtDisplay renders the submission time with raw fallback.
func (k *CustomerKYC) SubmittedAtDisplay() string {
	return domain.FormatLegacyTime(k.SubmittedAt)
}

type fieldTally struct {
	total  int
	filled int
}

func (t fieldTally) complete() bool {
	return t.filled == t.total
}

func requiredFields(values ...string) fieldTally {
	tally := fieldTally{total: len(values)}
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			tally.filled++
		}
	}
	return tally
}
