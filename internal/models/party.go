package models

import "github.com/lbi-bank/ods-console/internal/domain"

// Customer is a personal identity record from lbi_ods.customer. Rows are
// written by the upstream core; this layer never mutates them.
type Customer struct {
	CustomerID    string `json:"customer_id"`
	MSISDN        string `json:"msisdn"`
	PublicName    string `json:"public_name"`
	Status        string `json:"status"`
	TrustLevel    int    `json:"trust_level"`
	KYCProfileID  string `json:"kyc_profile_id"`
	RuleProfileID string `json:"rule_profile_id"`
	Language      string `json:"language"`
	RegisteredAt  string `json:"registered_at"` // legacy text timestamp
}

// IsActive reports whether the customer carries the active status sentinel.
func (c *Customer) IsActive() bool {
	return domain.IsPartyActive(c.Status)
}

// RegisteredAtDisplay renders the registration time, falling back to the
// raw stored value for malformed historical rows.
func (c *Customer) RegisteredAtDisplay() string {
	return domain.FormatLegacyTime(c.RegisteredAt)
}

// Organization is a business identity record from lbi_ods.organization.
type Organization struct {
	OrgID         string `json:"org_id"`
	OrgCode       string `json:"org_code"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	TrustLevel    int    `json:"trust_level"`
	KYCProfileID  string `json:"kyc_profile_id"`
	RuleProfileID string `json:"rule_profile_id"`
	ParentOrgID   string `json:"parent_org_id"`
	RegisteredAt  string `json:"registered_at"`
}

func (o *Organization) IsActive() bool {
	return domain.IsPartyActive(o.Status)
}

func (o *Organization) RegisteredAtDisplay() string {
	return domain.FormatLegacyTime(o.RegisteredAt)
}

// Operator is a staff login attached to an organization, from
// lbi_ods.operator. Operators never appear as a transaction party; the
// discriminator codes only cover customers and organizations.
type Operator struct {
	OperatorID    string `json:"operator_id"`
	OrgID         string `json:"org_id"`
	UserName      string `json:"user_name"`
	Status        string `json:"status"`
	TrustLevel    int    `json:"trust_level"`
	RuleProfileID string `json:"rule_profile_id"`
	AccessChannel string `json:"access_channel"`
	RegisteredAt  string `json:"registered_at"`
}

func (op *Operator) IsActive() bool {
	return domain.IsPartyActive(op.Status)
}
