package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lbi-bank/ods-console/internal/models"
)

func (r *Repository) GetCustomer(ctx context.Context, customerID string) (*models.Customer, error) {
	defer observe("get_customer", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	c := &models.Customer{}
	query := `
		SELECT customer_id, msisdn, public_name, status, trust_level,
		       kyc_profile_id, rule_profile_id, language, registered_at
		FROM lbi_ods.customer
		WHERE customer_id = $1
	`
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&c.CustomerID, &c.MSISDN, &c.PublicName, &c.Status, &c.TrustLevel,
		&c.KYCProfileID, &c.RuleProfileID, &c.Language, &c.RegisteredAt,
	)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return c, nil
}

func (r *Repository) GetOrganization(ctx context.Context, orgID string) (*models.Organization, error) {
	defer observe("get_organization", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	o := &models.Organization{}
	query := `
		SELECT org_id, org_code, name, status, trust_level,
		       kyc_profile_id, rule_profile_id, parent_org_id, registered_at
		FROM lbi_ods.organization
		WHERE org_id = $1
	`
	err := r.db.QueryRow(ctx, query, orgID).Scan(
		&o.OrgID, &o.OrgCode, &o.Name, &o.Status, &o.TrustLevel,
		&o.KYCProfileID, &o.RuleProfileID, &o.ParentOrgID, &o.RegisteredAt,
	)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return o, nil
}

func (r *Repository) GetOperator(ctx context.Context, operatorID string) (*models.Operator, error) {
	defer observe("get_operator", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	op := &models.Operator{}
	query := `
		SELECT operator_id, org_id, user_name, status, trust_level,
		       rule_profile_id, access_channel, registered_at
		FROM lbi_ods.operator
		WHERE operator_id = $1
	`
	err := r.db.QueryRow(ctx, query, operatorID).Scan(
		&op.OperatorID, &op.OrgID, &op.UserName, &op.Status, &op.TrustLevel,
		&op.RuleProfileID, &op.AccessChannel, &op.RegisteredAt,
	)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}
	return op, nil
}

// GetCustomerKYC loads the 1:1 compliance record for a customer. A customer
// without a KYC row yields nil.
func (r *Repository) GetCustomerKYC(ctx context.Context, customerID string) (*models.CustomerKYC, error) {
	defer observe("get_customer_kyc", time.Now())
	ctx, cancel := r.opCtx(ctx)
	defer cancel()

	k := &models.CustomerKYC{}
	query := `
		SELECT customer_id,
		       first_name, middle_name, last_name, local_name, gender,
		       date_of_birth, place_of_birth, nationality, country_of_birth,
		       marital_status, mother_maiden_name, father_name, spouse_name,
		       email, alternate_phone, occupation, employer_name,
		       education_level, tax_number, social_security_no,
		       dependents_count, preferred_name, title,
		       country, region, district, ward, street, house_number,
		       postal_code, postal_box, city, landmark_note, residence_type,
		       residence_since, perm_country, perm_region, perm_district,
		       perm_street, perm_postal_code, mailing_same_as_res,
		       geo_latitude, geo_longitude,
		       doc_type, doc_number, doc_issuer, doc_issue_country,
		       doc_issue_date, doc_expiry_date, doc_front_image_ref,
		       doc_back_image_ref, selfie_image_ref, signature_ref,
		       second_doc_type, second_doc_number, second_doc_expiry,
		       proof_of_address, proof_of_income, verified_by, verified_at,
		       verify_channel, verify_remark,
		       risk_level, risk_score, pep_flag, sanctions_flag,
		       sanctions_list_name, adverse_media_flag, source_of_funds,
		       source_of_wealth, expected_monthly_vol, income_band,
		       business_sector, purpose_of_account, screening_ref,
		       screened_at, next_review_due, edd_required, edd_completed_at,
		       risk_remark,
		       status, submitted_at, reviewed_at, reviewed_by, review_remark,
		       source_feed, updated_at
		FROM lbi_ods.customer_kyc
		WHERE customer_id = $1
	`
	err := r.db.QueryRow(ctx, query, customerID).Scan(
		&k.CustomerID,
		&k.Identity.FirstName, &k.Identity.MiddleName, &k.Identity.LastName,
		&k.Identity.LocalName, &k.Identity.Gender, &k.Identity.DateOfBirth,
		&k.Identity.PlaceOfBirth, &k.Identity.Nationality,
		&k.Identity.CountryOfBirth, &k.Identity.MaritalStatus,
		&k.Identity.MotherMaidenName, &k.Identity.FatherName,
		&k.Identity.SpouseName, &k.Identity.Email, &k.Identity.AlternatePhone,
		&k.Identity.Occupation, &k.Identity.EmployerName,
		&k.Identity.EducationLevel, &k.Identity.TaxNumber,
		&k.Identity.SocialSecurityNo, &k.Identity.DependentsCount,
		&k.Identity.PreferredName, &k.Identity.Title,
		&k.Address.Country, &k.Address.Region, &k.Address.District,
		&k.Address.Ward, &k.Address.Street, &k.Address.HouseNumber,
		&k.Address.PostalCode, &k.Address.PostalBox, &k.Address.City,
		&k.Address.LandmarkNote, &k.Address.ResidenceType,
		&k.Address.ResidenceSince, &k.Address.PermCountry,
		&k.Address.PermRegion, &k.Address.PermDistrict, &k.Address.PermStreet,
		&k.Address.PermPostalCode, &k.Address.MailingSameAsRes,
		&k.Address.GeoLatitude, &k.Address.GeoLongitude,
		&k.Document.DocType, &k.Document.DocNumber, &k.Document.DocIssuer,
		&k.Document.DocIssueCountry, &k.Document.DocIssueDate,
		&k.Document.DocExpiryDate, &k.Document.DocFrontImageRef,
		&k.Document.DocBackImageRef, &k.Document.SelfieImageRef,
		&k.Document.SignatureRef, &k.Document.SecondDocType,
		&k.Document.SecondDocNumber, &k.Document.SecondDocExpiry,
		&k.Document.ProofOfAddress, &k.Document.ProofOfIncome,
		&k.Document.VerifiedBy, &k.Document.VerifiedAt,
		&k.Document.VerifyChannel, &k.Document.VerifyRemark,
		&k.Risk.RiskLevel, &k.Risk.RiskScore, &k.Risk.PEPFlag,
		&k.Risk.SanctionsFlag, &k.Risk.SanctionsListName,
		&k.Risk.AdverseMediaFlag, &k.Risk.SourceOfFunds,
		&k.Risk.SourceOfWealth, &k.Risk.ExpectedMonthlyVol,
		&k.Risk.IncomeBand, &k.Risk.BusinessSector, &k.Risk.PurposeOfAccount,
		&k.Risk.ScreeningRef, &k.Risk.ScreenedAt, &k.Risk.NextReviewDue,
		&k.Risk.EDDRequired, &k.Risk.EDDCompletedAt, &k.Risk.RiskRemark,
		&k.Status, &k.SubmittedAt, &k.ReviewedAt, &k.ReviewedBy,
		&k.ReviewRemark, &k.SourceFeed, &k.UpdatedAt,
	)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer kyc: %w", err)
	}
	return k, nil
}
