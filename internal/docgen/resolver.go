package docgen

import (
	"math"
	"strconv"

	"rentora/internal/docgen/words"
	ownermodels "rentora/internal/owner/models"
	tenantmodels "rentora/internal/tenant/models"
)

// Overrides lets the caller substitute values the stored records lack at
// generation time without mutating them.
type Overrides struct {
	OwnerAadhaar  string
	TenantAddress string
}

// ReplacementMap maps placeholder tokens to their resolved values. It is
// always total over the token vocabulary.
type ReplacementMap map[string]string

// Resolve builds the replacement map for one agreement. Optional fields fall
// back to explicit placeholder strings so the generated document never shows
// a bare gap.
func Resolve(tenant *tenantmodels.Tenant, owner *ownermodels.Owner, ov Overrides) (ReplacementMap, error) {
	startSpan, err := words.Duration(tenant.AgreementStart, tenant.AgreementEnd)
	if err != nil {
		return nil, err
	}

	base := rupees(tenant.BaseRent)
	extra := rupees(tenant.WaterMaintenanceTotal())
	total := rupees(tenant.TotalRent())
	advance := rupees(tenant.AdvanceAmount)

	extraLabel := "Water and Maintenance Charges"
	if extra == 0 {
		extraLabel = "Additional Charges"
	}

	return ReplacementMap{
		TokenOwnerName:    owner.Name,
		TokenOwnerAadhaar: fallback(coalesce(ov.OwnerAadhaar, owner.Aadhaar), FallbackNotProvided),
		TokenOwnerAddress: fallback(owner.Address, FallbackAddressNotProvided),

		TokenTenantName:    tenant.Name,
		TokenTenantAadhaar: fallback(tenant.Aadhaar, FallbackNotProvided),
		TokenTenantAddress: fallback(coalesce(ov.TenantAddress, tenant.Address), FallbackAddressNotProvided),

		TokenBaseRent:           words.Comma(base),
		TokenBaseRentWords:      words.ToWords(base),
		TokenWaterMaintLabel:    extraLabel,
		TokenWaterMaintAmount:   words.Comma(extra),
		TokenTotalRent:          words.Comma(total),
		TokenTotalRentWords:     words.ToWords(total),
		TokenRentDueDay:         strconv.Itoa(tenant.RentDueDay),
		TokenAdvanceAmount:      words.Comma(advance),
		TokenAdvanceAmountWords: words.ToWords(advance),

		TokenAgreementStart:         tenant.AgreementStart.Format("02-01-2006"),
		TokenAgreementEnd:           tenant.AgreementEnd.Format("02-01-2006"),
		TokenAgreementStartPhrase:   words.DayPhrase(tenant.AgreementStart),
		TokenAgreementDuration:      startSpan.Phrase(),
		TokenAgreementDurationWords: startSpan.WordsPhrase(),
	}, nil
}

func rupees(amount float64) int64 {
	return int64(math.Round(amount))
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func fallback(value, absent string) string {
	if value == "" {
		return absent
	}
	return value
}
