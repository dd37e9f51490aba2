package docgen

// Placeholder tokens recognized in agreement templates. The resolver always
// produces a value for every one of these.
const (
	TokenOwnerName    = "{OWNER_NAME}"
	TokenOwnerAadhaar = "{OWNER_AADHAR}"
	TokenOwnerAddress = "{OWNER_ADDRESS}"

	TokenTenantName    = "{TENANT_NAME}"
	TokenTenantAadhaar = "{TENANT_AADHAR}"
	TokenTenantAddress = "{TENANT_ADDRESS}"

	TokenBaseRent               = "{BASE_RENT}"
	TokenBaseRentWords          = "{BASE_RENT_IN_WORDS}"
	TokenWaterMaintLabel        = "{WATER_MAINTENANCE_LABEL}"
	TokenWaterMaintAmount       = "{WATER_MAINTENANCE_AMOUNT}"
	TokenTotalRent              = "{TOTAL_RENT}"
	TokenTotalRentWords         = "{TOTAL_RENT_IN_WORDS}"
	TokenRentDueDay             = "{RENT_DUE_DAY}"
	TokenAdvanceAmount          = "{ADVANCE_AMOUNT}"
	TokenAdvanceAmountWords     = "{ADVANCE_AMOUNT_IN_WORDS}"
	TokenAgreementStart         = "{AGREEMENT_START_DATE}"
	TokenAgreementEnd           = "{AGREEMENT_END_DATE}"
	TokenAgreementStartPhrase   = "{AGREEMENT_START_DAY_PHRASE}"
	TokenAgreementDuration      = "{AGREEMENT_DURATION}"
	TokenAgreementDurationWords = "{AGREEMENT_DURATION_IN_WORDS}"
)

// Fallbacks substituted for optional fields with no value.
const (
	FallbackNotProvided        = "Not provided"
	FallbackAddressNotProvided = "Address not provided"
)
