package coa

// Canonical account names used by the built-in recurring policies. They match
// the default household chart; a custom chart must provide accounts under the
// same names for the policies that reference them.
const (
	Cash               = "cash"
	EmergencyFund      = "emergency fund"
	MidtermFund        = "midterm fund"
	RothIRA            = "Roth IRA"
	AllocatedTithing   = "allocated tithing"
	AllocatedGiving    = "allocated giving"
	AllocatedLiving    = "allocated living"
	AllocatedSaving    = "allocated saving"
	OpeningBalances    = "opening balances"
	IncomeSummary      = "income summary"
	W2Income           = "w-2 income"
	InterestEarned     = "interest earned"
	NonTaxableInterest = "non-taxable interest"
	OtherIncome        = "other income"
	Tithing            = "tithing"
	TemplePatron       = "temple patron"
	MiscExpenses       = "misc expenses"
	Missionary         = "missionary"
	FederalIncomeTax   = "Federal Income Tax"
	FICA               = "FICA"
	Medicare           = "Medicare"
	Uncategorized      = "uncategorized expense"
)

// DefaultRows returns the default household chart of accounts. Envelope
// accounts ("allocated ...") are asset sub-accounts of cash: money set aside
// for a purpose but not yet disbursed.
func DefaultRows() []Row {
	return []Row{
		{"A", "1000", Cash},
		{"A", "1000.1", AllocatedTithing},
		{"A", "1000.2", AllocatedGiving},
		{"A", "1000.3", AllocatedLiving},
		{"A", "1000.4", AllocatedSaving},
		{"A", "1100", EmergencyFund},
		{"A", "1200", MidtermFund},
		{"A", "1300", RothIRA},
		{"Q", "3000", OpeningBalances},
		{"Q", "3100", IncomeSummary},
		{"R", "4000", W2Income},
		{"R", "4100", InterestEarned},
		{"R", "4200", NonTaxableInterest},
		{"R", "4900", OtherIncome},
		{"E", "5000", Tithing},
		{"E", "5100", TemplePatron},
		{"E", "5200", MiscExpenses},
		{"E", "5300", Missionary},
		{"E", "5900", Uncategorized},
		{"E", "6000", FederalIncomeTax},
		{"E", "6100", FICA},
		{"E", "6200", Medicare},
	}
}

// DefaultChart loads the default household chart.
func DefaultChart() *Chart {
	chart, _, err := Load(DefaultRows())
	if err != nil {
		panic("default chart: " + err.Error())
	}
	return chart
}
