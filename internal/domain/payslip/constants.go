package payslip

const (
	RecordStatusPending    = "pending"
	RecordStatusGenerating = "generating"
	RecordStatusSucceeded  = "succeeded"
	RecordStatusFailed     = "failed"

	DefaultEmployerName    = "ROBUST SUPPORT & SOLUTIONS"
	DefaultEmployerAddress = "Office No.501A, Fortune Tower, PECHS Block 6, Karachi, Pakistan"
	DefaultEmployerPhone   = "0311-3859635"
	DefaultCurrency        = "PKR"

	PaymentDetailsNote = "Payment made to employee's bank account."
	FooterNoteText     = "This is a system generated payslip."
)
