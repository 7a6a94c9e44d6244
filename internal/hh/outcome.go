package hh

// Outcome classifies what happened after triggering the apply button on a
// card. Exactly one value results per attempt; the caller never retries or
// upgrades it.
type Outcome int

const (
	//OutcomeUnknown: the poll deadline elapsed with no recognized signal
	OutcomeUnknown Outcome = iota
	//OutcomeSent: success toast confirmed
	OutcomeSent
	//OutcomeTestRequired: redirected to the employer questions page
	OutcomeTestRequired
	//OutcomeCoverLetterRequired: mandatory cover letter modal, no letter available (or submission failed)
	OutcomeCoverLetterRequired
	//OutcomeCoverLetterFilled: letter submitted but the success toast could not be reconfirmed
	OutcomeCoverLetterFilled
	//OutcomeExtraSteps: redirected somewhere other than the questions page
	OutcomeExtraSteps
	//OutcomeNoApplyButton: the card had no apply button by the time it was revisited
	OutcomeNoApplyButton
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSent:
		return "sent"
	case OutcomeTestRequired:
		return "test_required"
	case OutcomeCoverLetterRequired:
		return "cover_letter_required"
	case OutcomeCoverLetterFilled:
		return "cover_letter_filled"
	case OutcomeExtraSteps:
		return "extra_steps"
	case OutcomeNoApplyButton:
		return "no_apply_button"
	default:
		return "unknown"
	}
}

// Succeeded reports whether the application went through: either the toast
// was seen, or the letter was submitted and the modal closed without a
// reconfirmed toast.
func (o Outcome) Succeeded() bool {
	return o == OutcomeSent || o == OutcomeCoverLetterFilled
}
