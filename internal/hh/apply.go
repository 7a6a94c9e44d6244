package hh

import (
	"log"
	"time"

	"go-hh-autoapply/utils"

	"github.com/playwright-community/playwright-go"
)

// ApplyOptions tunes the outcome polling loop.
type ApplyOptions struct {
	PollTimeout  time.Duration //deadline for one of the terminal signals to fire
	PollInterval time.Duration //sleep between signal checks
}

func DefaultApplyOptions() ApplyOptions {
	return ApplyOptions{
		PollTimeout:  6 * time.Second,
		PollInterval: 200 * time.Millisecond,
	}
}

// ClickApplyOnCard triggers the one-click apply button on a card and polls
// the page until one of the terminal signals fires or the deadline elapses.
//
// Signals are checked in fixed priority order: success toast, then the
// mandatory-cover-letter modal, then navigation away from the results page.
// A redirect can transiently coincide with an in-flight success toast, so
// the navigation check only means something once the closer signals stayed
// silent. When a redirect is detected the results page is restored before
// returning.
//
// A non-empty coverLetter is filled and submitted when the modal demands
// one; with an empty coverLetter the modal is dismissed instead.
func ClickApplyOnCard(page playwright.Page, card playwright.Locator, coverLetter string, opts ApplyOptions) Outcome {
	originURL := page.URL()
	shots := utils.NewScreenShotDebugger()

	applyBtn := card.Locator(selApplyBtn).First()
	if cnt, _ := applyBtn.Count(); cnt == 0 {
		return OutcomeNoApplyButton
	}

	card.ScrollIntoViewIfNeeded(playwright.LocatorScrollIntoViewIfNeededOptions{
		Timeout: playwright.Float(10000),
	})

	if err := applyBtn.Click(); err != nil {
		log.Printf("    ⚠️ Apply click failed: %v", err)
		return OutcomeUnknown
	}

	deadline := time.Now().Add(opts.PollTimeout)
	for time.Now().Before(deadline) {
		//1) success toast
		if cnt, _ := page.Locator(selSuccessToast).Count(); cnt > 0 {
			return OutcomeSent
		}

		//2) modal demanding a cover letter
		if isCoverLetterRequiredModal(page) {
			if coverLetter == "" {
				closeResponseModalIfOpen(page)
				return OutcomeCoverLetterRequired
			}
			if fillAndSubmitCoverLetter(page, coverLetter, 10000) {
				page.WaitForTimeout(1000)
				if cnt, _ := page.Locator(selSuccessToast).Count(); cnt > 0 {
					return OutcomeSent
				}
				//submitted, but the toast never reappeared
				return OutcomeCoverLetterFilled
			}
			closeResponseModalIfOpen(page)
			return OutcomeCoverLetterRequired
		}

		//3) redirected to an extra step
		if page.URL() != originURL {
			if isTestPage(page) {
				safeBackToResults(page, originURL, shots)
				return OutcomeTestRequired
			}
			safeBackToResults(page, originURL, shots)
			return OutcomeExtraSteps
		}

		page.WaitForTimeout(float64(opts.PollInterval.Milliseconds()))
	}

	shots.CaptureAndLog(page, "apply-unknown", "❓ No apply signal before the deadline")
	return OutcomeUnknown
}

func isCoverLetterRequiredModal(page playwright.Page) bool {
	dlg := page.Locator(selDialog).First()
	if cnt, _ := dlg.Count(); cnt == 0 {
		return false
	}
	hintCnt, _ := dlg.Locator(selRequiredHint).First().Count()
	inputCnt, _ := dlg.Locator(selLetterInput).First().Count()
	return hintCnt > 0 && inputCnt > 0
}

// isTestPage detects the "employer questions" page a redirect can land on:
// a title container plus a description telling the applicant to answer
// questions first.
func isTestPage(page playwright.Page) bool {
	if cnt, _ := page.Locator(selTestContainer).First().Count(); cnt == 0 {
		return false
	}
	cnt, _ := page.Locator(selTestDesc).First().Count()
	return cnt > 0
}

// fillAndSubmitCoverLetter fills the letter input inside the response modal
// and submits it. Confirmation is either the success toast or the modal
// going hidden. Any element failure along the way reads as false, never as
// an error.
func fillAndSubmitCoverLetter(page playwright.Page, text string, timeoutMs float64) bool {
	dlg := page.Locator(selDialog).First()
	if err := dlg.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(timeoutMs),
	}); err != nil {
		return false
	}

	input := dlg.Locator(selLetterInput).First()
	if err := input.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(timeoutMs),
	}); err != nil {
		return false
	}

	if err := input.Click(); err != nil {
		return false
	}
	if err := input.Fill(text); err != nil {
		return false
	}
	page.WaitForTimeout(500) //let the form validate

	submitBtn := dlg.Locator(`button[type="submit"]`).First()
	if cnt, _ := submitBtn.Count(); cnt == 0 {
		submitBtn = dlg.Locator(`button:has-text("Откликнуться")`).First()
	}
	if cnt, _ := submitBtn.Count(); cnt == 0 {
		log.Println("    ⚠️ Submit button not found in the response modal")
		return false
	}

	if err := submitBtn.Click(); err != nil {
		return false
	}
	page.WaitForTimeout(2000)

	if cnt, _ := page.Locator(selSuccessToast).Count(); cnt > 0 {
		return true
	}

	//the modal closing also counts as confirmation
	if err := dlg.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(3000),
	}); err == nil {
		return true
	}

	return false
}

func closeResponseModalIfOpen(page playwright.Page) {
	closeBtn := page.Locator(selModalClose).First()
	if cnt, _ := closeBtn.Count(); cnt == 0 {
		return
	}
	if err := closeBtn.Click(); err != nil {
		return
	}
	page.Locator(selDialog).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(5000),
	})
}

// safeBackToResults returns to the search results after a redirect.
// networkidle rarely settles on hh.ru, so the listing is awaited by selector
// instead. History-back is preferred; direct navigation to the origin URL is
// the fallback. A listing that never reappears is logged with a screenshot
// but does not fail the call.
func safeBackToResults(page playwright.Page, fallbackURL string, shots *utils.ScreenShotDebugger) {
	if _, err := page.GoBack(playwright.PageGoBackOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		page.Goto(fallbackURL, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		})
	}

	if _, err := page.WaitForSelector(selCard, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(15000),
	}); err != nil {
		shots.CaptureAndLog(page, "serp-recovery-failed", "🚨 Results list did not reappear after going back")
	}
}
