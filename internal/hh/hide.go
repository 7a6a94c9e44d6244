package hh

import (
	"github.com/playwright-community/playwright-go"
)

// HideVacancyCard hides a posting from future listings through the card's
// blacklist icon and the confirmation item in the popup menu. Returns false
// when the icon is absent or either click fails; some UI variants simply do
// not render the control, which is a legitimate outcome rather than an
// error.
func HideVacancyCard(page playwright.Page, card playwright.Locator, timeoutMs float64) bool {
	hideIcon := card.Locator(selHideIcon).First()
	if cnt, _ := hideIcon.Count(); cnt == 0 {
		return false
	}

	card.ScrollIntoViewIfNeeded(playwright.LocatorScrollIntoViewIfNeededOptions{
		Timeout: playwright.Float(timeoutMs),
	})

	if err := hideIcon.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(timeoutMs),
	}); err != nil {
		return false
	}

	menuItem := page.Locator(selHideMenu).First()
	if err := menuItem.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(timeoutMs),
	}); err != nil {
		return false
	}
	if err := menuItem.Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(timeoutMs),
	}); err != nil {
		return false
	}

	//the card sometimes detaches right away, but not always
	card.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateDetached,
		Timeout: playwright.Float(3000),
	})

	return true
}
