package hh

import (
	"fmt"
	"log"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// ExtractVacancyText opens the vacancy page and reads its full description
// text, then restores the search results page. Returns the empty string on
// any failure; the restore step is best-effort either way.
func ExtractVacancyText(page playwright.Page, vacancyID string) string {
	originURL := page.URL()
	defer func() {
		if _, err := page.Goto(originURL, playwright.PageGotoOptions{
			WaitUntil: playwright.WaitUntilStateDomcontentloaded,
			Timeout:   playwright.Float(10000),
		}); err == nil {
			page.WaitForSelector(selCard, playwright.PageWaitForSelectorOptions{
				Timeout: playwright.Float(10000),
			})
		}
	}()

	url := fmt.Sprintf("https://hh.ru/vacancy/%s", vacancyID)
	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(15000),
	}); err != nil {
		log.Printf("    ⚠️ Failed to open vacancy %s: %v", vacancyID, err)
		return ""
	}

	if _, err := page.WaitForSelector(selDescription, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		log.Printf("    ⚠️ Description did not load for vacancy %s", vacancyID)
		return ""
	}

	text, err := page.Locator(selDescription).First().InnerText()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}
