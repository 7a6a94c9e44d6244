package hh

import (
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"
)

// SearchVacancies runs a search from the hh.ru home page and waits for the
// first result card to render.
func SearchVacancies(page playwright.Page, query string) error {
	if _, err := page.Goto(baseURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("failed to open %s: %w", baseURL, err)
	}
	page.WaitForTimeout(1000)

	searchInput := page.GetByRole(*playwright.AriaRoleTextbox, playwright.PageGetByRoleOptions{
		Name: "Профессия, должность или компания",
	}).First()
	if cnt, _ := searchInput.Count(); cnt == 0 {
		searchInput = page.Locator(selSearchArea).First()
	}
	if cnt, _ := searchInput.Count(); cnt == 0 {
		return fmt.Errorf("search input not found")
	}
	searchInput.Click()
	if err := searchInput.Fill(query); err != nil {
		return fmt.Errorf("failed to fill search query: %w", err)
	}
	page.WaitForTimeout(500)

	searchBtn := page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
		Name: "Найти",
	}).First()
	if cnt, _ := searchBtn.Count(); cnt == 0 {
		searchBtn = page.Locator(selSearchBtn).First()
	}
	if cnt, _ := searchBtn.Count(); cnt == 0 {
		searchInput.Press("Enter")
	} else {
		searchBtn.Click()
	}

	if _, err := page.WaitForSelector(selCard, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(30000),
	}); err != nil {
		return fmt.Errorf("no results rendered for %q: %w", query, err)
	}
	log.Printf("✅ Search done: %q", query)
	return nil
}
