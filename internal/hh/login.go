package hh

import (
	"fmt"
	"log"

	"github.com/playwright-community/playwright-go"
)

const baseURL = "https://hh.ru/"

// LoginWithPhone signs in through the phone + SMS flow. When smsCode is
// empty the code is read interactively from stdin. An already signed-in
// session short-circuits with success.
func LoginWithPhone(page playwright.Page, phone, smsCode string) error {
	if _, err := page.Goto(baseURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	}); err != nil {
		return fmt.Errorf("failed to open %s: %w", baseURL, err)
	}

	loginLink := page.GetByRole(*playwright.AriaRoleLink, playwright.PageGetByRoleOptions{
		Name: "Войти",
	}).First()
	if cnt, _ := loginLink.Count(); cnt == 0 {
		if cnt, _ := page.Locator(selProfile).Count(); cnt > 0 {
			log.Println("✅ Already signed in")
			return nil
		}
		return fmt.Errorf("login link not found")
	}
	loginLink.Click()
	page.WaitForTimeout(1000)

	//a second "Войти" button inside the auth modal
	loginBtn := page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
		Name: "Войти",
	}).First()
	if cnt, _ := loginBtn.Count(); cnt > 0 {
		loginBtn.Click()
		page.WaitForTimeout(1000)
	}

	phoneInput := page.Locator(`input[type="tel"]`).First()
	if cnt, _ := phoneInput.Count(); cnt == 0 {
		phoneInput = page.GetByRole(*playwright.AriaRoleTextbox).Nth(1)
	}
	if cnt, _ := phoneInput.Count(); cnt == 0 {
		return fmt.Errorf("phone input not found")
	}
	phoneInput.Click()
	if err := phoneInput.Fill(phone); err != nil {
		return fmt.Errorf("failed to fill phone number: %w", err)
	}
	page.WaitForTimeout(500)

	nextBtn := page.GetByRole(*playwright.AriaRoleButton, playwright.PageGetByRoleOptions{
		Name: "Дальше",
	}).First()
	if cnt, _ := nextBtn.Count(); cnt == 0 {
		nextBtn = page.Locator(`button:has-text("Дальше")`).First()
	}
	if cnt, _ := nextBtn.Count(); cnt == 0 {
		return fmt.Errorf("next button not found")
	}
	nextBtn.Click()
	page.WaitForTimeout(2000)

	if smsCode == "" {
		fmt.Print("Enter the SMS code: ")
		fmt.Scanln(&smsCode)
	}

	codeInput := page.GetByRole(*playwright.AriaRoleTextbox, playwright.PageGetByRoleOptions{
		Name: "Введите код",
	}).First()
	if cnt, _ := codeInput.Count(); cnt == 0 {
		codeInput = page.Locator(`input[type="text"]`).First()
	}
	if cnt, _ := codeInput.Count(); cnt == 0 {
		return fmt.Errorf("sms code input not found")
	}
	codeInput.Click()
	if err := codeInput.Fill(smsCode); err != nil {
		return fmt.Errorf("failed to fill sms code: %w", err)
	}
	page.WaitForTimeout(2000)

	//give the session a moment to settle before checking
	page.WaitForTimeout(3000)
	if cnt, _ := page.Locator(selProfile).Count(); cnt > 0 {
		log.Println("✅ Signed in")
		return nil
	}
	return fmt.Errorf("profile menu not visible after login")
}
