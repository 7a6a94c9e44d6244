package main

import (
	"context"
	"fmt"
	"log"

	"go-hh-autoapply/internal/browser"

	"github.com/playwright-community/playwright-go"
)

// Smoke check for the browser setup: launches Chromium, opens hh.ru and
// captures a screenshot of the landing page.
func main() {
	fmt.Println("🌐 Testing browser manager...")

	ctx := context.Background()

	pm, err := browser.NewPlaywright(ctx)
	if err != nil {
		log.Fatalf("Failed to create Playwright: %v", err)
	}
	defer pm.Close()

	fmt.Println("✅ Playwright started")

	browserCtx, err := pm.NewContext()
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	defer browserCtx.Close()

	fmt.Println("✅ Browser context created")

	page, err := browserCtx.NewPage()
	if err != nil {
		log.Fatalf("Failed to create page: %v", err)
	}

	fmt.Println("🔍 Navigating to hh.ru...")
	if _, err := page.Goto("https://hh.ru/"); err != nil {
		log.Fatalf("Failed to navigate: %v", err)
	}

	title, _ := page.Title()
	fmt.Printf("✅ Page title: %s\n", title)

	_, err = page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String("hh-test.png"),
	})
	if err != nil {
		log.Printf("Failed to take screenshot: %v", err)
	} else {
		fmt.Println("📸 Screenshot saved: hh-test.png")
	}
	fmt.Println("✨ Test complete!")
}
