package browser

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// PlaywrightManager owns the playwright driver and the browser process.
// Acquire once at startup, Close once at shutdown; Close must also run on
// early-return error paths.
type PlaywrightManager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
}

// NewPlaywright starts the driver and launches a headed Chromium. The login
// flow needs a visible window for the SMS step, so headless is off.
func NewPlaywright(ctx context.Context) (*PlaywrightManager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(false),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("could not launch chromium: %w", err)
	}

	return &PlaywrightManager{pw: pw, browser: browser}, nil
}

// NewContext opens a fresh browser context. Sessions are not persisted
// between runs.
func (pm *PlaywrightManager) NewContext() (playwright.BrowserContext, error) {
	return pm.browser.NewContext()
}

func (pm *PlaywrightManager) Close() error {
	if err := pm.browser.Close(); err != nil {
		return err
	}
	return pm.pw.Stop()
}
