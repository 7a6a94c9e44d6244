package hh

import (
	"fmt"
	"log"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// ScrollOptions tunes the lazy-load scroll loop.
type ScrollOptions struct {
	PauseMs      float64 //pause after each scroll-to-bottom
	MaxScrolls   int     //hard cap on iterations
	StableRounds int     //consecutive no-growth rounds before stopping
}

// DefaultScrollOptions matches the pacing hh.ru needs to settle its lazy list.
func DefaultScrollOptions() ScrollOptions {
	return ScrollOptions{PauseMs: 900, MaxScrolls: 50, StableRounds: 3}
}

// ScrollUntilLoaded repeatedly scrolls the results page to the bottom until
// the card count stops growing for opts.StableRounds consecutive rounds or
// opts.MaxScrolls is reached. Hitting the cap without stabilizing is a
// normal termination, not a failure.
func ScrollUntilLoaded(page playwright.Page, opts ScrollOptions) {
	cards := page.Locator(selCard)
	stable := 0
	prev, _ := cards.Count()

	log.Printf("📜 Scrolling to load the full list. Cards now: %d", prev)

	for i := 1; i <= opts.MaxScrolls; i++ {
		page.Evaluate("window.scrollTo(0, document.body.scrollHeight)")
		page.WaitForTimeout(opts.PauseMs)
		page.WaitForTimeout(opts.PauseMs * 0.6)

		cur, _ := cards.Count()
		if cur > prev {
			log.Printf("  Scroll %d: +%d (now %d)", i, cur-prev, cur)
			prev = cur
			stable = 0
		} else {
			stable++
			log.Printf("  Scroll %d: no new cards (now %d), stable %d/%d", i, cur, stable, opts.StableRounds)
			if stable >= opts.StableRounds {
				break
			}
		}
	}

	log.Printf("📜 Loading finished. Total cards: %d", prev)
}

// CollectVacancies walks the rendered cards in document order and returns up
// to limit postings that expose a one-click apply button. Cards without the
// button, or whose link does not match /vacancy/<digits>, are skipped.
func CollectVacancies(page playwright.Page, limit int) ([]Vacancy, error) {
	if _, err := page.WaitForSelector(selCard, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(30000),
	}); err != nil {
		return nil, fmt.Errorf("no vacancy cards appeared: %w", err)
	}

	cards, err := page.Locator(selCard).All()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate cards: %w", err)
	}

	var result []Vacancy
	for _, card := range cards {
		if len(result) >= limit {
			break
		}

		//only one-click cards qualify
		applyCount, _ := card.Locator(selApplyBtn).First().Count()
		if applyCount == 0 {
			continue
		}

		title, _ := card.Locator(selTitleText).First().InnerText()
		title = strings.TrimSpace(title)

		href, _ := card.Locator(selTitleLink).First().GetAttribute("href")
		id := vacancyIDFromHref(href)
		if id == "" {
			//malformed card shape, exclude rather than emit a blank ID
			continue
		}

		watchersText := watchersPlaceholder
		watchersLoc := card.Locator(selWatchers).First()
		if cnt, _ := watchersLoc.Count(); cnt > 0 {
			if txt, err := watchersLoc.InnerText(); err == nil {
				watchersText = strings.TrimSpace(txt)
			}
		}

		result = append(result, Vacancy{
			ID:            id,
			Title:         title,
			WatchersText:  watchersText,
			WatchersCount: ParseFirstInt(watchersText),
		})
	}

	return result, nil
}

// FindCardByID relocates a card in the live listing by its posting ID. The
// listing can reorder or drop cards between passes, so callers must check
// Count() before interacting.
func FindCardByID(page playwright.Page, vacancyID string) playwright.Locator {
	link := page.Locator(fmt.Sprintf(`a[data-qa="serp-item__title"][href*="/vacancy/%s"]`, vacancyID))
	return page.Locator(selCard, playwright.PageLocatorOptions{Has: link}).First()
}
