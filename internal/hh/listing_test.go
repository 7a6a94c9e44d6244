package hh

import (
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
)

// helper start mock browser
func setupPlaywright(t *testing.T) (*playwright.Playwright, playwright.Browser, playwright.Page) {
	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("could not launch playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("could not launch browser: %v", err)
	}
	page, err := browser.NewPage()
	if err != nil {
		t.Fatalf("could not create page: %v", err)
	}
	return pw, browser, page
}

// serveHTML routes every request on the page to a fixed HTML body
func serveHTML(t *testing.T, page playwright.Page, html string) {
	err := page.Route("**/*", func(route playwright.Route) {
		route.Fulfill(playwright.RouteFulfillOptions{
			Status:      playwright.Int(200),
			ContentType: playwright.String("text/html"),
			Body:        html,
		})
	})
	if err != nil {
		t.Fatalf("could not install route: %v", err)
	}
	if _, err := page.Goto("https://hh.ru/search/vacancy?text=test"); err != nil {
		t.Fatalf("could not open mock page: %v", err)
	}
}

const mockSerpHTML = `<html><body>
<div data-qa="vacancy-serp__vacancy">
  <a data-qa="serp-item__title" href="/vacancy/101"><span data-qa="serp-item__title-text">Go Developer</span></a>
  <button data-qa="vacancy-serp__vacancy_response">Откликнуться</button>
  <span>Сейчас смотрят 5 человек</span>
</div>
<div data-qa="vacancy-serp__vacancy">
  <a data-qa="serp-item__title" href="/vacancy/102"><span data-qa="serp-item__title-text">No Apply Button</span></a>
</div>
<div data-qa="vacancy-serp__vacancy">
  <a data-qa="serp-item__title" href="/article/777"><span data-qa="serp-item__title-text">Broken Link</span></a>
  <button data-qa="vacancy-serp__vacancy_response">Откликнуться</button>
</div>
<div data-qa="vacancy-serp__vacancy">
  <a data-qa="serp-item__title" href="/vacancy/202"><span data-qa="serp-item__title-text">QA Engineer</span></a>
  <button data-qa="vacancy-serp__vacancy_response">Откликнуться</button>
</div>
<div data-qa="vacancy-serp__vacancy">
  <a data-qa="serp-item__title" href="/vacancy/303"><span data-qa="serp-item__title-text">Backend Developer</span></a>
  <button data-qa="vacancy-serp__vacancy_response">Откликнуться</button>
  <span>Сейчас смотрят 1` + " " + `234</span>
</div>
</body></html>`

func TestCollectVacancies(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	serveHTML(t, page, mockSerpHTML)

	vacancies, err := CollectVacancies(page, 10)
	assert.NoError(t, err)
	assert.Len(t, vacancies, 3, "cards without apply button or with malformed links must be skipped")

	assert.Equal(t, "101", vacancies[0].ID)
	assert.Equal(t, "Go Developer", vacancies[0].Title)
	assert.NotNil(t, vacancies[0].WatchersCount)
	assert.Equal(t, 5, *vacancies[0].WatchersCount)

	//no watchers span: placeholder text, nil count
	assert.Equal(t, "202", vacancies[1].ID)
	assert.Equal(t, watchersPlaceholder, vacancies[1].WatchersText)
	assert.Nil(t, vacancies[1].WatchersCount)

	//grouped number with nbsp: take the first digit run, not 1234
	assert.Equal(t, "303", vacancies[2].ID)
	assert.NotNil(t, vacancies[2].WatchersCount)
	assert.Equal(t, 1, *vacancies[2].WatchersCount)
}

func TestCollectVacanciesRespectsLimit(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	serveHTML(t, page, mockSerpHTML)

	vacancies, err := CollectVacancies(page, 2)
	assert.NoError(t, err)
	assert.Len(t, vacancies, 2)
	assert.Equal(t, "101", vacancies[0].ID)
	assert.Equal(t, "202", vacancies[1].ID)
}

func TestFindCardByID(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	serveHTML(t, page, mockSerpHTML)

	card := FindCardByID(page, "202")
	cnt, err := card.Count()
	assert.NoError(t, err)
	assert.Equal(t, 1, cnt)

	title, err := card.Locator(selTitleText).First().InnerText()
	assert.NoError(t, err)
	assert.Equal(t, "QA Engineer", title)

	missing := FindCardByID(page, "999")
	cnt, err = missing.Count()
	assert.NoError(t, err)
	assert.Equal(t, 0, cnt)
}

func TestScrollUntilLoadedTerminatesOnStaticPage(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	serveHTML(t, page, mockSerpHTML)

	//a static page never grows, so the stable counter must stop the loop
	ScrollUntilLoaded(page, ScrollOptions{PauseMs: 50, MaxScrolls: 10, StableRounds: 2})

	cnt, err := page.Locator(selCard).Count()
	assert.NoError(t, err)
	assert.Equal(t, 5, cnt)
}

const growingSerpHTML = `<html><body>
<div data-qa="vacancy-serp__vacancy">
  <a data-qa="serp-item__title" href="/vacancy/1"><span data-qa="serp-item__title-text">Seed</span></a>
</div>
<script>
setInterval(function () {
  var d = document.createElement('div');
  d.setAttribute('data-qa', 'vacancy-serp__vacancy');
  document.body.appendChild(d);
}, 60);
</script>
</body></html>`

func TestScrollUntilLoadedStopsAtMaxScrolls(t *testing.T) {
	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	serveHTML(t, page, growingSerpHTML)

	//the list grows on every round, so the stable counter never trips and
	//only the iteration cap can stop the loop
	start := time.Now()
	ScrollUntilLoaded(page, ScrollOptions{PauseMs: 60, MaxScrolls: 4, StableRounds: 3})
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 5*time.Second, "the cap must bound the loop")

	cnt, err := page.Locator(selCard).Count()
	assert.NoError(t, err)
	assert.Greater(t, cnt, 1, "cards kept appearing while the loader ran")
}

// integration test: run against the real site
func TestSearchAndCollect_Real(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	pw, browser, page := setupPlaywright(t)
	defer pw.Stop()
	defer browser.Close()

	err := SearchVacancies(page, "golang developer")
	assert.NoError(t, err)

	vacancies, err := CollectVacancies(page, 5)
	assert.NoError(t, err)
	assert.LessOrEqual(t, len(vacancies), 5)
	for _, v := range vacancies {
		assert.NotEmpty(t, v.ID)
	}
}
