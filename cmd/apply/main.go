package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-hh-autoapply/internal/browser"
	"go-hh-autoapply/internal/config"
	"go-hh-autoapply/internal/hh"
	"go-hh-autoapply/internal/letter"
	"go-hh-autoapply/internal/queries"
	"go-hh-autoapply/internal/telegram"
)

// applyResult is one line of the run report written to logs/.
type applyResult struct {
	hh.Vacancy
	Outcome string `json:"outcome"`
	Hidden  bool   `json:"hidden,omitempty"`
}

type runParams struct {
	phone        string
	smsCode      string
	query        string
	coverLetter  string
	extractTexts bool
	limit        int
}

func main() {
	phone := flag.String("phone", "", "phone number for login, e.g. +79991234567")
	smsCode := flag.String("sms-code", "", "SMS code (prompted interactively when empty)")
	search := flag.String("search", "", "free-text search query")
	searchRole := flag.String("search-role", "", fmt.Sprintf("preset query role: %s", strings.Join(queries.Roles(), ", ")))
	coverLetter := flag.String("cover-letter", "", "cover letter template (file path or literal text)")
	extractTexts := flag.Bool("extract-texts", false, "fetch each vacancy's full description before applying")
	limit := flag.Int("limit", 0, "max vacancies to apply to (default from config, 10)")
	flag.Parse()

	//load config
	cfg := config.Load()

	query := *search
	if query == "" && *searchRole != "" {
		query = queries.Default(*searchRole)
		log.Printf("📋 Using preset query for role %q: %s", *searchRole, query)
	}

	coverTemplate := *coverLetter
	if coverTemplate == "" {
		coverTemplate = cfg.CoverLetterPath
	}

	params := runParams{
		phone:        *phone,
		smsCode:      *smsCode,
		query:        query,
		coverLetter:  letter.LoadTemplate(coverTemplate),
		extractTexts: *extractTexts,
		limit:        *limit,
	}
	if params.limit <= 0 {
		params.limit = cfg.Limit
	}

	if err := run(cfg, params); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func run(cfg *config.Config, params runParams) error {
	//init telegram bot when configured
	var bot *telegram.Bot
	if cfg.TelegramToken != "" {
		var err error
		bot, err = telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			return fmt.Errorf("failed to init telegram bot: %w", err)
		}
		log.Println("🤖 Telegram bot initialized.")
	}

	ctx := context.Background()

	log.Println("🚀 Starting hh.ru auto-apply...")

	pwManager, err := browser.NewPlaywright(ctx)
	if err != nil {
		return fmt.Errorf("failed to init playwright: %w", err)
	}
	defer pwManager.Close()

	browserCtx, err := pwManager.NewContext()
	if err != nil {
		return fmt.Errorf("failed to create browser context: %w", err)
	}
	defer browserCtx.Close()

	page, err := browserCtx.NewPage()
	if err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}
	log.Println("✅ Browser initialized.")

	//login
	phone := params.phone
	if phone == "" {
		phone = promptLine("Enter the phone number (e.g. +79991234567): ")
	}
	if err := hh.LoginWithPhone(page, phone, params.smsCode); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	//search
	query := params.query
	if query == "" {
		query = promptLine("Enter the search query (e.g. React Next.js разработчик): ")
	}
	if err := hh.SearchVacancies(page, query); err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	//load the full lazy list
	hh.ScrollUntilLoaded(page, hh.ScrollOptions{
		PauseMs:      cfg.ScrollPauseMs,
		MaxScrolls:   cfg.MaxScrolls,
		StableRounds: cfg.StableRounds,
	})

	//collect one-click vacancies
	vacancies, err := hh.CollectVacancies(page, params.limit)
	if err != nil {
		return fmt.Errorf("failed to collect vacancies: %w", err)
	}
	log.Printf("\n📋 One-click vacancies collected: %d", len(vacancies))

	//drop excluded titles
	if len(cfg.ExcludeKeywords) > 0 {
		kept := vacancies[:0]
		for _, v := range vacancies {
			if hh.TitleExcluded(v.Title, cfg.ExcludeKeywords) {
				log.Printf("🚫 Skipped excluded title: %s", v.Title)
				continue
			}
			kept = append(kept, v)
		}
		vacancies = kept
	}

	//optional enrichment pass
	if params.extractTexts {
		log.Println("\n📄 Extracting vacancy descriptions...")
		enriched := make([]hh.Vacancy, 0, len(vacancies))
		for _, v := range vacancies {
			v.Description = hh.ExtractVacancyText(page, v.ID)
			enriched = append(enriched, v)
		}
		vacancies = enriched
	}

	//print the plan
	log.Println("\n📝 Apply plan (one-click vacancies only):")
	for idx, v := range vacancies {
		log.Printf("%02d. %s | watchers: %s | vacancy_id=%s", idx+1, v.Title, watchersLabel(v), v.ID)
	}

	applyOpts := hh.ApplyOptions{
		PollTimeout:  time.Duration(cfg.PollTimeoutSec * float64(time.Second)),
		PollInterval: 200 * time.Millisecond,
	}

	//apply loop: one vacancy fully resolved before the next starts
	var results []applyResult
	for idx, v := range vacancies {
		log.Printf("\n[%d/%d] Applying to: %s", idx+1, len(vacancies), v.Title)
		log.Printf("    Watchers right now: %s", watchersLabel(v))

		card := hh.FindCardByID(page, v.ID)
		if cnt, _ := card.Count(); cnt == 0 {
			log.Println("    ⚠️ Card not found (the listing may have refreshed). Skipping.")
			results = append(results, applyResult{Vacancy: v, Outcome: hh.OutcomeNoApplyButton.String()})
			continue
		}

		coverLetter := letter.Generate(v.Title, params.coverLetter)

		outcome := hh.ClickApplyOnCard(page, card, coverLetter, applyOpts)
		result := applyResult{Vacancy: v, Outcome: outcome.String()}

		if bot != nil {
			if err := bot.SendOutcome(v, outcome); err != nil {
				log.Printf("    ⚠️ Failed to report to Telegram: %v", err)
			}
		}

		if outcome.Succeeded() {
			if outcome == hh.OutcomeSent {
				log.Println("    ✅ Application sent.")
			} else {
				log.Println("    ✅ Application sent with a cover letter.")
			}
			results = append(results, result)
			browser.MouseJiggle(page)
			browser.RandomDelay(800, 2000)
			continue
		}

		//hide everything that did not go through, so it stops resurfacing
		cardAgain := hh.FindCardByID(page, v.ID)
		if cnt, _ := cardAgain.Count(); cnt > 0 {
			result.Hidden = hh.HideVacancyCard(page, cardAgain, 5000)
			if result.Hidden {
				log.Println("    🫥 Vacancy hidden.")
			} else {
				log.Println("    ⚠️ Could not hide the vacancy.")
			}
		} else {
			log.Println("    ⚠️ Card to hide not found.")
		}

		switch outcome {
		case hh.OutcomeTestRequired:
			log.Println("    🧠 Employer questions required, skipping.")
		case hh.OutcomeCoverLetterRequired:
			log.Println("    ✍️ Mandatory cover letter could not be submitted, skipping.")
		case hh.OutcomeExtraSteps:
			log.Println("    ℹ️ Extra steps required, skipping.")
		default:
			log.Printf("    ❓ Outcome: %s, skipping.", outcome)
		}

		results = append(results, result)
		browser.MouseJiggle(page)
		browser.RandomDelay(800, 2000)
	}

	saveResults(results)

	sent := 0
	for _, r := range results {
		if r.Outcome == hh.OutcomeSent.String() || r.Outcome == hh.OutcomeCoverLetterFilled.String() {
			sent++
		}
	}
	summary := fmt.Sprintf("Run finished: %d/%d applications sent.", sent, len(results))
	log.Printf("\n✅ %s", summary)
	if bot != nil {
		if err := bot.SendStatus(summary); err != nil {
			log.Printf("⚠️ Failed to send status to Telegram: %v", err)
		}
	}

	return nil
}

func promptLine(prompt string) string {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func watchersLabel(v hh.Vacancy) string {
	if v.WatchersCount == nil {
		return "—"
	}
	return fmt.Sprintf("%d", *v.WatchersCount)
}

func saveResults(results []applyResult) {
	if len(results) == 0 {
		log.Println("ℹ️ No results to save.")
		return
	}

	//create logs directory if not exists
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create logs directory: %v", err)
		return
	}

	//gen filename: apply-run-YYYY-MM-DD.json
	filename := fmt.Sprintf("apply-run-%s.json", time.Now().Format("2006-01-02"))
	filePath := filepath.Join(logDir, filename)

	data, err := json.MarshalIndent(results, "", " ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal results to JSON: %v", err)
		return
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write results file: %v", err)
		return
	}

	log.Printf("📁 Results saved to %s", filePath)
}
