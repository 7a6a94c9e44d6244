// Package letter resolves and renders cover letter templates.
package letter

import (
	"fmt"
	"os"
)

// LoadTemplate resolves the -cover-letter argument. A readable file path is
// read as the template; anything else is taken as literal template text.
func LoadTemplate(arg string) string {
	if arg == "" {
		return ""
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return arg
	}
	return string(data)
}

// Generate builds the cover letter for one vacancy. A non-empty custom
// template wins as-is; otherwise a short default letter referencing the
// vacancy title is produced.
func Generate(vacancyTitle, customTemplate string) string {
	if customTemplate != "" {
		return customTemplate
	}

	return fmt.Sprintf(`Здравствуйте!

Меня заинтересовала вакансия "%s".

Готов обсудить детали и ответить на ваши вопросы.

С уважением`, vacancyTitle)
}
