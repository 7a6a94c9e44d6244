// Package queries holds the preset hh.ru search queries per role.
//
// Query shape: (ROLE) AND (STACK) AND (DOMAIN) NOT (BLACKLIST), where the
// blacklist keeps interns/juniors out of the results.
package queries

var reactNextJSQueries = []string{
	//base query
	`(React OR "React.js" OR Next.js OR NextJS) AND (TypeScript OR JavaScript) NOT (стажер OR intern OR junior OR "без опыта")`,

	//Next.js focus
	`("Next.js" OR NextJS OR "Next JS") AND (TypeScript OR JavaScript) AND (SSR OR "Server Side Rendering" OR "Server Components") NOT (стажер OR intern)`,

	//full frontend stack
	`(React OR "React.js" OR Next.js) AND (TypeScript OR JavaScript) AND (Redux OR Zustand OR MobX) AND (Tailwind OR "styled-components" OR CSS) NOT (стажер OR intern OR junior)`,

	//with backend
	`(React OR Next.js) AND (Node.js OR Express OR NestJS) AND (TypeScript OR JavaScript) NOT (стажер OR intern)`,

	//with mobile
	`(React OR Next.js) AND (React Native OR "React Native") AND (TypeScript OR JavaScript) NOT (стажер OR intern)`,

	//with GraphQL
	`(React OR Next.js) AND (GraphQL OR Apollo OR Relay) AND (TypeScript OR JavaScript) NOT (стажер OR intern)`,

	//with testing
	`(React OR Next.js) AND (Jest OR Vitest OR "React Testing Library" OR Cypress) AND (TypeScript OR JavaScript) NOT (стажер OR intern)`,
}

var qaLeadQueries = []string{
	`("QA Lead" OR "Lead QA" OR "Test Lead" OR "QA Team Lead" OR "Head of QA" OR "руководитель тестирования" OR "лид тестирования") AND (python OR pytest OR playwright OR selenium) NOT (стажер OR intern OR junior)`,

	`("QA Lead" OR "Lead QA") AND (python OR pytest) AND (API OR REST OR swagger) NOT (стажер OR intern OR junior)`,
}

var backendQueries = []string{
	`(Python OR "Python разработчик") AND (Django OR Flask OR FastAPI) AND (PostgreSQL OR MySQL OR MongoDB) NOT (стажер OR intern OR junior)`,

	`(Java OR "Java разработчик") AND (Spring OR Spring Boot) AND (PostgreSQL OR MySQL) NOT (стажер OR intern OR junior)`,
}

var presets = map[string][]string{
	"react_nextjs": reactNextJSQueries,
	"qa_lead":      qaLeadQueries,
	"backend":      backendQueries,
}

const fallbackRole = "react_nextjs"

// Roles lists the preset role names accepted on the command line.
func Roles() []string {
	return []string{"react_nextjs", "qa_lead", "backend"}
}

// Default returns the first preset query for a role. Unknown roles fall
// back to the react_nextjs preset.
func Default(role string) string {
	if qs, ok := presets[role]; ok {
		return qs[0]
	}
	return presets[fallbackRole][0]
}

// All returns every preset query for a role, with the same fallback as
// Default.
func All(role string) []string {
	if qs, ok := presets[role]; ok {
		return qs
	}
	return presets[fallbackRole]
}
