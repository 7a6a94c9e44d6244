package queries

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	for _, role := range Roles() {
		q := Default(role)
		assert.NotEmpty(t, q, "role %s must have a default query", role)
		assert.Equal(t, All(role)[0], q)
	}
}

func TestDefaultUnknownRoleFallsBack(t *testing.T) {
	assert.Equal(t, Default("react_nextjs"), Default("no_such_role"))
}

func TestAllQueriesExcludeInterns(t *testing.T) {
	//every preset carries a NOT blacklist
	for _, role := range Roles() {
		for _, q := range All(role) {
			assert.Contains(t, q, "NOT", "query for %s must blacklist something: %s", role, q)
			assert.True(t,
				strings.Contains(q, "стажер") || strings.Contains(q, "intern"),
				"query for %s must exclude interns: %s", role, q)
		}
	}
}
