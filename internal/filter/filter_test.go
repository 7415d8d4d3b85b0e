package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("a"))
	assert.Equal(t, "", Normalize("  a  "))
	assert.Equal(t, "ab", Normalize("ab"))
	assert.Equal(t, "wash", Normalize("  WaSh "))
}

func TestMatch(t *testing.T) {
	// empty term matches everything, even no fields
	assert.True(t, Match(""))
	assert.True(t, Match("", "anything"))

	assert.True(t, Match("wash", "Front-load WASHER"))
	assert.True(t, Match("rua", "Lavou Centro", "Rua das Flores 12"))
	assert.False(t, Match("dry", "Lavou Centro", "Rua das Flores 12"))
}

type row struct {
	name   string
	status string
}

func TestByTerm(t *testing.T) {
	items := []row{
		{name: "Lavou Centro"},
		{name: "Lavou Norte"},
		{name: "WashPoint"},
	}
	fields := func(r row) []string { return []string{r.name} }

	got := ByTerm(items, "lavou", fields)
	assert.Len(t, got, 2)

	// short terms are treated as no filter
	got = ByTerm(items, "w", fields)
	assert.Len(t, got, 3)

	got = ByTerm(items, "nothing", fields)
	assert.Empty(t, got)

	// input slice is untouched
	assert.Len(t, items, 3)
}

func TestByStatus(t *testing.T) {
	items := []row{
		{status: "PENDING"},
		{status: "CONFIRMED"},
		{status: "PENDING"},
	}
	get := func(r row) string { return r.status }

	assert.Len(t, ByStatus(items, "pending", get), 2)
	assert.Len(t, ByStatus(items, "CONFIRMED", get), 1)
	assert.Len(t, ByStatus(items, "", get), 3)
	assert.Empty(t, ByStatus(items, "REFUSED", get))
}
