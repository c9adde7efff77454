package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_QuotesHostileValues(t *testing.T) {
	data, err := Table(
		[]string{"Name", "Email"},
		[][]string{
			{`Lee, Sam`, "sam@x.com"},
			{`quote "here"`, "q@x.com"},
			{"line\nbreak", "n@x.com"},
		},
	)
	require.NoError(t, err)

	want := "Name,Email\n" +
		"\"Lee, Sam\",sam@x.com\n" +
		"\"quote \"\"here\"\"\",q@x.com\n" +
		"\"line\nbreak\",n@x.com\n"
	assert.Equal(t, want, string(data))
}

func TestTable_NoRows(t *testing.T) {
	data, err := Table([]string{"Name"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Name\n", string(data))
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 23, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "users-2026-08-23.csv", Filename("users", now))
}
