package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_WhitespaceCollapse(t *testing.T) {
	in := "Name:\tJohn  Smith\r\nTitle: Engineer   \r\nNet Pay 45000\n"
	out := Normalize(in)

	assert.Equal(t, "Name: John Smith\nTitle: Engineer\nNet Pay 45000", out)
}

func TestNormalize_BlankRunsCollapse(t *testing.T) {
	out := Normalize("a\n\n\n\n\nb")
	assert.Equal(t, "a\n\nb", out)
}

func TestNormalize_StripsSeparatorLines(t *testing.T) {
	out := Normalize("Header\n----------\nBody")
	assert.Equal(t, "Header\n\nBody", out)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \n\n  "))
}
