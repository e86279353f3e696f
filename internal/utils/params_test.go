package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntOrDefault(t *testing.T) {
	assert.Equal(t, 5, ParseIntOrDefault("5", 1))
	assert.Equal(t, 1, ParseIntOrDefault("", 1))
	assert.Equal(t, 1, ParseIntOrDefault("abc", 1))
	assert.Equal(t, -2, ParseIntOrDefault("-2", 1))
}

func TestParseFloatOrNil(t *testing.T) {
	v := ParseFloatOrNil("7.5")
	require.NotNil(t, v)
	assert.Equal(t, 7.5, *v)

	assert.Nil(t, ParseFloatOrNil(""))
	assert.Nil(t, ParseFloatOrNil("high"))
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"Action", "Drama"}, SplitCSV("Action,Drama"))
	assert.Equal(t, []string{"Action", "Drama"}, SplitCSV(" Action , Drama "))
	assert.Equal(t, []string{"Action"}, SplitCSV("Action,,"))
	assert.Nil(t, SplitCSV(""))
}
