package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Validate(""))
	assert.NoError(t, Validate("none"))
	assert.NoError(t, Validate("#E3E9FD"))
	assert.NoError(t, Validate("steelblue"))
	assert.NoError(t, Validate("rgb(10, 20, 30)"))
	assert.Error(t, Validate("#GG0000"))
	assert.Error(t, Validate("blurple"))
}

func TestDarken(t *testing.T) {
	t.Parallel()

	got, err := Darken("#ffffff")
	assert.NoError(t, err)
	assert.Equal(t, "#e6e6e6", got)

	got, err = Darken("#000000")
	assert.NoError(t, err)
	assert.Equal(t, "#000000", got)

	_, err = Darken("nope")
	assert.Error(t, err)
}

func TestContrast(t *testing.T) {
	got, err := Contrast("#ffffff")
	assert.NoError(t, err)
	assert.Equal(t, "#0A0F25", got)

	got, err = Contrast("#0D32B2")
	assert.NoError(t, err)
	assert.Equal(t, "#FFFFFF", got)
}
