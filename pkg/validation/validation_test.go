package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidInt(t *testing.T) {
	zero := 0
	negative := -3

	assert.False(t, IsValidInt(nil))
	assert.True(t, IsValidInt(&zero), "0 is a valid position")
	assert.True(t, IsValidInt(&negative))
}

func TestIsValidID(t *testing.T) {
	assert.False(t, IsValidID(0))
	assert.True(t, IsValidID(1))
	assert.True(t, IsValidID(42))
}

func TestIsValidIDs(t *testing.T) {
	assert.False(t, IsValidIDs(nil))
	assert.False(t, IsValidIDs([]uint{}))
	assert.False(t, IsValidIDs([]uint{1, 0, 3}))
	assert.True(t, IsValidIDs([]uint{1}))
	assert.True(t, IsValidIDs([]uint{1, 2, 3}))
}

func TestIsValidString(t *testing.T) {
	short := "ab"
	exact := "abc"
	empty := ""

	assert.False(t, IsValidString(nil, 3))
	assert.False(t, IsValidString(&short, 3))
	assert.False(t, IsValidString(&empty, 1))
	assert.True(t, IsValidString(&exact, 3))

	// minLen ต่ำกว่า 1 ใช้ 1 แทน
	assert.False(t, IsValidString(&empty, 0))
	assert.True(t, IsValidString(&exact, 0))
}
