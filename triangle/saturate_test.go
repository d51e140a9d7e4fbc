package triangle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulSat(t *testing.T) {
	assert.Equal(t, 0, mulSat(0, math.MaxInt))
	assert.Equal(t, 12, mulSat(3, 4))
	assert.Equal(t, math.MaxInt, mulSat(math.MaxInt/2, 3))
	assert.Equal(t, math.MaxInt, mulSat(1<<40, 1<<40))
}

func TestAddSat(t *testing.T) {
	assert.Equal(t, 7, addSat(3, 4))
	assert.Equal(t, math.MaxInt, addSat(math.MaxInt-1, 2))
}
