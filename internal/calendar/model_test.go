package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidKind(t *testing.T) {
	for _, k := range []string{KindWatering, KindFeeding, KindTraining, KindTransplant, KindHarvest, KindCustom} {
		assert.True(t, ValidKind(k), "kind %q should be valid", k)
	}

	assert.False(t, ValidKind(""))
	assert.False(t, ValidKind("pruning"))
	assert.False(t, ValidKind("WATERING"))
}
