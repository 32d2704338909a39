package run

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelTime(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name  string
		level int
		bonus int
		want  int
	}{
		{"level 1 no bonus", 1, 0, 60},
		{"level 2 loses five", 2, 0, 55},
		{"level 5", 5, 0, 40},
		{"level 7 hits floor", 7, 0, 30},
		{"deep level stays floored", 30, 0, 30},
		{"time bonus shifts whole curve", 1, 15, 75},
		{"bonus delays the floor", 10, 15, 30},
		{"bonus above floor", 8, 15, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.LevelTime(tt.level, tt.bonus))
		})
	}
}
