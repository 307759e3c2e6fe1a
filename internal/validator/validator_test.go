package validator

import (
	"testing"

	"github.com/acadegrade/result-service/internal/models"
)

type modeHolder struct {
	Mode models.PopulationMode `json:"mode" validate:"omitempty,population_mode"`
}

func TestPopulationModeRule(t *testing.T) {
	v := New()

	for _, mode := range []models.PopulationMode{models.ModeZeros, models.ModeAvailable, ""} {
		if err := v.ValidateStruct(&modeHolder{Mode: mode}); err != nil {
			t.Errorf("mode %q: unexpected error %v", mode, err)
		}
	}

	if err := v.ValidateStruct(&modeHolder{Mode: "sometimes"}); err == nil {
		t.Error("mode 'sometimes': expected validation error, got nil")
	}
}
