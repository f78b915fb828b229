package snake

import (
	"strconv"

	"gridsnake/internal/core"
)

// Parameters reports the board configuration and live round values.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				intParam("cell", "Cell size", w.cfg.CellSize),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				intParam("tick_ms", "Tick (ms)", int(w.cfg.TickInterval.Milliseconds())),
				boolParam("food_avoids_body", "Food avoids body", w.cfg.FoodAvoidsBody),
			},
		},
		{
			Name: "Round",
			Params: []core.Parameter{
				intParam("score", "Score", w.Score()),
				intParam("ticks", "Ticks", w.ticks),
				stringParam("heading", "Heading", w.steering.Heading().String()),
				stringParam("phase", "Phase", w.phase.String()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
