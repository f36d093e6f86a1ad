package island

import (
	"strconv"

	"islandgen/internal/biome"
	"islandgen/internal/core"
)

// Parameters describes the config for display.
func (c Config) Parameters() core.ParameterSnapshot {
	th := biome.NewThresholds(c.Params.WaterLine)
	groups := []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				intParam("w", "Width", c.Width),
				intParam("h", "Height", c.Height),
				int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name: "Dirtballs",
			Params: []core.Parameter{
				intParam("radius", "Radius", c.Params.Radius),
				intParam("power", "Power rating", c.Params.PowerRating),
				intParam("impacts", "Dirtballs dropped", c.Params.NumImpacts),
			},
		},
		{
			Name:    "Biomes",
			Summary: "bands are half-open and ascend from deep water to mountain",
			Params: []core.Parameter{
				intParam("waterline", "Waterline", c.Params.WaterLine),
				derivedParam("shallow_from", "Shallow water from", th.HalfWater),
				derivedParam("grass_from", "Grass from", th.Grass),
				derivedParam("forest_from", "Forest from", th.Forest),
				derivedParam("mountain_from", "Mountain from", th.Mountain),
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

func derivedParam(key, label string, value int) core.Parameter {
	p := intParam(key, label, value)
	p.Description = "derived from the waterline"
	return p
}
