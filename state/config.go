package state

// SimCfg is the simulator configuration, optionally loaded from a yaml file.
type SimCfg struct {
	MaxRounds    int    `yaml:"max_rounds,omitempty"`    // round bound; exceeding it is a reported non-convergence
	LogPath      string `yaml:"log_path,omitempty"`      // if not empty, the simulator also logs to this file
	UpdateMarker string `yaml:"update_marker,omitempty"` // line separating the pre-update and post-update phases
}

func DefaultSimCfg() SimCfg {
	return SimCfg{
		MaxRounds:    DefaultMaxRounds,
		UpdateMarker: DefaultUpdateMarker,
	}
}
