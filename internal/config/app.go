package config

type AppConfig struct {
	Server   ServerConfig
	Log      LogConfig
	Playback PlaybackConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	serverCfg, err := LoadServer()
	if err != nil {
		return AppConfig{}, err
	}
	playbackCfg, err := LoadPlayback()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Server:   serverCfg,
		Log:      logCfg,
		Playback: playbackCfg,
	}, nil
}
