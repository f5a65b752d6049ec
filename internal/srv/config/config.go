package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jypelle/ofenpanel/internal/tool"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const paramFilename = "param.yaml"

type ServerConfig struct {
	ConfigDir      string
	DebugMode      bool
	SimulationMode bool

	*ServerParam
}

// NewServerConfig loads the embedded defaults, then overlays configDir/param.yaml
// when it exists. Nothing is written to configDir.
func NewServerConfig(configDir string, debugMode bool, simulationMode bool) (*ServerConfig, error) {
	serverConfig := &ServerConfig{
		ConfigDir:      configDir,
		DebugMode:      debugMode,
		SimulationMode: simulationMode,
		ServerParam:    &ServerParam{},
	}

	err := yaml.Unmarshal(ParamDefaultFile, serverConfig.ServerParam)
	if err != nil {
		return nil, fmt.Errorf("unable to interpret default param file: %w", err)
	}

	exists, err := tool.IsFileExists(serverConfig.GetCompleteParamFilename())
	if err != nil {
		return nil, fmt.Errorf("unable to access param file: %w", err)
	}
	if exists {
		logrus.Infof("Load param file: %s", serverConfig.GetCompleteParamFilename())
		rawConfig, err := os.ReadFile(serverConfig.GetCompleteParamFilename())
		if err != nil {
			return nil, fmt.Errorf("unable to read param file: %w", err)
		}
		err = yaml.Unmarshal(rawConfig, serverConfig.ServerParam)
		if err != nil {
			return nil, fmt.Errorf("unable to interpret param file: %w", err)
		}
	} else {
		logrus.Debugf("No param file in %s, using defaults", configDir)
	}

	if err := serverConfig.ServerParam.Validate(); err != nil {
		return nil, err
	}

	return serverConfig, nil
}

func (sc *ServerConfig) GetCompleteParamFilename() string {
	return filepath.Join(sc.ConfigDir, paramFilename)
}

// GetCompleteFontFilename resolves the font file against the config folder.
// An empty result selects the embedded font.
func (sc *ServerConfig) GetCompleteFontFilename() string {
	if sc.Font.File == "" || filepath.IsAbs(sc.Font.File) {
		return sc.Font.File
	}
	return filepath.Join(sc.ConfigDir, sc.Font.File)
}
