package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file. Durations accept either Go duration strings ("5s") or
// nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Name string `json:"name"`
	} `json:"app,omitempty"`

	Server struct {
		Host              string   `json:"host"`
		Port              int      `json:"port"`
		GRPCAddress       string   `json:"grpc_address"`
		ShutdownTimeout   Duration `json:"shutdown_timeout"`
		ReadHeaderTimeout Duration `json:"read_header_timeout"`
	} `json:"server,omitempty"`

	Log struct {
		Level    string   `json:"level"`
		Format   string   `json:"format"`
		Encoding string   `json:"encoding"`
		Output   []string `json:"output"`
	} `json:"log,omitempty"`

	CORS struct {
		Origin string `json:"origin"`
	} `json:"cors,omitempty"`

	DebugMode bool `json:"debug_mode"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name: jsonCfg.App.Name,
		},
		Server: Server{
			Host:              jsonCfg.Server.Host,
			Port:              jsonCfg.Server.Port,
			GRPCAddress:       jsonCfg.Server.GRPCAddress,
			ShutdownTimeout:   time.Duration(jsonCfg.Server.ShutdownTimeout),
			ReadHeaderTimeout: time.Duration(jsonCfg.Server.ReadHeaderTimeout),
		},
		Log: Log{
			Level:    jsonCfg.Log.Level,
			Format:   jsonCfg.Log.Format,
			Encoding: jsonCfg.Log.Encoding,
			Output:   jsonCfg.Log.Output,
		},
		CORS: CORS{
			Origin: jsonCfg.CORS.Origin,
		},
		DebugMode: jsonCfg.DebugMode,
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
