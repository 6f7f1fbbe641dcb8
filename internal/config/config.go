package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

type Application struct {
	Server   Server   `koanf:"server"`
	Frontend Frontend `koanf:"frontend"`
	Data     Data     `koanf:"data"`
	Calendar Calendar `koanf:"calendar"`
}

type Server struct {
	Addr string `koanf:"addr"`
}

type Frontend struct {
	Enabled bool   `koanf:"enabled"`
	Dir     string `koanf:"dir"`
}

type Data struct {
	Path string `koanf:"path"`
}

type Calendar struct {
	Name          string        `koanf:"name"`
	Description   string        `koanf:"description"`
	ProdID        string        `koanf:"prodid"`
	Domain        string        `koanf:"domain"`
	RefreshTTL    string        `koanf:"refreshttl"`
	Filename      string        `koanf:"filename"`
	SessionLength time.Duration `koanf:"sessionlength"`
	TitleLimit    int           `koanf:"titlelimit"`
}

func Load(path string) (Application, error) {
	var k = koanf.New(".")

	err := k.Load(structs.Provider(Application{
		Server: Server{
			Addr: ":8080",
		},
		Frontend: Frontend{
			Enabled: true,
			Dir:     "public",
		},
		Data: Data{
			Path: "data/schedule.json",
		},
		Calendar: Calendar{
			Name:          "Racing Schedule",
			ProdID:        "-//GridCal//Racing Schedule//ES",
			Domain:        "gridcal.app",
			RefreshTTL:    "PT1H",
			Filename:      "racing_schedule.ics",
			SessionLength: time.Hour,
			TitleLimit:    60,
		},
	}, "koanf"), nil)
	if err != nil {
		log.Errorf("error loading config from structs: %v", err)
		return Application{}, err
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if os.IsNotExist(err) {
			log.Infof("Config file not found at %s, using defaults and environment variables", path)
		} else {
			log.Errorf("error loading config from YAML: %v", err)
			return Application{}, err
		}
	} else {
		log.Infof("Loaded configuration from file: %s", path)
	}

	err = k.Load(env.Provider(".", env.Opt{
		Prefix: "GRIDCAL_",
		TransformFunc: func(k, v string) (string, any) {
			// Transform the key.
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, "GRIDCAL_")), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		log.Errorf("error loading config from envs: %v", err)
		return Application{}, err
	}

	var app Application
	if err := k.Unmarshal("", &app); err != nil {
		return Application{}, err
	}

	return app, nil
}
