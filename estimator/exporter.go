package estimator

import (
	"fmt"
	"strings"

	"github.com/sporadisk/punchout/client/timesheet"
	"github.com/sporadisk/punchout/config"
)

func LoadExporter(conf *config.ExporterConfig) (Exporter, error) {
	switch strings.ToLower(conf.Name) {
	case "timesheet":
		return TimesheetExporter(conf.Params)
	default:
		return nil, fmt.Errorf("unrecognized exporter: %s", conf.Name)
	}
}

func getParams(params map[string]string, required ...string) (map[string]string, error) {
	result := make(map[string]string)
	for _, key := range required {
		value, ok := params[key]
		if !ok {
			return nil, fmt.Errorf("missing parameter: %s", key)
		}
		result[key] = value
	}

	return result, nil
}

func TimesheetExporter(params map[string]string) (*timesheet.Client, error) {
	p, err := getParams(params, "endpoint", "applicationId", "secret", "tokenPath")
	if err != nil {
		return nil, fmt.Errorf("getParams: %w", err)
	}

	client := &timesheet.Client{
		Endpoint:      p["endpoint"],
		ApplicationID: p["applicationId"],
		ClientSecret:  p["secret"],
		TokenPath:     p["tokenPath"],
	}

	err = client.Init()
	if err != nil {
		return nil, fmt.Errorf("timesheet.Client.Init: %w", err)
	}

	return client, nil
}
