package config

import (
	"fmt"
	"strings"

	"transfer-engine/internal/domain/transfer"
	"transfer-engine/internal/pkg/errs"

	"github.com/kelseyhightower/envconfig"
)

var (
	ErrUnknownVehicleType = errs.New("unknown vehicle type")
	ErrInvalidHourWindow  = errs.New("invalid hour window")
)

type Config struct {
	Engine EngineConfig
	Log    LogConfig
}

// EngineConfig holds the platform-wide booking rules. The defaults are the
// production values; routes may override them via the route catalog.
type EngineConfig struct {
	MinAdvanceHours int      `envconfig:"MIN_ADVANCE_BOOKING_HOURS" default:"2"`
	MaxAdvanceDays  int      `envconfig:"MAX_ADVANCE_BOOKING_DAYS" default:"30"`
	AllowedVehicles []string `envconfig:"ALLOWED_VEHICLE_TYPES" default:"sedan,suv,van,sprinter,bus,limousine"`
	PeakHours       []string `envconfig:"PEAK_HOURS" default:"07:00-09:00,17:00-19:00"`
	NightHours      []string `envconfig:"NIGHT_HOURS" default:"22:00-06:00"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errs.Wrap(err, "failed to process env config")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Engine: EngineConfig{
			MinAdvanceHours: 2,
			MaxAdvanceDays:  30,
			AllowedVehicles: []string{"sedan", "suv", "van", "sprinter", "bus", "limousine"},
			PeakHours:       []string{"07:00-09:00", "17:00-19:00"},
			NightHours:      []string{"22:00-06:00"},
		},
		Log: LogConfig{
			Level: "error",
		},
	}
}

// RouteConstraints materializes the engine config into the domain shape,
// rejecting unknown vehicle tags and malformed hour windows up front so
// the engine itself never sees them.
func (e EngineConfig) RouteConstraints() (transfer.RouteConstraints, error) {
	vehicles, err := parseVehicles(e.AllowedVehicles)
	if err != nil {
		return transfer.RouteConstraints{}, err
	}
	peak, err := parseHourWindows(e.PeakHours)
	if err != nil {
		return transfer.RouteConstraints{}, err
	}
	night, err := parseHourWindows(e.NightHours)
	if err != nil {
		return transfer.RouteConstraints{}, err
	}
	return transfer.RouteConstraints{
		MinAdvanceHours: e.MinAdvanceHours,
		MaxAdvanceDays:  e.MaxAdvanceDays,
		AllowedVehicles: vehicles,
		PeakHours:       peak,
		NightHours:      night,
	}, nil
}

func parseVehicles(tags []string) ([]transfer.VehicleType, error) {
	vehicles := make([]transfer.VehicleType, 0, len(tags))
	for _, tag := range tags {
		v := transfer.VehicleType(strings.TrimSpace(tag))
		if !v.IsValid() {
			return nil, errs.Mark(errs.New(fmt.Sprintf("vehicle type %q", tag)), ErrUnknownVehicleType)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

// parseHourWindows parses "HH:MM-HH:MM" window specs.
func parseHourWindows(specs []string) ([]transfer.HourInterval, error) {
	windows := make([]transfer.HourInterval, 0, len(specs))
	for _, spec := range specs {
		start, end, ok := strings.Cut(strings.TrimSpace(spec), "-")
		if !ok {
			return nil, errs.Mark(errs.New(fmt.Sprintf("hour window %q", spec)), ErrInvalidHourWindow)
		}
		startTime, err := transfer.NewClockTime(start)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "hour window %q", spec), ErrInvalidHourWindow)
		}
		endTime, err := transfer.NewClockTime(end)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "hour window %q", spec), ErrInvalidHourWindow)
		}
		windows = append(windows, transfer.NewHourInterval(startTime, endTime))
	}
	return windows, nil
}
