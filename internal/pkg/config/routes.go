package config

import (
	"github.com/BurntSushi/toml"

	"transfer-engine/internal/domain/transfer"
	"transfer-engine/internal/pkg/errs"
)

// RouteCatalog resolves per-route constraints and per-vehicle capacities,
// falling back to platform defaults for anything not listed. This is the
// lookup collaborator the booking form consults before calling the engine;
// the engine itself only ever sees resolved values.
type RouteCatalog struct {
	defaults   transfer.RouteConstraints
	routes     map[string]transfer.RouteConstraints
	capacities map[transfer.VehicleType]transfer.VehicleCapacity
}

type catalogFile struct {
	Routes   map[string]routeSection   `toml:"routes"`
	Vehicles map[string]vehicleSection `toml:"vehicles"`
}

type routeSection struct {
	MinAdvanceHours *int     `toml:"min_advance_hours"`
	MaxAdvanceDays  *int     `toml:"max_advance_days"`
	AllowedVehicles []string `toml:"allowed_vehicles"`
	PeakHours       []string `toml:"peak_hours"`
	NightHours      []string `toml:"night_hours"`
}

type vehicleSection struct {
	MaxPassengers int `toml:"max_passengers"`
	MaxLuggage    int `toml:"max_luggage"`
}

// LoadRoutes reads a TOML route catalog. Omitted route fields inherit from
// defaults; vehicle types absent from the file keep their stock capacities.
func LoadRoutes(path string, defaults transfer.RouteConstraints) (*RouteCatalog, error) {
	var file catalogFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, errs.Wrap(err, "failed to decode route catalog")
	}
	return buildCatalog(file, defaults)
}

// ParseRoutes is LoadRoutes over in-memory TOML, used by test harnesses.
func ParseRoutes(data string, defaults transfer.RouteConstraints) (*RouteCatalog, error) {
	var file catalogFile
	if _, err := toml.Decode(data, &file); err != nil {
		return nil, errs.Wrap(err, "failed to decode route catalog")
	}
	return buildCatalog(file, defaults)
}

func buildCatalog(file catalogFile, defaults transfer.RouteConstraints) (*RouteCatalog, error) {
	catalog := &RouteCatalog{
		defaults:   defaults,
		routes:     make(map[string]transfer.RouteConstraints, len(file.Routes)),
		capacities: transfer.DefaultVehicleCapacities(),
	}

	for routeID, section := range file.Routes {
		constraints, err := section.apply(defaults)
		if err != nil {
			return nil, errs.Wrapf(err, "route %q", routeID)
		}
		catalog.routes[routeID] = constraints
	}

	for tag, section := range file.Vehicles {
		v := transfer.VehicleType(tag)
		if !v.IsValid() {
			return nil, errs.Mark(errs.New("vehicle type "+tag), ErrUnknownVehicleType)
		}
		catalog.capacities[v] = transfer.VehicleCapacity{
			Type:          v,
			MaxPassengers: section.MaxPassengers,
			MaxLuggage:    section.MaxLuggage,
		}
	}

	return catalog, nil
}

func (s routeSection) apply(base transfer.RouteConstraints) (transfer.RouteConstraints, error) {
	constraints := base
	if s.MinAdvanceHours != nil {
		constraints.MinAdvanceHours = *s.MinAdvanceHours
	}
	if s.MaxAdvanceDays != nil {
		constraints.MaxAdvanceDays = *s.MaxAdvanceDays
	}
	if s.AllowedVehicles != nil {
		vehicles, err := parseVehicles(s.AllowedVehicles)
		if err != nil {
			return transfer.RouteConstraints{}, err
		}
		constraints.AllowedVehicles = vehicles
	}
	if s.PeakHours != nil {
		windows, err := parseHourWindows(s.PeakHours)
		if err != nil {
			return transfer.RouteConstraints{}, err
		}
		constraints.PeakHours = windows
	}
	if s.NightHours != nil {
		windows, err := parseHourWindows(s.NightHours)
		if err != nil {
			return transfer.RouteConstraints{}, err
		}
		constraints.NightHours = windows
	}
	return constraints, nil
}

// ConstraintsFor returns the route's constraints, or the defaults when the
// route has no overrides.
func (c *RouteCatalog) ConstraintsFor(routeID string) transfer.RouteConstraints {
	if constraints, ok := c.routes[routeID]; ok {
		return constraints
	}
	return c.defaults
}

// CapacityFor returns the capacity record for a vehicle type.
func (c *RouteCatalog) CapacityFor(v transfer.VehicleType) (transfer.VehicleCapacity, bool) {
	capacity, ok := c.capacities[v]
	return capacity, ok
}
