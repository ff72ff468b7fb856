package timezones

import (
	"bufio"
	_ "embed"
	"errors"
	"io"
	"slices"
	"strings"
	"sync"
)

//go:embed data/zones.txt
var zonesFile string

var embeddedZones = sync.OnceValues(func() ([]string, error) {
	return LoadZones(strings.NewReader(zonesFile))
})

// DefaultZones returns a copy of the embedded zone list, sorted.
func DefaultZones() ([]string, error) {
	zones, err := embeddedZones()
	if err != nil {
		return nil, err
	}
	return slices.Clone(zones), nil
}

// LoadZones reads one zone per line. Blank lines, '#' comments and repeated
// zones are dropped; the result is sorted.
func LoadZones(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, errors.New("timezones: missing reader")
	}
	var zones []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if zone := strings.TrimSpace(scanner.Text()); zone != "" && zone[0] != '#' {
			zones = append(zones, zone)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	slices.Sort(zones)
	return slices.Compact(zones), nil
}

// Areas returns the distinct leading segments of zones ("Europe", "America"),
// sorted. Zones without a slash are their own area.
func Areas(zones []string) []string {
	areas := make([]string, 0, 16)
	for _, zone := range zones {
		area, _, _ := strings.Cut(zone, "/")
		areas = append(areas, area)
	}
	slices.Sort(areas)
	return slices.Compact(areas)
}

// InArea keeps the zones under area, matched case-insensitively. An empty
// area keeps everything.
func InArea(zones []string, area string) []string {
	area = strings.Trim(strings.TrimSpace(area), "/")
	if area == "" {
		return zones
	}
	prefix := strings.ToLower(area) + "/"
	return slices.DeleteFunc(slices.Clone(zones), func(zone string) bool {
		return !strings.HasPrefix(strings.ToLower(zone), prefix)
	})
}

// Label turns a zone name into display text: "America/Port_of_Spain" becomes
// "America / Port of Spain".
func Label(zone string) string {
	return strings.ReplaceAll(strings.ReplaceAll(zone, "_", " "), "/", " / ")
}
