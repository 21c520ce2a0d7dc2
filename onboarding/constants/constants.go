package constants

// Version is stamped at build time with -ldflags "-X ...constants.Version=<tag>".
var Version = "latest"

const DefaultStationVendor = "stationhealth"

const (
	// StationAcceptFormat is filled in with the vendor name.
	StationAcceptFormat = "application/vnd.%s.com; version=1"
	JSONContentType     = "application/json"
)

const DefaultStationTimeoutMS = 10000
