package gctp

import "fmt"

// MessageType classifies a message routed to the message callback.
type MessageType int

// Message types.
const (
	InfoMessage MessageType = iota
	ErrorMessage
)

// MessageFunc receives the diagnostic text produced by PrintInfo and the
// library's error reporting.  The message does not end with a newline.
type MessageFunc func(messageType MessageType, message string)

// messageCallback routes diagnostic output.  It is expected to be set at
// most once, before transformations are created.
var messageCallback MessageFunc = defaultMessageCallback

// SetMessageCallback replaces the default message handler, which writes to
// stdout.  Call it once at application startup, before any transformations
// are created or used.
func SetMessageCallback(callback MessageFunc) {
	if callback == nil {
		callback = defaultMessageCallback
	}
	messageCallback = callback
}

func defaultMessageCallback(messageType MessageType, message string) {
	if messageType == ErrorMessage {
		fmt.Printf("GCTP Error: %s\n", message)
		return
	}
	fmt.Printf("GCTP Info: %s\n", message)
}

func printInfof(format string, args ...any) {
	messageCallback(InfoMessage, fmt.Sprintf(format, args...))
}

// Report helpers used by the per-projection PrintInfo implementations.
// Angles are held in radians and reported in degrees.

const radiansToDegrees = 57.29577951308232

func reportTitle(title string) {
	printInfof("%s PROJECTION PARAMETERS:", title)
}

func reportRadii(rMajor, rMinor float64) {
	printInfof("   Semi-Major Axis of Ellipsoid:     %f meters", rMajor)
	printInfof("   Semi-Minor Axis of Ellipsoid:     %f meters", rMinor)
}

func reportCentralMeridian(lon float64) {
	printInfof("   Longitude of Central Meridian:    %f degrees", lon*radiansToDegrees)
}

func reportOriginLatitude(lat float64) {
	printInfof("   Latitude of Projection Origin:    %f degrees", lat*radiansToDegrees)
}

func reportStandardParallels(lat1, lat2 float64) {
	printInfof("   1st Standard Parallel:            %f degrees", lat1*radiansToDegrees)
	printInfof("   2nd Standard Parallel:            %f degrees", lat2*radiansToDegrees)
}

func reportFalseOffsets(falseEasting, falseNorthing float64) {
	printInfof("   False Easting:                    %f meters", falseEasting)
	printInfof("   False Northing:                   %f meters", falseNorthing)
}
