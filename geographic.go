package gctp

// geographicInit prepares the Geographic "projection", which is the
// identity: geodetic coordinates in radians pass through unchanged.  The
// unit conversion at the pipeline ends does all the work.  Construction
// cannot fail and no cache is needed.
func geographicInit(t *transformation) error {
	t.printInfo = func() {
		reportTitle("GEOGRAPHIC")
	}
	return nil
}
