package archive

import (
	"fmt"
	"path"
	"strings"
)

// ParseEntryName derives the instrument and timeframe codes from an entry
// filename of the form <anything>_<anything>_<INSTRUMENT>_<TIMEFRAME>.txt.
// Segment 3 is the instrument, segment 4 (extension stripped) the
// timeframe; extra trailing segments keep the left-indexed positions.
func ParseEntryName(name string) (instrument, timeframe string, err error) {
	parts := strings.Split(path.Base(name), "_")
	if len(parts) < 4 {
		return "", "", fmt.Errorf("unexpected name format: %s", name)
	}

	instrument = parts[2]
	timeframe = strings.SplitN(parts[3], ".", 2)[0]
	return instrument, timeframe, nil
}
