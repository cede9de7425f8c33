package thermalctl

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultControllerID is used by callers that manage only one logical
// controller instance and don't need to disambiguate state keys across
// multiple thermostat integrations sharing a process.
const DefaultControllerID = "bt"

// GroupTRVID is the literal TRV identifier "group" for a room-level group
// key (spec §4.6). Nothing in this package inserts it: BuildGroupKey puts
// whatever groupID its caller passes in the TRV position, so a key of the
// form "{controllerID}:group:t{bucket}" results only when the caller
// passes GroupTRVID as groupID.
const GroupTRVID = "group"

// bucketWidthK is the target-temperature bucket width state keys are
// derived on (spec §4.1). Two calls to Compute with target temperatures
// in the same 0.5K bucket share adaptation state; crossing a bucket
// boundary starts fresh (subject to sibling seeding, see Store).
const bucketWidthK = 0.5

// BuildKey derives the state-store key for a single controller/TRV pair at
// a given target temperature (spec §4.1): "{controllerID}:{trvID}:t{bucket}".
func BuildKey(controllerID, trvID string, targetTempC float64) string {
	return fmt.Sprintf("%s:%s:t%s", controllerID, trvID, bucketLabel(targetTempC))
}

// BuildGroupKey derives the state-store key for a room shared by multiple
// TRVs (spec §4.6), keyed on the room/group identifier rather than any
// individual TRV.
func BuildGroupKey(controllerID, groupID string, targetTempC float64) string {
	return BuildKey(controllerID, groupID, targetTempC)
}

// bucketLabel formats targetTempC's 0.5K bucket the way the reference
// implementation does, trimming a trailing ".0" so whole-degree targets
// produce keys like "t21" instead of "t21.0".
func bucketLabel(targetTempC float64) string {
	bucket := math.Round(targetTempC/bucketWidthK) * bucketWidthK
	s := strconv.FormatFloat(bucket, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// splitKey parses a key built by BuildKey back into its controller and TRV
// components, used by sibling-state seeding to find other buckets for the
// same controller/TRV pair.
func splitKey(key string) (controllerID, trvID string, ok bool) {
	parts := strings.Split(key, ":")
	if len(parts) != 3 || !strings.HasPrefix(parts[2], "t") {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// siblingPrefix returns the prefix shared by every target-bucket key for
// the same controller/TRV pair, e.g. "bt:livingroom:" for "bt:livingroom:t21".
func siblingPrefix(controllerID, trvID string) string {
	return controllerID + ":" + trvID + ":"
}
