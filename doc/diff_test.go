package doc

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// textDiff renders the difference between two serialized documents for
// test failure messages.
func textDiff(want, got string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	return dmp.DiffPrettyText(dmp.DiffCleanupSemantic(diffs))
}
